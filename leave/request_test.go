package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/leave"
	"github.com/alfie/leave-planner/region"
	"github.com/alfie/leave-planner/state"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestService(t *testing.T, r region.Region) (*leave.Service, *state.Store) {
	t.Helper()
	store := state.New()
	svc := leave.New(store, region.New(r))
	svc.Latency = 0 // no simulated delay in tests
	return svc, store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// SUCCESSFUL SUBMISSION
// =============================================================================

func TestSubmit_ValidRequest_CreatesPendingEvent(t *testing.T) {
	// GIVEN: region=UK, balance annual=25
	// WHEN: Submitting annual leave 2024-05-01..2024-05-03
	// THEN: Exactly one new event, status pending, title "Annual Leave"

	svc, store := newTestService(t, region.UK)
	before := len(store.Events())

	event, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 3),
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.StatusPending, event.Status)
	assert.Equal(t, "Annual Leave", event.Title)
	assert.Equal(t, domain.LeaveAnnual, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, day(2024, time.May, 1), event.Start)
	assert.Equal(t, day(2024, time.May, 3), event.End)

	events := store.Events()
	assert.Len(t, events, before+1)
	assert.Equal(t, event.ID, events[len(events)-1].ID)
}

func TestSubmit_TitleFollowsRegion(t *testing.T) {
	svc, _ := newTestService(t, region.US)

	event, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "PTO", event.Title)

	event, err = svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveSick,
		StartDate: day(2024, time.May, 2),
		EndDate:   day(2024, time.May, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sick Time", event.Title)
}

func TestSubmit_Success_NotifiesAndReturnsToIdle(t *testing.T) {
	svc, store := newTestService(t, region.UK)

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 3),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LoadIdle, store.LoadingState(domain.LoadLeaves))
	notes := store.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NoteSuccess, notes[0].Kind)
	assert.Empty(t, store.Errors())
}

// =============================================================================
// DATE VALIDATION
// =============================================================================

func TestSubmit_EndBeforeStart_RejectedWithDatesError(t *testing.T) {
	// GIVEN: end date before start date (2024-06-10 .. 2024-06-05)
	// WHEN: Submitted
	// THEN: validation error on field "dates", event list unchanged

	svc, store := newTestService(t, region.UK)

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveSick,
		StartDate: day(2024, time.June, 10),
		EndDate:   day(2024, time.June, 5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	var verr *domain.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ErrValidation, verr.Kind)
	assert.Equal(t, "dates", verr.Field)

	assert.Empty(t, store.Events())
	assert.Equal(t, domain.LoadError, store.LoadingState(domain.LoadLeaves))

	errs := store.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "dates", errs[0].Field)

	notes := store.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NoteError, notes[0].Kind)
}

func TestSubmit_InvalidInput_IdempotentFailure(t *testing.T) {
	// Submitting the same invalid input twice produces the same
	// rejection; the event list never moves.

	svc, store := newTestService(t, region.UK)
	in := leave.Input{
		Type:      domain.LeaveSick,
		StartDate: day(2024, time.June, 10),
		EndDate:   day(2024, time.June, 5),
	}

	_, err1 := svc.Submit(context.Background(), in)
	_, err2 := svc.Submit(context.Background(), in)

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Empty(t, store.Events())
	assert.Len(t, store.Errors(), 2)
}

func TestSubmit_SameDayRange_Allowed(t *testing.T) {
	// start == end is a valid single-day request.
	svc, store := newTestService(t, region.UK)

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 1),
	})
	require.NoError(t, err)
	assert.Len(t, store.Events(), 1)
}

// =============================================================================
// BALANCE GATE
// =============================================================================

func TestSubmit_ZeroBalance_RejectedWithBalanceError(t *testing.T) {
	// unpaid starts at 0; the coarse gate rejects any request for it.
	svc, store := newTestService(t, region.UK)

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveUnpaid,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 3),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	var verr *domain.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ErrValidation, verr.Kind)
	assert.Equal(t, "balance", verr.Field)
	assert.Empty(t, store.Events())
}

func TestSubmit_NegativeBalance_Rejected(t *testing.T) {
	svc, store := newTestService(t, region.UK)
	store.UpdateLeaveBalance(domain.LeaveAnnual, decimal.NewFromInt(-1))

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestSubmit_CoarseGate_IgnoresRequestedDayCount(t *testing.T) {
	// The gate checks balance > 0, not balance >= requested days. A
	// 10-day request against a 1-day balance passes. Known
	// simplification, preserved deliberately.

	svc, store := newTestService(t, region.UK)
	store.UpdateLeaveBalance(domain.LeaveAnnual, decimal.NewFromInt(1))

	event, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.July, 1),
		EndDate:   day(2024, time.July, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, event.Days())
}

func TestSubmit_DateCheckWinsOverBalanceCheck(t *testing.T) {
	// First failure wins: bad dates on a zero-balance type reports the
	// dates error, not the balance error.

	svc, _ := newTestService(t, region.UK)

	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveUnpaid,
		StartDate: day(2024, time.June, 10),
		EndDate:   day(2024, time.June, 5),
	})
	require.Error(t, err)

	var verr *domain.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dates", verr.Field)
}

// =============================================================================
// CANCELLATION AND LOADING CONTRACT
// =============================================================================

func TestSubmit_CancelledDuringLatency_DiscardsResult(t *testing.T) {
	// GIVEN: A request in its simulated-latency window
	// WHEN: The initiator's context is cancelled
	// THEN: No event, no error record, no notification; slot back to idle

	store := state.New()
	svc := leave.New(store, region.New(region.UK))
	svc.Latency = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, leave.Input{
			Type:      domain.LeaveAnnual,
			StartDate: day(2024, time.May, 1),
			EndDate:   day(2024, time.May, 3),
		})
		done <- err
	}()

	// Give the goroutine a moment to enter the latency window.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("submit did not return after cancellation")
	}

	assert.Empty(t, store.Events())
	assert.Empty(t, store.Errors())
	assert.Empty(t, store.Notifications())
	assert.Equal(t, domain.LoadIdle, store.LoadingState(domain.LoadLeaves))
}

func TestSubmit_LoadingSlot_NeverLeftLoading(t *testing.T) {
	svc, store := newTestService(t, region.UK)

	// Success path.
	_, err := svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveAnnual,
		StartDate: day(2024, time.May, 1),
		EndDate:   day(2024, time.May, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LoadIdle, store.LoadingState(domain.LoadLeaves))

	// Failure path.
	_, err = svc.Submit(context.Background(), leave.Input{
		Type:      domain.LeaveUnpaid,
		StartDate: day(2024, time.May, 2),
		EndDate:   day(2024, time.May, 2),
	})
	require.Error(t, err)
	assert.Equal(t, domain.LoadError, store.LoadingState(domain.LoadLeaves))
}
