/*
Package leave implements the leave-request workflow, the one place in
the planner with actual business rules.

PURPOSE:
  Service.Submit validates a request (date order, then the balance
  gate), simulates the remote-call latency, and on success appends a
  pending CalendarEvent to the state store with a success notification.
  Failures become typed error records plus a user-visible notification;
  the event list is never touched on failure.

VALIDATION ORDER (first failure wins):
  1. start <= end          -> validation error, field "dates"
  2. balance[type] > 0     -> validation error, field "balance"

BALANCE GATE:
  The gate is deliberately coarse: it checks that any balance remains,
  not that the balance covers the requested day count. This mirrors the
  system it replaces; day-accurate accounting is a known simplification
  left as-is, not a bug.

LOADING CONTRACT:
  The "leaves" loading slot is `loading` for the duration of the call
  and is never left there: idle on success or cancellation, error on
  failure.

SEE ALSO:
  - state/store.go: The store this workflow mutates
  - region/: Supplies the localized event title
*/
package leave

import (
	"context"
	"time"

	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/region"
	"github.com/alfie/leave-planner/state"
)

// DefaultLatency is the simulated remote-call delay.
const DefaultLatency = 1 * time.Second

// Input is a leave request as collected from the user.
type Input struct {
	Type      domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// Service wires the workflow to its collaborators. Latency may be zero
// in tests; now is swappable for deterministic timestamps.
type Service struct {
	Store   *state.Store
	Region  *region.Provider
	Latency time.Duration

	now func() time.Time
}

// New returns a Service with the default simulated latency.
func New(store *state.Store, provider *region.Provider) *Service {
	return &Service{
		Store:   store,
		Region:  provider,
		Latency: DefaultLatency,
		now:     time.Now,
	}
}

// Submit runs the full request workflow. The returned event is the one
// appended to the store. A context cancellation during the simulated
// latency discards the request entirely: no event, no error record, no
// notification, loading slot back to idle.
func (s *Service) Submit(ctx context.Context, in Input) (*domain.CalendarEvent, error) {
	s.Store.SetLoadingState(domain.LoadLeaves, domain.LoadLoading)

	event, err := s.submit(ctx, in)
	switch {
	case err == nil:
		s.Store.SetLoadingState(domain.LoadLeaves, domain.LoadIdle)
		s.notifySuccess()
	case ctx.Err() != nil:
		// Orphaned completion: the initiator went away. Discard.
		s.Store.SetLoadingState(domain.LoadLeaves, domain.LoadIdle)
	default:
		s.Store.SetLoadingState(domain.LoadLeaves, domain.LoadError)
		s.recordFailure(err)
	}
	return event, err
}

func (s *Service) submit(ctx context.Context, in Input) (*domain.CalendarEvent, error) {
	start := domain.Day(in.StartDate)
	end := domain.Day(in.EndDate)

	if start.After(end) {
		return nil, domain.NewValidationError("dates",
			"start date must be before end date", domain.ErrInvalidDateRange)
	}
	if !s.Store.Balance(in.Type).IsPositive() {
		return nil, domain.NewValidationError("balance",
			"insufficient leave balance", domain.ErrInsufficientBalance)
	}

	// Simulated remote call. Non-blocking for the rest of the planner;
	// cancellable by the initiator going away.
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	title, err := s.Region.Terminology(region.TermForLeaveType(in.Type))
	if err != nil {
		return nil, err
	}

	event := domain.CalendarEvent{
		ID:     domain.NewEventID(),
		Title:  title,
		Start:  start,
		End:    end,
		Type:   in.Type,
		Status: domain.StatusPending,
		Notes:  in.Notes,
	}
	s.Store.AddEvent(event)
	return &event, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) timestamp() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Service) notifySuccess() {
	s.Store.AddNotification(domain.Notification{
		ID:        domain.NewID("note"),
		Kind:      domain.NoteSuccess,
		Message:   "Leave request submitted successfully",
		Timestamp: s.timestamp(),
	})
}

// recordFailure converts a workflow failure into a typed error record
// and a mirrored notification. Failures never escape as panics into the
// rendering layer; callers receive them as ordinary errors.
func (s *Service) recordFailure(err error) {
	typed := domain.WrapError(err)
	s.Store.AddError(*typed)
	s.Store.AddNotification(domain.Notification{
		ID:        domain.NewID("note"),
		Kind:      domain.NoteError,
		Message:   typed.Message,
		Timestamp: s.timestamp(),
	})
}
