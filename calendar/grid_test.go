package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfie/leave-planner/calendar"
	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/region"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ukContext(t *testing.T) calendar.Context {
	t.Helper()
	p := region.New(region.UK)
	prefs, err := p.Preferences()
	require.NoError(t, err)
	hols, err := p.Holidays()
	require.NoError(t, err)
	return calendar.Context{
		WeekStart: prefs.WeekStart,
		Today:     day(2024, time.May, 15),
		Holidays:  hols,
	}
}

// =============================================================================
// MONTH PROJECTION
// =============================================================================

func TestMonth_WeekStartFollowsRegion(t *testing.T) {
	// May 2024 starts on a Wednesday.
	ctx := ukContext(t)
	grid := calendar.Month(2024, time.May, ctx)

	// UK weeks start Monday: the first cell is Mon 29 April.
	first := grid.Weeks[0].Cells[0]
	assert.Equal(t, day(2024, time.April, 29), first.Date)
	assert.False(t, first.InMonth)
	assert.Equal(t, time.Monday, first.Date.Weekday())

	// US weeks start Sunday: the first cell is Sun 28 April.
	ctx.WeekStart = time.Sunday
	grid = calendar.Month(2024, time.May, ctx)
	first = grid.Weeks[0].Cells[0]
	assert.Equal(t, day(2024, time.April, 28), first.Date)
	assert.Equal(t, time.Sunday, first.Date.Weekday())
}

func TestMonth_CoversWholeMonthInFullWeeks(t *testing.T) {
	ctx := ukContext(t)
	grid := calendar.Month(2024, time.May, ctx)

	// Every week has 7 cells and the last cell is on or after May 31.
	require.NotEmpty(t, grid.Weeks)
	last := grid.Weeks[len(grid.Weeks)-1].Cells[6]
	assert.False(t, last.Date.Before(day(2024, time.May, 31)))

	inMonth := 0
	for _, w := range grid.Weeks {
		for _, c := range w.Cells {
			if c.InMonth {
				inMonth++
			}
		}
	}
	assert.Equal(t, 31, inMonth)
}

func TestMonth_FlagsHolidaysAndToday(t *testing.T) {
	ctx := ukContext(t)
	grid := calendar.Month(2024, time.May, ctx)

	var earlyMay, today *calendar.Cell
	for wi := range grid.Weeks {
		for ci := range grid.Weeks[wi].Cells {
			c := &grid.Weeks[wi].Cells[ci]
			if c.Date.Equal(day(2024, time.May, 6)) {
				earlyMay = c
			}
			if c.Date.Equal(day(2024, time.May, 15)) {
				today = c
			}
		}
	}

	require.NotNil(t, earlyMay)
	require.NotNil(t, earlyMay.Holiday)
	assert.Equal(t, "Early May Bank Holiday", earlyMay.Holiday.Name)

	require.NotNil(t, today)
	assert.True(t, today.Today)
}

func TestMonth_AttachesCoveringEvents(t *testing.T) {
	ctx := ukContext(t)
	ctx.Events = []domain.CalendarEvent{{
		ID:     "evt-1",
		Title:  "Annual Leave",
		Start:  day(2024, time.May, 1),
		End:    day(2024, time.May, 3),
		Type:   domain.LeaveAnnual,
		Status: domain.StatusPending,
	}}

	grid := calendar.Month(2024, time.May, ctx)
	covered := 0
	for _, w := range grid.Weeks {
		for _, c := range w.Cells {
			if len(c.Events) > 0 {
				covered++
				assert.Equal(t, "evt-1", c.Events[0].ID)
			}
		}
	}
	assert.Equal(t, 3, covered, "a 3-day event covers 3 cells")
}

func TestMonth_MarksSelectedDates(t *testing.T) {
	ctx := ukContext(t)
	ctx.Selected = []time.Time{day(2024, time.May, 10)}

	grid := calendar.Month(2024, time.May, ctx)
	selected := 0
	for _, w := range grid.Weeks {
		for _, c := range w.Cells {
			if c.Selected {
				selected++
				assert.Equal(t, day(2024, time.May, 10), c.Date)
			}
		}
	}
	assert.Equal(t, 1, selected)
}

// =============================================================================
// WEEK PROJECTION
// =============================================================================

func TestWeekOf_SevenDaysFromRegionalStart(t *testing.T) {
	ctx := ukContext(t)

	// Wed 15 May 2024; the UK week containing it starts Mon 13 May.
	w := calendar.WeekOf(day(2024, time.May, 15), ctx)
	assert.Equal(t, day(2024, time.May, 13), w.Cells[0].Date)
	assert.Equal(t, day(2024, time.May, 19), w.Cells[6].Date)

	ctx.WeekStart = time.Sunday
	w = calendar.WeekOf(day(2024, time.May, 15), ctx)
	assert.Equal(t, day(2024, time.May, 12), w.Cells[0].Date)
}

// =============================================================================
// AGENDA PROJECTION
// =============================================================================

func TestAgenda_SortsByStartKeepingInsertionOrderOnTies(t *testing.T) {
	events := []domain.CalendarEvent{
		{ID: "b", Start: day(2024, time.June, 10), End: day(2024, time.June, 11)},
		{ID: "a", Start: day(2024, time.May, 1), End: day(2024, time.May, 2)},
		{ID: "c", Start: day(2024, time.May, 1), End: day(2024, time.May, 1)},
	}

	sorted := calendar.Agenda(events)
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID, "tie keeps insertion order")
	assert.Equal(t, "b", sorted[2].ID)

	// Input order untouched.
	assert.Equal(t, "b", events[0].ID)
}
