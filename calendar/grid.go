/*
Package calendar derives the month, week, and agenda projections the
calendar views render.

PURPOSE:
  The views are pure consumers: given the store's events and selection,
  the active region's week start, and the holiday set, this package
  builds the cell grid for each projection. It holds no state of its
  own and performs no mutations.

PROJECTIONS:
  - MonthGrid: full weeks covering a month (leading/trailing days from
    the adjacent months included, cells flagged as outside the month)
  - WeekStrip: the seven days of the week containing a reference day
  - Agenda:    events sorted by start date, then insertion order

SEE ALSO:
  - region/: Supplies week start and holiday lookups
  - state/: Supplies events and the selected-date set
*/
package calendar

import (
	"sort"
	"time"

	"github.com/alfie/leave-planner/domain"
)

// =============================================================================
// CELLS AND GRIDS
// =============================================================================

// Cell is a single day as the calendar renders it.
type Cell struct {
	Date     time.Time              `json:"date"`
	InMonth  bool                   `json:"inMonth"`
	Today    bool                   `json:"today"`
	Selected bool                   `json:"selected"`
	Holiday  *domain.Holiday        `json:"holiday,omitempty"`
	Events   []domain.CalendarEvent `json:"events,omitempty"`
}

// Week is a row of seven cells starting on the regional week start.
type Week struct {
	Cells [7]Cell `json:"cells"`
}

// MonthGrid is the month projection: four to six full weeks covering
// the given month.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []Week     `json:"weeks"`
}

// Context carries the read-side inputs every projection needs.
type Context struct {
	WeekStart time.Weekday
	Today     time.Time
	Selected  []time.Time
	Events    []domain.CalendarEvent
	Holidays  []domain.Holiday
}

// =============================================================================
// MONTH PROJECTION
// =============================================================================

// Month builds the grid for a year/month under the given context.
func Month(year int, month time.Month, ctx Context) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Walk back from the 1st to the regional week start.
	cur := first
	for cur.Weekday() != ctx.WeekStart {
		cur = cur.AddDate(0, 0, -1)
	}

	grid := MonthGrid{Year: year, Month: month}
	for !cur.After(last) {
		var w Week
		for i := 0; i < 7; i++ {
			w.Cells[i] = ctx.cell(cur, cur.Month() == month)
			cur = cur.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, w)
	}
	return grid
}

// =============================================================================
// WEEK PROJECTION
// =============================================================================

// WeekOf builds the seven-day strip containing the reference day.
func WeekOf(ref time.Time, ctx Context) Week {
	cur := domain.Day(ref)
	for cur.Weekday() != ctx.WeekStart {
		cur = cur.AddDate(0, 0, -1)
	}
	var w Week
	for i := 0; i < 7; i++ {
		w.Cells[i] = ctx.cell(cur, true)
		cur = cur.AddDate(0, 0, 1)
	}
	return w
}

// =============================================================================
// AGENDA PROJECTION
// =============================================================================

// Agenda returns the events sorted by start date; ties keep insertion
// order.
func Agenda(events []domain.CalendarEvent) []domain.CalendarEvent {
	out := make([]domain.CalendarEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// =============================================================================
// CELL CONSTRUCTION
// =============================================================================

func (c Context) cell(day time.Time, inMonth bool) Cell {
	day = domain.Day(day)
	cell := Cell{
		Date:    day,
		InMonth: inMonth,
		Today:   day.Equal(domain.Day(c.Today)),
	}
	for _, sel := range c.Selected {
		if domain.Day(sel).Equal(day) {
			cell.Selected = true
			break
		}
	}
	iso := day.Format("2006-01-02")
	for i := range c.Holidays {
		if c.Holidays[i].Date == iso {
			h := c.Holidays[i]
			cell.Holiday = &h
			break
		}
	}
	for _, e := range c.Events {
		if e.Covers(day) {
			cell.Events = append(cell.Events, e)
		}
	}
	return cell
}
