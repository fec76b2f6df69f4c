/*
Package state holds the canonical, process-wide mutable state of the
leave planner.

PURPOSE:
  One Store instance owns the user's leave balances, calendar events,
  selected dates, calendar view mode, team roster, and the ephemeral UI
  state (loading slots, error queue, notifications). Mutations go
  through narrow operations, never direct field writes, so a reader can
  never observe a partially-applied update.

KEY CONCEPTS IN THIS FILE (store.go):
  - Store: mutex-guarded state container, injectable (no package global)
  - Mutation operations: each atomic with respect to concurrent reads
  - Snapshot: read-side copy of the whole state (snapshot.go)

QUEUE BOUNDS:
  Notification and error queues are capped at maxQueue entries; when
  full, the oldest entry is dropped. Queues are cleared wholesale only.

SEE ALSO:
  - snapshot.go: Serialization and the snapshot persistence interface
  - leave/request.go: The workflow that drives most mutations
*/
package state

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alfie/leave-planner/domain"
)

// maxQueue bounds the notification and error queues. The browser
// original let them grow without limit; a long-lived process cannot.
const maxQueue = 100

// =============================================================================
// STORE
// =============================================================================

// Store is the domain state container. Construct with New; the zero
// value is not usable. All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	view          domain.CalendarView
	selectedDates []time.Time
	events        []domain.CalendarEvent
	balances      domain.LeaveBalances
	team          []domain.TeamMember
	loading       map[domain.LoadingKey]domain.LoadingStatus
	notifications []domain.Notification
	errors        []domain.Error
}

// New returns a Store holding the documented initial state.
func New() *Store {
	s := &Store{}
	s.resetLocked()
	return s
}

func (s *Store) resetLocked() {
	s.view = domain.ViewMonth
	s.selectedDates = nil
	s.events = nil
	s.balances = domain.DefaultBalances()
	s.team = nil
	s.loading = map[domain.LoadingKey]domain.LoadingStatus{
		domain.LoadCalendar: domain.LoadIdle,
		domain.LoadLeaves:   domain.LoadIdle,
		domain.LoadTeam:     domain.LoadIdle,
		domain.LoadGeneral:  domain.LoadIdle,
	}
	s.notifications = nil
	s.errors = nil
}

// Reset restores the entire store to its initial state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// =============================================================================
// CALENDAR MUTATIONS
// =============================================================================

// SetCalendarView swaps the active calendar projection. Changing the
// view clears the transient date selection.
func (s *Store) SetCalendarView(v domain.CalendarView) {
	if !v.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v != s.view {
		s.selectedDates = nil
	}
	s.view = v
}

// SelectDates replaces the selected-date set. Dates are stored
// day-truncated in the order given; no validation against events or
// holidays is performed here.
func (s *Store) SelectDates(dates []time.Time) {
	truncated := make([]time.Time, len(dates))
	for i, d := range dates {
		truncated[i] = domain.Day(d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDates = truncated
}

// AddEvent appends an event to the calendar.
func (s *Store) AddEvent(e domain.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// RemoveEvent removes the event with the given id. Removing an unknown
// id is a no-op; absence is not exceptional for deletion-by-id.
func (s *Store) RemoveEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

// Events returns a copy of the event list in insertion order.
func (s *Store) Events() []domain.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// =============================================================================
// LEAVE BALANCES
// =============================================================================

// UpdateLeaveBalance sets the remaining balance for a leave type. The
// store deliberately does not clamp to non-negative: administrative
// corrections may be non-monotonic. Spending-time enforcement lives in
// the leave workflow.
func (s *Store) UpdateLeaveBalance(t domain.LeaveType, amount decimal.Decimal) {
	if !t.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[t] = amount
}

// Balance returns the remaining balance for a leave type.
func (s *Store) Balance(t domain.LeaveType) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[t]
}

// Balances returns a copy of the full balance map.
func (s *Store) Balances() domain.LeaveBalances {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances.Clone()
}

// =============================================================================
// TEAM
// =============================================================================

// UpsertTeamMember inserts the member or replaces the entry with the
// same id.
func (s *Store) UpsertTeamMember(m domain.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.team {
		if existing.ID == m.ID {
			s.team[i] = m
			return
		}
	}
	s.team = append(s.team, m)
}

// TeamMembers returns a copy of the roster.
func (s *Store) TeamMembers() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TeamMember, len(s.team))
	copy(out, s.team)
	return out
}

// =============================================================================
// LOADING SLOTS
// =============================================================================

// SetLoadingState sets one subsystem's loading slot. Slots are
// independent: one subsystem's in-flight operation never blocks
// another's indicator.
func (s *Store) SetLoadingState(key domain.LoadingKey, status domain.LoadingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loading[key]; !ok {
		return
	}
	s.loading[key] = status
}

// LoadingState returns one subsystem's loading slot.
func (s *Store) LoadingState(key domain.LoadingKey) domain.LoadingStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[key]
}

// =============================================================================
// NOTIFICATION AND ERROR QUEUES
// =============================================================================

// AddNotification appends a notification, dropping the oldest entry
// when the queue is full.
func (s *Store) AddNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.notifications) >= maxQueue {
		s.notifications = s.notifications[1:]
	}
	s.notifications = append(s.notifications, n)
}

// Notifications returns queued notifications in arrival order.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// ClearNotifications empties the notification queue. There is no
// partial acknowledgment; clearing is wholesale.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// AddError appends a typed error record, dropping the oldest entry when
// the queue is full.
func (s *Store) AddError(e domain.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errors) >= maxQueue {
		s.errors = s.errors[1:]
	}
	s.errors = append(s.errors, e)
}

// Errors returns queued error records in arrival order.
func (s *Store) Errors() []domain.Error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Error, len(s.errors))
	copy(out, s.errors)
	return out
}

// ClearErrors empties the error queue.
func (s *Store) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = nil
}

// =============================================================================
// READ-SIDE VIEWS
// =============================================================================

// CalendarView returns the active calendar projection.
func (s *Store) CalendarView() domain.CalendarView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SelectedDates returns a copy of the selected-date set in selection
// order.
func (s *Store) SelectedDates() []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]time.Time, len(s.selectedDates))
	copy(out, s.selectedDates)
	return out
}
