/*
Package domain defines the shared vocabulary of the leave planner.

PURPOSE:
  This package contains the entities every other package speaks in:
  leave types and balances, calendar events, team members, holidays,
  and the ephemeral notification records surfaced to the user.

KEY CONCEPTS IN THIS FILE (types.go):
  - LeaveType / LeaveBalances: per-type whole-day allowances
  - CalendarEvent: a leave request with a date range and approval status
  - TeamMember: directory entry with an availability flag
  - Holiday: a regional non-working day
  - Notification: transient user-facing message

DESIGN PRINCIPLES:
  1. Precision: balances use decimal.Decimal, never float64
  2. Day granularity: event and holiday dates are day-precision, UTC
  3. Type safety: enums are distinct string types, not bare strings

SEE ALSO:
  - errors.go: Error taxonomy shared by workflows and handlers
  - region/: Region-dependent vocabulary and holiday sets
  - state/: The store that owns instances of these types
*/
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEAVE TYPES AND BALANCES
// =============================================================================

// LeaveType classifies a time-off request. The set is region-independent;
// only the display vocabulary differs by region.
type LeaveType string

const (
	LeaveAnnual LeaveType = "annual"
	LeaveSick   LeaveType = "sick"
	LeaveUnpaid LeaveType = "unpaid"
	LeaveOther  LeaveType = "other"
)

// LeaveTypes lists all known leave types in a stable order.
var LeaveTypes = []LeaveType{LeaveAnnual, LeaveSick, LeaveUnpaid, LeaveOther}

// Valid reports whether t is one of the known leave types.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeaveUnpaid, LeaveOther:
		return true
	}
	return false
}

// LeaveBalances maps each leave type to its remaining whole-day allowance.
// Values are decimals for arithmetic safety but always carry whole days.
type LeaveBalances map[LeaveType]decimal.Decimal

// DefaultBalances returns the documented starting allowance.
func DefaultBalances() LeaveBalances {
	return LeaveBalances{
		LeaveAnnual: decimal.NewFromInt(25),
		LeaveSick:   decimal.NewFromInt(10),
		LeaveUnpaid: decimal.Zero,
		LeaveOther:  decimal.Zero,
	}
}

// Clone returns an independent copy of the balance map.
func (b LeaveBalances) Clone() LeaveBalances {
	out := make(LeaveBalances, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// =============================================================================
// CALENDAR EVENTS
// =============================================================================

// EventStatus is the approval state of a leave request.
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

// CalendarEvent is a leave request rendered on the calendar.
// Invariant: Start is never after End (enforced at creation by the
// leave workflow, not by this struct).
type CalendarEvent struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Type   LeaveType   `json:"type"`
	Status EventStatus `json:"status"`
	Notes  string      `json:"notes,omitempty"`
}

// Days returns the inclusive whole-day length of the event.
func (e CalendarEvent) Days() int {
	return int(Day(e.End).Sub(Day(e.Start)).Hours()/24) + 1
}

// Covers reports whether the event's range includes the given day.
func (e CalendarEvent) Covers(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(e.Start)) && !d.After(Day(e.End))
}

// Day truncates t to day precision in UTC. All calendar math in the
// planner happens on day-truncated UTC times.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewID returns a fresh opaque identifier with the given prefix.
func NewID(prefix string) string {
	var buf [9]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to a time-derived id; uniqueness within a session
		// is all callers rely on.
		return prefix + "-" + time.Now().UTC().Format("20060102150405.000000000")
	}
	return prefix + "-" + hex.EncodeToString(buf[:])
}

// NewEventID returns a fresh opaque event identifier.
func NewEventID() string { return NewID("evt") }

// =============================================================================
// HOLIDAYS
// =============================================================================

// HolidayKind distinguishes the regional flavor of a holiday.
type HolidayKind string

const (
	HolidayFederal HolidayKind = "federal"
	HolidayBank    HolidayKind = "bank"
	HolidayPublic  HolidayKind = "public"
)

// Holiday is a single non-working day in a regional calendar.
// Date is ISO day precision ("2006-01-02"); holiday sets are immutable
// within a session.
type Holiday struct {
	Date string      `json:"date"`
	Name string      `json:"name"`
	Kind HolidayKind `json:"kind"`
}

// Time parses the holiday's ISO date as a day-precision UTC time.
func (h Holiday) Time() (time.Time, error) {
	return time.Parse("2006-01-02", h.Date)
}

// =============================================================================
// TEAM MEMBERS
// =============================================================================

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Availability is a member's current calendar standing. It is listed
// independently today; a fuller implementation would derive it from the
// member's own event list.
type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
	OnLeave     Availability = "leave"
	OnHoliday   Availability = "holiday"
)

// TeamMember is a directory entry shown in the team view.
type TeamMember struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Department   string       `json:"department"`
	Availability Availability `json:"availability"`
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// NotificationKind is the severity of a transient user-facing message.
type NotificationKind string

const (
	NoteInfo    NotificationKind = "info"
	NoteSuccess NotificationKind = "success"
	NoteWarning NotificationKind = "warning"
	NoteError   NotificationKind = "error"
)

// Notification is an ephemeral message appended by workflows and cleared
// wholesale by the user.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// =============================================================================
// VIEW AND LOADING STATE
// =============================================================================

// CalendarView selects which calendar projection the UI renders.
type CalendarView string

const (
	ViewMonth  CalendarView = "month"
	ViewWeek   CalendarView = "week"
	ViewAgenda CalendarView = "agenda"
)

// Valid reports whether v is a known calendar view.
func (v CalendarView) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewAgenda:
		return true
	}
	return false
}

// LoadingKey identifies one independent loading slot; one subsystem's
// in-flight operation never blocks another's indicator.
type LoadingKey string

const (
	LoadCalendar LoadingKey = "calendar"
	LoadLeaves   LoadingKey = "leaves"
	LoadTeam     LoadingKey = "team"
	LoadGeneral  LoadingKey = "general"
)

// LoadingStatus is the state of a single loading slot.
type LoadingStatus string

const (
	LoadIdle    LoadingStatus = "idle"
	LoadLoading LoadingStatus = "loading"
	LoadError   LoadingStatus = "error"
)
