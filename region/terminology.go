package region

import "github.com/alfie/leave-planner/domain"

// =============================================================================
// TERMINOLOGY - Enum-keyed vocabulary tables
// =============================================================================

// Term is an abstract concept key resolved to region-specific wording.
// The key set is closed; unknown keys fall back to their literal value
// (see Provider.Terminology).
type Term string

const (
	TermLeave    Term = "leave"
	TermHoliday  Term = "holiday"
	TermSick     Term = "sick"
	TermBalance  Term = "balance"
	TermRequest  Term = "request"
	TermSubmit   Term = "submit"
	TermCalendar Term = "calendar"
	TermApproved Term = "approved"
	TermPending  Term = "pending"
	TermRejected Term = "rejected"
	TermUnpaid   Term = "unpaid"
	TermOther    Term = "other"
)

var vocabulary = map[Region]map[Term]string{
	UK: {
		TermLeave:    "Annual Leave",
		TermHoliday:  "Bank Holiday",
		TermSick:     "Sick Leave",
		TermBalance:  "Leave Balance",
		TermRequest:  "Request Leave",
		TermSubmit:   "Submit Request",
		TermCalendar: "Leave Calendar",
		TermApproved: "Approved",
		TermPending:  "Pending Review",
		TermRejected: "Declined",
		TermUnpaid:   "Unpaid Leave",
		TermOther:    "Other Leave",
	},
	US: {
		TermLeave:    "PTO",
		TermHoliday:  "Federal Holiday",
		TermSick:     "Sick Time",
		TermBalance:  "PTO Balance",
		TermRequest:  "Request Time Off",
		TermSubmit:   "Submit PTO Request",
		TermCalendar: "Time Off Calendar",
		TermApproved: "Approved",
		TermPending:  "Under Review",
		TermRejected: "Denied",
		TermUnpaid:   "Unpaid Time Off",
		TermOther:    "Other Time Off",
	},
}

// TermForLeaveType maps a leave type to the terminology key used for its
// display title.
func TermForLeaveType(t domain.LeaveType) Term {
	switch t {
	case domain.LeaveSick:
		return TermSick
	case domain.LeaveUnpaid:
		return TermUnpaid
	case domain.LeaveOther:
		return TermOther
	default:
		return TermLeave
	}
}
