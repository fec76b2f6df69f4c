/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/region"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// StateDTO is the full read-side view of the planner.
type StateDTO struct {
	Region        string                          `json:"region"`
	Preferences   region.Preferences              `json:"preferences"`
	View          domain.CalendarView             `json:"view"`
	SelectedDates []string                        `json:"selectedDates"`
	Events        []domain.CalendarEvent          `json:"events"`
	Balances      map[string]decimal.Decimal      `json:"balances"`
	Team          []domain.TeamMember             `json:"team"`
	Loading       map[string]domain.LoadingStatus `json:"loading"`
	Notifications []domain.Notification           `json:"notifications"`
	Errors        []domain.Error                  `json:"errors"`
}

// SetRegionRequest switches the active region.
type SetRegionRequest struct {
	Region string `json:"region"`
}

// RegionDTO describes the active region.
type RegionDTO struct {
	Region      string             `json:"region"`
	Preferences region.Preferences `json:"preferences"`
}

// TerminologyDTO is one resolved vocabulary entry.
type TerminologyDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SubmitRequestDTO is a leave request as posted by the client.
// Dates are ISO day precision (YYYY-MM-DD).
type SubmitRequestDTO struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes,omitempty"`
}

// SetViewRequest swaps the calendar projection.
type SetViewRequest struct {
	View string `json:"view"`
}

// SelectDatesRequest replaces the selected-date set (ISO dates).
type SelectDatesRequest struct {
	Dates []string `json:"dates"`
}

// UpdateBalanceRequest sets one leave type's remaining balance.
type UpdateBalanceRequest struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
	// Details carries diagnostic detail in dev mode only.
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func isoDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

func balancesDTO(b domain.LeaveBalances) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(b))
	for k, v := range b {
		out[string(k)] = v
	}
	return out
}
