/*
handlers.go - HTTP API handlers for the leave planner

PURPOSE:
  Exposes the planner core via REST. Handles HTTP request/response,
  JSON serialization, and delegates to the domain packages.

ENDPOINTS:
  State:
    GET    /api/state               Full read-side state
    POST   /api/reset               Restore the documented initial state

  Region:
    GET    /api/region              Active region and preferences
    POST   /api/region              Switch region (UK|US)
    GET    /api/terminology/{key}   Resolve one vocabulary key
    GET    /api/holidays            Active region's holiday list

  Calendar:
    GET    /api/calendar            Month/week/agenda projection
    POST   /api/view                Swap the calendar view
    POST   /api/dates               Replace the selected-date set

  Leave:
    POST   /api/requests            Submit a leave request
    DELETE /api/events/{id}         Remove an event
    PUT    /api/balances            Set one leave type's balance

  Team:
    GET    /api/team                List team members
    PUT    /api/team                Upsert a team member

  Queues:
    POST   /api/notifications/clear
    POST   /api/errors/clear

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors
  Diagnostic detail is included only when the handler runs in dev mode.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alfie/leave-planner/calendar"
	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/leave"
	"github.com/alfie/leave-planner/region"
	"github.com/alfie/leave-planner/state"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  *state.Store
	Region *region.Provider
	Leave  *leave.Service

	// Snapshots, when set, receives a best-effort state snapshot after
	// every mutating endpoint.
	Snapshots state.SnapshotStore

	// Dev enables diagnostic detail in error responses.
	Dev bool
}

// NewHandler wires a handler around the given collaborators.
func NewHandler(store *state.Store, provider *region.Provider, svc *leave.Service) *Handler {
	return &Handler{Store: store, Region: provider, Leave: svc}
}

// persist snapshots the store if a snapshot backend is configured.
// Persistence failures are logged, never surfaced to the client.
func (h *Handler) persist(r *http.Request) {
	if h.Snapshots == nil {
		return
	}
	if err := h.Store.SaveTo(r.Context(), h.Snapshots); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

// =============================================================================
// STATE HANDLERS
// =============================================================================

// GetState returns the full read-side view of the planner.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	reg, err := h.Region.Region()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Region provider unavailable", err)
		return
	}
	prefs, _ := h.Region.Preferences()

	loading := map[string]domain.LoadingStatus{}
	for _, key := range []domain.LoadingKey{domain.LoadCalendar, domain.LoadLeaves, domain.LoadTeam, domain.LoadGeneral} {
		loading[string(key)] = h.Store.LoadingState(key)
	}

	h.writeJSON(w, http.StatusOK, StateDTO{
		Region:        string(reg),
		Preferences:   prefs,
		View:          h.Store.CalendarView(),
		SelectedDates: isoDates(h.Store.SelectedDates()),
		Events:        h.Store.Events(),
		Balances:      balancesDTO(h.Store.Balances()),
		Team:          h.Store.TeamMembers(),
		Loading:       loading,
		Notifications: h.Store.Notifications(),
		Errors:        h.Store.Errors(),
	})
}

// Reset restores the documented initial state.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()
	h.persist(r)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// REGION HANDLERS
// =============================================================================

// GetRegion returns the active region and its derived preferences.
func (h *Handler) GetRegion(w http.ResponseWriter, r *http.Request) {
	reg, err := h.Region.Region()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Region provider unavailable", err)
		return
	}
	prefs, _ := h.Region.Preferences()
	h.writeJSON(w, http.StatusOK, RegionDTO{Region: string(reg), Preferences: prefs})
}

// SetRegion switches the active region. The only externally triggered
// mutation of region.
func (h *Handler) SetRegion(w http.ResponseWriter, r *http.Request) {
	var req SetRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	reg, err := region.Parse(req.Region)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Unknown region (use UK or US)", err)
		return
	}
	if err := h.Region.SetRegion(reg); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to switch region", err)
		return
	}
	prefs, _ := h.Region.Preferences()
	h.writeJSON(w, http.StatusOK, RegionDTO{Region: string(reg), Preferences: prefs})
}

// GetTerminology resolves one vocabulary key for the active region.
// Unknown keys echo back unchanged per the provider contract.
func (h *Handler) GetTerminology(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, err := h.Region.Terminology(region.Term(key))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Region provider unavailable", err)
		return
	}
	h.writeJSON(w, http.StatusOK, TerminologyDTO{Key: key, Value: value})
}

// GetHolidays returns the active region's holiday list.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	hols, err := h.Region.Holidays()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Region provider unavailable", err)
		return
	}
	h.writeJSON(w, http.StatusOK, hols)
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetCalendar returns the requested projection. Query parameters:
//
//	view  month|week|agenda (default: the store's active view)
//	year  projection year   (default: current)
//	month projection month  (default: current)
//	date  ISO reference day for the week view (default: today)
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Region.Preferences()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Region provider unavailable", err)
		return
	}
	hols, _ := h.Region.Holidays()

	now := time.Now().UTC()
	view := h.Store.CalendarView()
	if q := r.URL.Query().Get("view"); q != "" {
		view = domain.CalendarView(q)
		if !view.Valid() {
			h.writeError(w, http.StatusBadRequest, "Unknown view (use month, week or agenda)", nil)
			return
		}
	}

	ctx := calendar.Context{
		WeekStart: prefs.WeekStart,
		Today:     now,
		Selected:  h.Store.SelectedDates(),
		Events:    h.Store.Events(),
		Holidays:  hols,
	}

	switch view {
	case domain.ViewWeek:
		ref := now
		if q := r.URL.Query().Get("date"); q != "" {
			parsed, err := time.Parse("2006-01-02", q)
			if err != nil {
				h.writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
				return
			}
			ref = parsed
		}
		h.writeJSON(w, http.StatusOK, calendar.WeekOf(ref, ctx))
	case domain.ViewAgenda:
		h.writeJSON(w, http.StatusOK, calendar.Agenda(h.Store.Events()))
	default:
		year, month := now.Year(), now.Month()
		if q := r.URL.Query().Get("year"); q != "" {
			y, err := strconv.Atoi(q)
			if err != nil {
				h.writeError(w, http.StatusBadRequest, "Invalid year", err)
				return
			}
			year = y
		}
		if q := r.URL.Query().Get("month"); q != "" {
			m, err := strconv.Atoi(q)
			if err != nil || m < 1 || m > 12 {
				h.writeError(w, http.StatusBadRequest, "Invalid month (1-12)", err)
				return
			}
			month = time.Month(m)
		}
		h.writeJSON(w, http.StatusOK, calendar.Month(year, month, ctx))
	}
}

// SetView swaps the active calendar projection.
func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	var req SetViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	view := domain.CalendarView(req.View)
	if !view.Valid() {
		h.writeError(w, http.StatusBadRequest, "Unknown view (use month, week or agenda)", nil)
		return
	}
	h.Store.SetCalendarView(view)
	h.persist(r)
	w.WriteHeader(http.StatusNoContent)
}

// SelectDates replaces the selected-date set.
func (h *Handler) SelectDates(w http.ResponseWriter, r *http.Request) {
	var req SelectDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	dates := make([]time.Time, 0, len(req.Dates))
	for _, s := range req.Dates {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid date "+s+" (use YYYY-MM-DD)", err)
			return
		}
		dates = append(dates, d)
	}
	h.Store.SelectDates(dates)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// SubmitRequest runs the leave-request workflow.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	leaveType := domain.LeaveType(req.Type)
	if !leaveType.Valid() {
		h.writeError(w, http.StatusBadRequest, "Unknown leave type", domain.ErrUnknownLeaveType)
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid start_date (use YYYY-MM-DD)", err)
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid end_date (use YYYY-MM-DD)", err)
		return
	}

	event, err := h.Leave.Submit(r.Context(), leave.Input{
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsClientError(err) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, "Leave request rejected", err)
		return
	}

	h.persist(r)
	h.writeJSON(w, http.StatusCreated, event)
}

// RemoveEvent deletes an event by id. Unknown ids are a no-op and still
// return 204; absence is not exceptional for deletion.
func (h *Handler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	h.Store.RemoveEvent(chi.URLParam(r, "id"))
	h.persist(r)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateBalance sets one leave type's remaining balance. Administrative
// corrections may be non-monotonic; no clamping happens here.
func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	leaveType := domain.LeaveType(req.Type)
	if !leaveType.Valid() {
		h.writeError(w, http.StatusBadRequest, "Unknown leave type", domain.ErrUnknownLeaveType)
		return
	}
	h.Store.UpdateLeaveBalance(leaveType, req.Amount)
	h.persist(r)
	h.writeJSON(w, http.StatusOK, balancesDTO(h.Store.Balances()))
}

// =============================================================================
// TEAM HANDLERS
// =============================================================================

// ListTeam returns the team roster.
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Store.TeamMembers())
}

// UpsertTeamMember inserts or replaces a roster entry.
func (h *Handler) UpsertTeamMember(w http.ResponseWriter, r *http.Request) {
	var m domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if m.ID == "" {
		h.writeError(w, http.StatusBadRequest, "Member id is required", nil)
		return
	}
	h.Store.UpsertTeamMember(m)
	h.persist(r)
	h.writeJSON(w, http.StatusOK, m)
}

// =============================================================================
// QUEUE HANDLERS
// =============================================================================

// ClearNotifications empties the notification queue.
func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearNotifications()
	w.WriteHeader(http.StatusNoContent)
}

// ClearErrors empties the error queue.
func (h *Handler) ClearErrors(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearErrors()
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	var typed *domain.Error
	if errors.As(err, &typed) {
		resp.Kind = string(typed.Kind)
		resp.Field = typed.Field
		resp.Error = typed.Message
	}
	if h.Dev && err != nil {
		resp.Details = err.Error()
	}
	h.writeJSON(w, status, resp)
}
