/*
server.go - HTTP router, middleware, and page shell

PURPOSE:
  Configures the chi router, middleware stack, API routes, and the
  minimal server-rendered pages. This is the wiring layer that connects
  URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. recoverer:  Rendering-failure guard (full-screen recovery page)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for an SPA frontend

ROUTE SURFACE:
  /api/*       JSON API (see handlers.go)
  /            Welcome page
  /calendar    Calendar workspace page
  anything else redirects to /

RENDERING-FAILURE GUARD:
  Any otherwise-unhandled panic in a handler is caught and answered
  with a full-screen recovery page ("refresh"). Diagnostic detail is
  logged, and included in the page only in dev mode; production shows
  a generic message.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alfie/leave-planner/region"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(recoverer(h.Dev))
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Post("/reset", h.Reset)

		r.Route("/region", func(r chi.Router) {
			r.Get("/", h.GetRegion)
			r.Post("/", h.SetRegion)
		})
		r.Get("/terminology/{key}", h.GetTerminology)
		r.Get("/holidays", h.GetHolidays)

		r.Get("/calendar", h.GetCalendar)
		r.Post("/view", h.SetView)
		r.Post("/dates", h.SelectDates)

		r.Post("/requests", h.SubmitRequest)
		r.Delete("/events/{id}", h.RemoveEvent)
		r.Put("/balances", h.UpdateBalance)

		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.ListTeam)
			r.Put("/", h.UpsertTeamMember)
		})

		r.Post("/notifications/clear", h.ClearNotifications)
		r.Post("/errors/clear", h.ClearErrors)
	})

	// Page shell
	r.Get("/", h.welcomePage)
	r.Get("/calendar", h.calendarPage)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusTemporaryRedirect)
	})

	return r
}

// =============================================================================
// RENDERING-FAILURE GUARD
// =============================================================================

// recoverer catches otherwise-unhandled panics and answers with a
// full-screen recovery page. It replaces chi's stock Recoverer so the
// dev/prod detail policy applies.
func recoverer(dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
					detail := ""
					if dev {
						detail = fmt.Sprintf("<pre>%v</pre>", rec)
					}
					w.Header().Set("Content-Type", "text/html")
					w.WriteHeader(http.StatusInternalServerError)
					fmt.Fprintf(w, recoveryPage, detail)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

const recoveryPage = `<!DOCTYPE html>
<html>
<head><title>Something went wrong</title></head>
<body style="font-family: system-ui; max-width: 600px; margin: 80px auto; text-align: center;">
<h1>Something went wrong</h1>
<p>An unexpected error occurred. Refreshing usually fixes it.</p>
%s
<p><a href="/">Refresh</a></p>
</body>
</html>`

// =============================================================================
// PAGES
// =============================================================================

func (h *Handler) welcomePage(w http.ResponseWriter, r *http.Request) {
	title, _ := h.Region.Terminology(region.TermCalendar)
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Alfie</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Alfie</h1>
<p>Plan your time off without the spreadsheet.</p>
<ul>
<li><a href="/calendar">%s</a></li>
<li><a href="/api/state">/api/state</a> - Current state</li>
<li><a href="/api/holidays">/api/holidays</a> - Holidays for the active region</li>
</ul>
</body>
</html>`, title)
}

func (h *Handler) calendarPage(w http.ResponseWriter, r *http.Request) {
	title, _ := h.Region.Terminology(region.TermCalendar)
	reg, _ := h.Region.Region()
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>%s</h1>
<p>Region: %s</p>
<p>The calendar data lives at <a href="/api/calendar">/api/calendar</a>.</p>
</body>
</html>`, title, title, reg)
}
