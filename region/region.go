/*
Package region is the single source of truth for the active region and
everything derived from it.

PURPOSE:
  A Provider owns the UK/US switch and answers every region-dependent
  question: date format, week start, display vocabulary, and the active
  holiday set. Consumers never branch on the region themselves; they ask
  the Provider.

KEY CONCEPTS:
  - Region: UK or US configuration profile
  - Preferences: date format + week start derived from the region
  - Terminology: enum-keyed vocabulary table (terminology.go)
  - Holidays: static per-region sets for the reference year (holidays.go)

FAIL-FAST CONTRACT:
  A zero-value Provider is uninitialized. Every capability returns
  ErrNotInitialized rather than silently defaulting, so a consumer can
  never render the wrong region's vocabulary unnoticed.

SEE ALSO:
  - terminology.go: Vocabulary tables and Term keys
  - holidays.go: The 2024 holiday calendars
*/
package region

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alfie/leave-planner/domain"
)

// Region selects one of the two built-in configuration profiles.
type Region string

const (
	UK Region = "UK"
	US Region = "US"
)

// Parse converts a wire string into a Region.
func Parse(s string) (Region, error) {
	switch Region(s) {
	case UK:
		return UK, nil
	case US:
		return US, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Preferences are the rendering settings derived from the region.
type Preferences struct {
	DateFormat string       `json:"dateFormat"` // display pattern, dd/MM/yyyy or MM/dd/yyyy
	WeekStart  time.Weekday `json:"weekStart"`  // Monday for UK, Sunday for US
}

// ErrNotInitialized is returned when a zero-value Provider is used.
// Construct providers with New.
var ErrNotInitialized = errors.New("region provider not initialized")

// =============================================================================
// PROVIDER
// =============================================================================

// Provider holds the active region and serves derived lookups.
// All methods are safe for concurrent use.
type Provider struct {
	mu          sync.RWMutex
	region      Region
	prefs       Preferences
	initialized bool
}

// New returns a Provider initialized to the given region.
func New(r Region) *Provider {
	p := &Provider{}
	p.apply(r)
	return p
}

// SetRegion replaces the active region and synchronously recomputes the
// derived preferences and holiday set. Idempotent for the current region.
func (p *Provider) SetRegion(r Region) error {
	if _, err := Parse(string(r)); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(r)
	return nil
}

func (p *Provider) apply(r Region) {
	p.region = r
	switch r {
	case US:
		p.prefs = Preferences{DateFormat: "MM/dd/yyyy", WeekStart: time.Sunday}
	default:
		p.prefs = Preferences{DateFormat: "dd/MM/yyyy", WeekStart: time.Monday}
	}
	p.initialized = true
}

// Region returns the active region.
func (p *Provider) Region() (Region, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return "", ErrNotInitialized
	}
	return p.region, nil
}

// Preferences returns the active date-format and week-start settings.
func (p *Provider) Preferences() (Preferences, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return Preferences{}, ErrNotInitialized
	}
	return p.prefs, nil
}

// FormatDate renders a date in the active region's display format.
func (p *Provider) FormatDate(t time.Time) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return "", ErrNotInitialized
	}
	if p.region == US {
		return t.Format("01/02/2006"), nil
	}
	return t.Format("02/01/2006"), nil
}

// Terminology maps an abstract concept key to the region's display
// string. Unknown keys echo back unchanged; that fallback is the
// documented contract, not an error.
func (p *Provider) Terminology(key Term) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return "", ErrNotInitialized
	}
	table := vocabulary[p.region]
	if s, ok := table[key]; ok {
		return s, nil
	}
	return string(key), nil
}

// Holidays returns the immutable holiday list for the active region
// only. The returned slice is a copy; callers may not mutate the
// underlying set.
func (p *Provider) Holidays() ([]domain.Holiday, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	src := holidays[p.region]
	out := make([]domain.Holiday, len(src))
	copy(out, src)
	return out, nil
}

// IsHoliday reports whether the given day is a holiday in the active
// region, returning the matching entry when it is.
func (p *Provider) IsHoliday(day time.Time) (domain.Holiday, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.initialized {
		return domain.Holiday{}, false, ErrNotInitialized
	}
	iso := domain.Day(day).Format("2006-01-02")
	for _, h := range holidays[p.region] {
		if h.Date == iso {
			return h, true, nil
		}
	}
	return domain.Holiday{}, false, nil
}
