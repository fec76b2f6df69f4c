package region_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfie/leave-planner/domain"
	"github.com/alfie/leave-planner/region"
)

// =============================================================================
// INITIALIZATION
// =============================================================================

func TestProvider_ZeroValue_FailsFast(t *testing.T) {
	// GIVEN: A provider that was never initialized
	// WHEN: Any capability is accessed
	// THEN: ErrNotInitialized, never a silent default

	var p region.Provider

	_, err := p.Region()
	assert.ErrorIs(t, err, region.ErrNotInitialized)

	_, err = p.Terminology(region.TermLeave)
	assert.ErrorIs(t, err, region.ErrNotInitialized)

	_, err = p.Holidays()
	assert.ErrorIs(t, err, region.ErrNotInitialized)

	_, err = p.FormatDate(time.Now())
	assert.ErrorIs(t, err, region.ErrNotInitialized)
}

func TestProvider_SetRegion_Idempotent(t *testing.T) {
	p := region.New(region.UK)
	require.NoError(t, p.SetRegion(region.UK))

	r, err := p.Region()
	require.NoError(t, err)
	assert.Equal(t, region.UK, r)
}

func TestProvider_SetRegion_UnknownRejected(t *testing.T) {
	p := region.New(region.UK)
	assert.Error(t, p.SetRegion(region.Region("FR")))

	// The active region is untouched by the failed switch.
	r, err := p.Region()
	require.NoError(t, err)
	assert.Equal(t, region.UK, r)
}

// =============================================================================
// PREFERENCES AND DATE FORMAT
// =============================================================================

func TestProvider_Preferences_ByRegion(t *testing.T) {
	p := region.New(region.UK)

	prefs, err := p.Preferences()
	require.NoError(t, err)
	assert.Equal(t, "dd/MM/yyyy", prefs.DateFormat)
	assert.Equal(t, time.Monday, prefs.WeekStart)

	require.NoError(t, p.SetRegion(region.US))
	prefs, err = p.Preferences()
	require.NoError(t, err)
	assert.Equal(t, "MM/dd/yyyy", prefs.DateFormat)
	assert.Equal(t, time.Sunday, prefs.WeekStart)
}

func TestProvider_FormatDate(t *testing.T) {
	day := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)

	p := region.New(region.UK)
	s, err := p.FormatDate(day)
	require.NoError(t, err)
	assert.Equal(t, "03/05/2024", s)

	require.NoError(t, p.SetRegion(region.US))
	s, err = p.FormatDate(day)
	require.NoError(t, err)
	assert.Equal(t, "05/03/2024", s)
}

// =============================================================================
// TERMINOLOGY
// =============================================================================

func TestProvider_Terminology_ByRegion(t *testing.T) {
	p := region.New(region.UK)

	s, err := p.Terminology(region.TermLeave)
	require.NoError(t, err)
	assert.Equal(t, "Annual Leave", s)

	require.NoError(t, p.SetRegion(region.US))
	s, err = p.Terminology(region.TermLeave)
	require.NoError(t, err)
	assert.Equal(t, "PTO", s)
}

func TestProvider_Terminology_UnknownKeyEchoes(t *testing.T) {
	// GIVEN: A key outside the vocabulary table
	// WHEN: It is resolved
	// THEN: The key itself comes back - graceful degradation, not an error

	p := region.New(region.UK)
	s, err := p.Terminology(region.Term("nonsense"))
	require.NoError(t, err)
	assert.Equal(t, "nonsense", s)
}

func TestProvider_RegionSwitch_RestoresExactly(t *testing.T) {
	// GIVEN: UK terminology and holidays
	// WHEN: Switching UK -> US -> UK
	// THEN: The UK mapping and holiday list come back exactly;
	//       the switch is a pure function of the target region

	p := region.New(region.UK)

	ukLeave, err := p.Terminology(region.TermLeave)
	require.NoError(t, err)
	ukHolidays, err := p.Holidays()
	require.NoError(t, err)

	require.NoError(t, p.SetRegion(region.US))
	require.NoError(t, p.SetRegion(region.UK))

	leave2, err := p.Terminology(region.TermLeave)
	require.NoError(t, err)
	holidays2, err := p.Holidays()
	require.NoError(t, err)

	assert.Equal(t, ukLeave, leave2)
	assert.Equal(t, ukHolidays, holidays2)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestProvider_Holidays_ActiveRegionOnly(t *testing.T) {
	p := region.New(region.UK)

	hols, err := p.Holidays()
	require.NoError(t, err)
	assert.Len(t, hols, 8)
	for _, h := range hols {
		assert.Equal(t, domain.HolidayBank, h.Kind, "UK holidays are bank holidays: %s", h.Name)
	}

	require.NoError(t, p.SetRegion(region.US))
	hols, err = p.Holidays()
	require.NoError(t, err)
	assert.Len(t, hols, 11)
}

func TestProvider_Holidays_RoundTripStableDates(t *testing.T) {
	// GIVEN: Each region's holiday list
	// WHEN: The stored ISO date is parsed and re-formatted
	// THEN: It round-trips exactly

	for _, r := range []region.Region{region.UK, region.US} {
		p := region.New(r)
		hols, err := p.Holidays()
		require.NoError(t, err)
		for _, h := range hols {
			parsed, err := h.Time()
			require.NoError(t, err, "%s/%s", r, h.Name)
			assert.Equal(t, h.Date, parsed.Format("2006-01-02"), "%s/%s", r, h.Name)
		}
	}
}

func TestProvider_IsHoliday(t *testing.T) {
	p := region.New(region.UK)

	h, ok, err := p.IsHoliday(time.Date(2024, time.December, 26, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, ok, "Boxing Day is a UK holiday even at 15:30")
	assert.Equal(t, "Boxing Day", h.Name)

	// Boxing Day is not a US holiday.
	require.NoError(t, p.SetRegion(region.US))
	_, ok, err = p.IsHoliday(time.Date(2024, time.December, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, ok)
}
