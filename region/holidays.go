package region

import "github.com/alfie/leave-planner/domain"

// =============================================================================
// HOLIDAY CALENDARS - Static per-region sets for the 2024 reference year
// =============================================================================
// The sets are immutable within a session. A region switch swaps the
// active set; it never merges or mutates these tables.

var holidays = map[Region][]domain.Holiday{
	US: {
		{Date: "2024-01-01", Name: "New Year's Day", Kind: domain.HolidayFederal},
		{Date: "2024-01-15", Name: "Martin Luther King Jr. Day", Kind: domain.HolidayFederal},
		{Date: "2024-02-19", Name: "Presidents' Day", Kind: domain.HolidayFederal},
		{Date: "2024-05-27", Name: "Memorial Day", Kind: domain.HolidayFederal},
		{Date: "2024-06-19", Name: "Juneteenth", Kind: domain.HolidayFederal},
		{Date: "2024-07-04", Name: "Independence Day", Kind: domain.HolidayFederal},
		{Date: "2024-09-02", Name: "Labor Day", Kind: domain.HolidayFederal},
		{Date: "2024-10-14", Name: "Columbus Day", Kind: domain.HolidayFederal},
		{Date: "2024-11-11", Name: "Veterans Day", Kind: domain.HolidayFederal},
		{Date: "2024-11-28", Name: "Thanksgiving Day", Kind: domain.HolidayFederal},
		{Date: "2024-12-25", Name: "Christmas Day", Kind: domain.HolidayFederal},
	},
	UK: {
		{Date: "2024-01-01", Name: "New Year's Day", Kind: domain.HolidayBank},
		{Date: "2024-03-29", Name: "Good Friday", Kind: domain.HolidayBank},
		{Date: "2024-04-01", Name: "Easter Monday", Kind: domain.HolidayBank},
		{Date: "2024-05-06", Name: "Early May Bank Holiday", Kind: domain.HolidayBank},
		{Date: "2024-05-27", Name: "Spring Bank Holiday", Kind: domain.HolidayBank},
		{Date: "2024-08-26", Name: "Summer Bank Holiday", Kind: domain.HolidayBank},
		{Date: "2024-12-25", Name: "Christmas Day", Kind: domain.HolidayBank},
		{Date: "2024-12-26", Name: "Boxing Day", Kind: domain.HolidayBank},
	},
}
