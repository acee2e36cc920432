package alerts

import "time"

// GlobalDate is a fixed annual date visible to every subscriber regardless of
// ownership scoping.
type GlobalDate struct {
	Name  string
	Month time.Month
	Day   int
}

// GlobalDates is the holiday table. Entries are evaluated before any personal
// dates, so on a same-day tie a holiday sorts first.
var GlobalDates = []GlobalDate{
	{Name: "New Year's Day", Month: time.January, Day: 1},
	{Name: "Valentine's Day", Month: time.February, Day: 14},
	{Name: "Independence Day", Month: time.July, Day: 4},
	{Name: "Halloween", Month: time.October, Day: 31},
	{Name: "Christmas", Month: time.December, Day: 25},
	{Name: "New Year's Eve", Month: time.December, Day: 31},
}
