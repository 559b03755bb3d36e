package forecast

import (
	"fmt"
	"time"
)

// CalendarDay identifies a date (year, month, day) in some time zone.
// Keying by the full date keeps forecast windows that cross a month boundary correct.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's own location
func DayOf(t time.Time) CalendarDay {
	year, month, day := t.Date()
	return CalendarDay{Year: year, Month: month, Day: day}
}

func (d CalendarDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
