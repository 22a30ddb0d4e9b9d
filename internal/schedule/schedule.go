// Package schedule computes upcoming EuroDreams draw dates.
// Draws take place every Monday and Thursday at 20:30 local time.
package schedule

import "time"

// DrawHour and DrawMinute are the local time of every draw.
const (
	DrawHour   = 20
	DrawMinute = 30
)

// Next returns the next occurrence of the target weekday strictly after
// today, at draw time. If today is the target weekday the draw one week out
// is returned.
func Next(target time.Weekday, now time.Time) time.Time {
	daysAhead := int(target) - int(now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), DrawHour, DrawMinute, 0, 0, now.Location())
}

// NextDraw returns the earlier of the next Monday and next Thursday draws.
func NextDraw(now time.Time) time.Time {
	monday := Next(time.Monday, now)
	thursday := Next(time.Thursday, now)
	if monday.Before(thursday) {
		return monday
	}
	return thursday
}

// Abbrev returns the three-letter abbreviation for a weekday, used in the
// console report header.
func Abbrev(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "Mon"
	case time.Tuesday:
		return "Tue"
	case time.Wednesday:
		return "Wed"
	case time.Thursday:
		return "Thu"
	case time.Friday:
		return "Fri"
	case time.Saturday:
		return "Sat"
	case time.Sunday:
		return "Sun"
	default:
		return "???"
	}
}
