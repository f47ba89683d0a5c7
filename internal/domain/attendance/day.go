package attendance

import "time"

const dayLayout = "2006-01-02"

// DayKey is the server-local calendar day of t.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(dayLayout)
}

// DayBounds returns [start, end) of t's server-local calendar day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	l := t.In(time.Local)
	start := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// CheckInClock formats the wall-clock check-in time, e.g. "6:05:09 AM".
func CheckInClock(t time.Time) string {
	return t.In(time.Local).Format("3:04:05 PM")
}
