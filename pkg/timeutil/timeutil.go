package timeutil

import "time"

const (
	WallClockLayout = "15:04:05"
	MonthDayLayout  = "01/02"
)

// DialHour returns the hour as shown on a 12-hour dial, in [0, 11].
func DialHour(t time.Time) int {
	return t.Hour() % 12
}
