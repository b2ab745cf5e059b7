package clock

import "time"

var Now = time.Now

// NowUTC returns Now converted to UTC.
// Every clock face derives its local time from this instant.
func NowUTC() time.Time {
	return Now().UTC()
}
