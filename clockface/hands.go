package clockface

import (
	"errors"
	"fmt"
	"time"

	"github.com/k-yomo/analog-world-clock/pkg/timeutil"
	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

// Hands holds hand angles in degrees, clockwise from 12 o'clock, in [0, 360).
type Hands struct {
	HourAngle   float64
	MinuteAngle float64
	SecondAngle float64

	// DisplayHour is the 24-hour wall-clock hour.
	DisplayHour   int
	DisplayMinute int
	DisplaySecond int
	DisplayDate   string
}

// DisplayTime formats the wall-clock time as HH:MM:SS.
func (h *Hands) DisplayTime() string {
	return fmt.Sprintf("%02d:%02d:%02d", h.DisplayHour, h.DisplayMinute, h.DisplaySecond)
}

// ComputeHands converts instant into timezone and returns the hand geometry.
// The result depends only on the arguments; nothing is carried between calls.
func ComputeHands(db tzdb.Database, timezone string, instant time.Time) (*Hands, error) {
	loc, err := db.Location(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTimezone, timezone, err)
	}
	return HandsAt(instant.In(loc)), nil
}

// HandsAt returns the hand geometry for a time already in its local zone.
// The minute hand moves in whole minutes; the hour hand sweeps with the minute.
func HandsAt(local time.Time) *Hands {
	hour, minute, second := timeutil.DialHour(local), local.Minute(), local.Second()
	return &Hands{
		HourAngle:     (float64(hour) + float64(minute)/60) * 30,
		MinuteAngle:   float64(minute) * 6,
		SecondAngle:   float64(second) * 6,
		DisplayHour:   local.Hour(),
		DisplayMinute: minute,
		DisplaySecond: second,
		DisplayDate:   local.Format(timeutil.MonthDayLayout),
	}
}
