package worldclock

import (
	"fmt"
	"time"

	"github.com/k-yomo/analog-world-clock/clockface"
	"github.com/k-yomo/analog-world-clock/tzset"
	"go.uber.org/zap"
)

// WorldClock owns the grid of clocks and advances all of them on every tick.
type WorldClock struct {
	config *Config
	logger *zap.Logger

	zones  *tzset.Set
	clocks []*clockface.Clock
}

func New(config *Config) (*WorldClock, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tz := config.Timezones
	zones := tzset.Resolve(config.Database, tz.Desired, tz.Backups, tz.Count, logger)

	w := &WorldClock{
		config: config,
		logger: logger,
		zones:  zones,
	}
	for i, timezone := range zones.Zones {
		c := config.Surface.Canvas(i)
		clk, err := clockface.NewClock(clockface.Config{Timezone: timezone, Diameter: config.Diameter}, config.Database, c)
		if err != nil {
			logger.Error("failed to create clock", zap.String("timezone", timezone), zap.Error(err))
			clockface.DrawError(c, timezone, config.Diameter)
			continue
		}
		w.clocks = append(w.clocks, clk)
		logger.Debug("created clock", zap.String("timezone", timezone))
	}
	return w, nil
}

// Zones returns the resolved timezone set.
func (w *WorldClock) Zones() *tzset.Set {
	return w.zones
}

func (w *WorldClock) Clocks() []*clockface.Clock {
	return w.clocks
}

type TickFailure struct {
	Timezone string
	Err      error
}

type TickResult struct {
	Updated  int
	Failures []TickFailure
	FlushErr error
}

// Tick redraws every clock for now and flushes the surface.
// A failing clock is logged and skipped; the others are still updated.
func (w *WorldClock) Tick(now time.Time) *TickResult {
	result := &TickResult{}
	for _, clk := range w.clocks {
		if err := updateClock(clk, now); err != nil {
			w.logger.Error("failed to update clock", zap.String("timezone", clk.Timezone()), zap.Error(err))
			result.Failures = append(result.Failures, TickFailure{Timezone: clk.Timezone(), Err: err})
			continue
		}
		result.Updated++
	}
	if err := w.config.Surface.Flush(); err != nil {
		w.logger.Error("failed to flush surface", zap.Error(err))
		result.FlushErr = err
	}
	return result
}

func updateClock(clk *clockface.Clock, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update panicked: %v", r)
		}
	}()
	_, err = clk.Update(now)
	return err
}
