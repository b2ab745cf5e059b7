package worldclock

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/k-yomo/analog-world-clock/clockface"
	"github.com/k-yomo/analog-world-clock/pkg/canvas"
	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
	"go.uber.org/zap"
)

const (
	DefaultDiameter = 150
	DefaultColumns  = 6
	DefaultInterval = time.Second
)

// Surface hands out one canvas per grid cell and publishes them after each tick.
type Surface interface {
	Canvas(index int) canvas.Canvas
	Flush() error
}

type Config struct {
	Database tzdb.Database `validate:"required"`
	Surface  Surface       `validate:"required"`
	// Logger defaults to a no-op logger
	Logger *zap.Logger

	Timezones TimezoneConfig
	// Diameter of each clock face in pixels, at least clockface.MinDiameter
	Diameter int
	// Interval between ticks. The scheduler works in whole seconds.
	Interval time.Duration `validate:"gte=1s"`
}

type TimezoneConfig struct {
	// Desired identifiers in display order
	Desired []string `validate:"required,min=1"`
	// Backups fill the grid when desired identifiers are missing from the database
	Backups []string
	Count   int `validate:"gt=0"`
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config must not be nil")
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if config.Diameter < clockface.MinDiameter {
		return fmt.Errorf("validate config: diameter %d is less than %d", config.Diameter, clockface.MinDiameter)
	}
	return nil
}
