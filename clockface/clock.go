package clockface

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/k-yomo/analog-world-clock/pkg/canvas"
	"github.com/k-yomo/analog-world-clock/pkg/tzdb"
)

const (
	HandsTag = "hands"
	TimeTag  = "time"
)

// LabelHeight is the space below the face taken by the name and time labels.
const LabelHeight = 44

var (
	numeralFont = canvas.Font{Family: "Arial", Size: 10, Bold: true}
	nameFont    = canvas.Font{Family: "Arial", Size: 8, Bold: true}
	timeFont    = canvas.Font{Family: "Arial", Size: 7}
)

type Config struct {
	Timezone string `validate:"required"`
	// Diameter of the face in pixels, at least MinDiameter
	Diameter int
}

func (c Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate clock config: %w", err)
	}
	if c.Diameter < MinDiameter {
		return fmt.Errorf("diameter %d is less than %d", c.Diameter, MinDiameter)
	}
	return nil
}

// Clock is one analog clock widget. The face is drawn once on creation;
// Update redraws only the hands and the time label.
type Clock struct {
	config Config
	db     tzdb.Database
	canvas canvas.Canvas
	face   *Face
}

func NewClock(config Config, db tzdb.Database, c canvas.Canvas) (*Clock, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if db == nil || c == nil {
		return nil, errors.New("timezone database and canvas must not be nil")
	}
	if !db.Contains(config.Timezone) {
		return nil, fmt.Errorf("%w %q", ErrInvalidTimezone, config.Timezone)
	}
	clk := &Clock{
		config: config,
		db:     db,
		canvas: c,
		face:   NewFace(config.Diameter),
	}
	clk.drawFace()
	return clk, nil
}

func (c *Clock) Timezone() string {
	return c.config.Timezone
}

// Update recomputes the hands for instant and redraws them.
// On error the canvas is left untouched.
func (c *Clock) Update(instant time.Time) (*Hands, error) {
	hands, err := ComputeHands(c.db, c.config.Timezone, instant)
	if err != nil {
		return nil, err
	}

	c.canvas.Clear(HandsTag)
	c.canvas.Clear(TimeTag)

	hour, minute, second := c.face.HandSegments(hands)
	c.canvas.Line(canvas.Line{From: hour.From, To: hour.To, Width: 4, Color: "black", Tag: HandsTag})
	c.canvas.Line(canvas.Line{From: minute.From, To: minute.To, Width: 3, Color: "blue", Tag: HandsTag})
	c.canvas.Line(canvas.Line{From: second.From, To: second.To, Width: 1, Color: "red", Tag: HandsTag})
	c.canvas.Circle(canvas.Circle{Center: c.face.Center, Radius: centerDotRadius, Fill: "black", Tag: HandsTag})

	timeY, dateY := c.labelY(2), c.labelY(3)
	c.canvas.Text(canvas.Text{At: canvas.Point{X: c.face.Center.X, Y: timeY}, Value: hands.DisplayTime(), Font: timeFont, Tag: TimeTag})
	c.canvas.Text(canvas.Text{At: canvas.Point{X: c.face.Center.X, Y: dateY}, Value: hands.DisplayDate, Font: timeFont, Tag: TimeTag})
	return hands, nil
}

func (c *Clock) drawFace() {
	f := c.face
	c.canvas.Circle(canvas.Circle{Center: f.Center, Radius: f.Radius, Outline: "black", Width: 2})
	for _, s := range f.HourTicks {
		c.canvas.Line(canvas.Line{From: s.From, To: s.To, Width: 3, Color: "black"})
	}
	for _, s := range f.MinuteTicks {
		c.canvas.Line(canvas.Line{From: s.From, To: s.To, Width: 1, Color: "gray"})
	}
	for _, n := range f.Numerals {
		c.canvas.Text(canvas.Text{At: n.At, Value: n.Value, Font: numeralFont})
	}
	c.canvas.Text(canvas.Text{
		At:    canvas.Point{X: f.Center.X, Y: c.labelY(1)},
		Value: DisplayName(c.config.Timezone),
		Font:  nameFont,
	})
}

// labelY returns the baseline of the nth label line under the face.
func (c *Clock) labelY(line int) float64 {
	return float64(c.config.Diameter) + float64(line*11) - 4
}

// DisplayName shortens an identifier to its city part,
// e.g. "America/Argentina/Buenos_Aires" becomes "Buenos Aires".
func DisplayName(timezone string) string {
	city := timezone[strings.LastIndex(timezone, "/")+1:]
	return strings.ReplaceAll(city, "_", " ")
}

// DrawError draws the placeholder shown in place of a clock that could not be created.
func DrawError(c canvas.Canvas, timezone string, diameter int) {
	center := float64(diameter / 2)
	c.Text(canvas.Text{At: canvas.Point{X: center, Y: center - 6}, Value: "Error:", Font: timeFont, Color: "red"})
	c.Text(canvas.Text{At: canvas.Point{X: center, Y: center + 6}, Value: DisplayName(timezone), Font: timeFont, Color: "red"})
}
