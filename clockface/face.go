package clockface

import (
	"math"
	"strconv"

	"github.com/k-yomo/analog-world-clock/pkg/canvas"
)

const (
	faceMargin = 10

	hourTickInnerInset   = 15
	hourTickOuterInset   = 5
	minuteTickInnerInset = 8
	minuteTickOuterInset = 3
	numeralInset         = 25

	// Hand insets shrink from hour to second so the second hand is longest.
	hourHandInset   = 40
	minuteHandInset = 20
	secondHandInset = 10

	centerDotRadius = 3
)

// MinDiameter leaves the hour hand a positive length.
const MinDiameter = 2*(faceMargin+hourHandInset) + 20

type Segment struct {
	From canvas.Point
	To   canvas.Point
}

type Numeral struct {
	Value string
	At    canvas.Point
}

// Face is the static geometry of a clock face. It does not depend on time.
type Face struct {
	Diameter    int
	Center      canvas.Point
	Radius      float64
	HourTicks   []Segment
	MinuteTicks []Segment
	Numerals    []Numeral
}

func NewFace(diameter int) *Face {
	center := float64(diameter / 2)
	f := &Face{
		Diameter: diameter,
		Center:   canvas.Point{X: center, Y: center},
		Radius:   float64(diameter/2 - faceMargin),
	}

	for i := 0; i < 60; i++ {
		angle := float64(i * 6)
		if i%5 == 0 {
			f.HourTicks = append(f.HourTicks, f.radialSegment(angle, hourTickInnerInset, hourTickOuterInset))
			continue
		}
		f.MinuteTicks = append(f.MinuteTicks, f.radialSegment(angle, minuteTickInnerInset, minuteTickOuterInset))
	}

	for i := 1; i <= 12; i++ {
		f.Numerals = append(f.Numerals, Numeral{
			Value: strconv.Itoa(i),
			At:    PointAt(f.Center, f.Radius-numeralInset, float64(i*30)),
		})
	}
	return f
}

// HandSegments returns the hour, minute and second hands, each running from
// the center to radius minus its inset along its angle.
func (f *Face) HandSegments(h *Hands) (hour, minute, second Segment) {
	hour = Segment{From: f.Center, To: PointAt(f.Center, f.Radius-hourHandInset, h.HourAngle)}
	minute = Segment{From: f.Center, To: PointAt(f.Center, f.Radius-minuteHandInset, h.MinuteAngle)}
	second = Segment{From: f.Center, To: PointAt(f.Center, f.Radius-secondHandInset, h.SecondAngle)}
	return hour, minute, second
}

func (f *Face) radialSegment(angleDeg, innerInset, outerInset float64) Segment {
	return Segment{
		From: PointAt(f.Center, f.Radius-innerInset, angleDeg),
		To:   PointAt(f.Center, f.Radius-outerInset, angleDeg),
	}
}

// PointAt places a point r away from center at angleDeg clockwise from 12 o'clock.
func PointAt(center canvas.Point, r, angleDeg float64) canvas.Point {
	theta := angleDeg * math.Pi / 180
	return canvas.Point{
		X: center.X + r*math.Sin(theta),
		Y: center.Y - r*math.Cos(theta),
	}
}
