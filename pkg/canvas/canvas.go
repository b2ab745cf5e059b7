package canvas

// Point is a position in pixels; y grows downward.
type Point struct {
	X float64
	Y float64
}

type Font struct {
	Family string
	Size   int
	Bold   bool
}

type Line struct {
	From  Point
	To    Point
	Width float64
	Color string
	Tag   string
}

type Circle struct {
	Center  Point
	Radius  float64
	Fill    string
	Outline string
	Width   float64
	Tag     string
}

type Text struct {
	At    Point
	Value string
	Font  Font
	Color string
	Tag   string
}

// Canvas is a drawing sink. Shapes stay on it until cleared by tag.
//
//go:generate mockgen -source=$GOFILE -package=mock_$GOPACKAGE -destination=../../mocks/pkg/$GOPACKAGE/mock_$GOFILE
type Canvas interface {
	Line(l Line)
	Circle(c Circle)
	Text(t Text)
	Clear(tag string)
}
