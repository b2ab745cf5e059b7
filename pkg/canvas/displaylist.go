package canvas

type shapeKind int

const (
	shapeLine shapeKind = iota
	shapeCircle
	shapeText
)

type shape struct {
	kind   shapeKind
	line   Line
	circle Circle
	text   Text
}

func (s shape) tag() string {
	switch s.kind {
	case shapeLine:
		return s.line.Tag
	case shapeCircle:
		return s.circle.Tag
	default:
		return s.text.Tag
	}
}

// DisplayList is a retained-mode Canvas that records shapes in draw order.
type DisplayList struct {
	shapes []shape
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Line(l Line) {
	d.shapes = append(d.shapes, shape{kind: shapeLine, line: l})
}

func (d *DisplayList) Circle(c Circle) {
	d.shapes = append(d.shapes, shape{kind: shapeCircle, circle: c})
}

func (d *DisplayList) Text(t Text) {
	d.shapes = append(d.shapes, shape{kind: shapeText, text: t})
}

// Clear removes every shape carrying tag. An empty tag is a no-op.
func (d *DisplayList) Clear(tag string) {
	if tag == "" {
		return
	}
	kept := d.shapes[:0]
	for _, s := range d.shapes {
		if s.tag() != tag {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(d.shapes); i++ {
		d.shapes[i] = shape{}
	}
	d.shapes = kept
}

// Len returns the number of shapes, optionally restricted to one tag.
func (d *DisplayList) Len(tag ...string) int {
	if len(tag) == 0 {
		return len(d.shapes)
	}
	n := 0
	for _, s := range d.shapes {
		if s.tag() == tag[0] {
			n++
		}
	}
	return n
}

// Lines returns the recorded lines in draw order.
func (d *DisplayList) Lines() []Line {
	var lines []Line
	for _, s := range d.shapes {
		if s.kind == shapeLine {
			lines = append(lines, s.line)
		}
	}
	return lines
}

// Texts returns the recorded texts in draw order.
func (d *DisplayList) Texts() []Text {
	var texts []Text
	for _, s := range d.shapes {
		if s.kind == shapeText {
			texts = append(texts, s.text)
		}
	}
	return texts
}

// Circles returns the recorded circles in draw order.
func (d *DisplayList) Circles() []Circle {
	var circles []Circle
	for _, s := range d.shapes {
		if s.kind == shapeCircle {
			circles = append(circles, s.circle)
		}
	}
	return circles
}
