package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

const titleHeight = 40

type GridConfig struct {
	Columns    int
	CellWidth  int
	CellHeight int
	Padding    int
	Title      string
	Background string
	// Path is the file Flush writes to. Flush is a no-op when empty.
	Path string
}

// Grid lays out one DisplayList per cell, row-major, and encodes them as SVG.
type Grid struct {
	config GridConfig
	panels []*DisplayList
}

func NewGrid(config GridConfig) *Grid {
	if config.Columns <= 0 {
		config.Columns = 1
	}
	if config.Background == "" {
		config.Background = "white"
	}
	return &Grid{config: config}
}

// Canvas returns the canvas of cell index, creating cells up to it.
func (g *Grid) Canvas(index int) Canvas {
	for len(g.panels) <= index {
		g.panels = append(g.panels, NewDisplayList())
	}
	return g.panels[index]
}

func (g *Grid) Size() (width, height int) {
	cols := g.config.Columns
	if len(g.panels) < cols {
		cols = len(g.panels)
	}
	rows := (len(g.panels) + g.config.Columns - 1) / g.config.Columns
	width = cols*(g.config.CellWidth+g.config.Padding) + g.config.Padding
	height = rows*(g.config.CellHeight+g.config.Padding) + g.config.Padding
	if g.config.Title != "" {
		height += titleHeight
	}
	return width, height
}

func (g *Grid) cellOrigin(index int) (x, y int) {
	row, col := index/g.config.Columns, index%g.config.Columns
	x = g.config.Padding + col*(g.config.CellWidth+g.config.Padding)
	y = g.config.Padding + row*(g.config.CellHeight+g.config.Padding)
	if g.config.Title != "" {
		y += titleHeight
	}
	return x, y
}

func (g *Grid) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	width, height := g.Size()

	s := svg.New(bw)
	s.Start(width, height)
	s.Rect(0, 0, width, height, "fill:"+g.config.Background)
	if g.config.Title != "" {
		s.Text(width/2, titleHeight/2+g.config.Padding/2, g.config.Title, textStyle(Font{Family: "Arial", Size: 16, Bold: true}, "black"))
	}
	for i, panel := range g.panels {
		x, y := g.cellOrigin(i)
		s.Translate(x, y)
		writePanel(s, panel)
		s.Gend()
	}
	s.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// Flush replaces the file at Path with the current grid.
// The file is written to a temporary sibling first so readers never see a partial document.
func (g *Grid) Flush() error {
	if g.config.Path == "" {
		return nil
	}
	dir := filepath.Dir(g.config.Path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(g.config.Path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()
	if err := g.WriteSVG(f); err != nil {
		f.Close()
		os.Remove(tmpName)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, g.config.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", g.config.Path, err)
	}
	return nil
}

func writePanel(s *svg.SVG, panel *DisplayList) {
	for _, sh := range panel.shapes {
		switch sh.kind {
		case shapeLine:
			l := sh.line
			s.Line(px(l.From.X), px(l.From.Y), px(l.To.X), px(l.To.Y), lineStyle(l))
		case shapeCircle:
			c := sh.circle
			s.Circle(px(c.Center.X), px(c.Center.Y), px(c.Radius), circleStyle(c))
		case shapeText:
			t := sh.text
			s.Text(px(t.At.X), px(t.At.Y), t.Value, textStyle(t.Font, t.Color))
		}
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lineStyle(l Line) string {
	color := l.Color
	if color == "" {
		color = "black"
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%s;stroke-linecap:round", color, formatFloat(l.Width))
}

func circleStyle(c Circle) string {
	fill, outline := c.Fill, c.Outline
	if fill == "" {
		fill = "none"
	}
	if outline == "" {
		outline = "none"
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%s", fill, outline, formatFloat(c.Width))
}

func textStyle(f Font, color string) string {
	if color == "" {
		color = "black"
	}
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	return fmt.Sprintf(
		"font-family:%s;font-size:%dpx;font-weight:%s;fill:%s;text-anchor:middle;dominant-baseline:central",
		f.Family, f.Size, weight, color,
	)
}
