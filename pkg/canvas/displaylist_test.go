package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisplayList_Clear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		clearTag  string
		wantLen   int
		wantLines []Line
		wantTexts []Text
	}{
		{
			name:     "clear hands keeps face",
			clearTag: "hands",
			wantLen:  3,
			wantLines: []Line{
				{From: Point{0, 0}, To: Point{1, 1}, Width: 3},
			},
			wantTexts: []Text{
				{At: Point{5, 5}, Value: "12"},
				{At: Point{5, 9}, Value: "10:00:00", Tag: "time"},
			},
		},
		{
			name:     "clear time keeps hands",
			clearTag: "time",
			wantLen:  4,
			wantLines: []Line{
				{From: Point{0, 0}, To: Point{1, 1}, Width: 3},
				{From: Point{2, 2}, To: Point{3, 3}, Width: 4, Tag: "hands"},
			},
			wantTexts: []Text{
				{At: Point{5, 5}, Value: "12"},
			},
		},
		{
			name:     "empty tag clears nothing",
			clearTag: "",
			wantLen:  5,
			wantLines: []Line{
				{From: Point{0, 0}, To: Point{1, 1}, Width: 3},
				{From: Point{2, 2}, To: Point{3, 3}, Width: 4, Tag: "hands"},
			},
			wantTexts: []Text{
				{At: Point{5, 5}, Value: "12"},
				{At: Point{5, 9}, Value: "10:00:00", Tag: "time"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDisplayList()
			d.Line(Line{From: Point{0, 0}, To: Point{1, 1}, Width: 3})
			d.Text(Text{At: Point{5, 5}, Value: "12"})
			d.Line(Line{From: Point{2, 2}, To: Point{3, 3}, Width: 4, Tag: "hands"})
			d.Circle(Circle{Center: Point{2, 2}, Radius: 3, Fill: "black", Tag: "hands"})
			d.Text(Text{At: Point{5, 9}, Value: "10:00:00", Tag: "time"})

			d.Clear(tt.clearTag)

			if got := d.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if diff := cmp.Diff(tt.wantLines, d.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantTexts, d.Texts()); diff != "" {
				t.Errorf("Texts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisplayList_LenByTag(t *testing.T) {
	t.Parallel()

	d := NewDisplayList()
	d.Line(Line{Tag: "hands"})
	d.Line(Line{Tag: "hands"})
	d.Circle(Circle{Tag: "hands"})
	d.Line(Line{})

	if got := d.Len("hands"); got != 3 {
		t.Errorf(`Len("hands") = %d, want 3`, got)
	}
	if got := d.Len(""); got != 1 {
		t.Errorf(`Len("") = %d, want 1`, got)
	}
	if got := len(d.Circles()); got != 1 {
		t.Errorf("len(Circles()) = %d, want 1", got)
	}
}
