package canvas

import (
	"testing"
)

func TestDotsSet(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"dot 1", 0, 0, "⠁"},
		{"dot 4", 1, 0, "⠈"},
		{"dot 2", 0, 1, "⠂"},
		{"dot 5", 1, 1, "⠐"},
		{"dot 3", 0, 2, "⠄"},
		{"dot 6", 1, 2, "⠠"},
		{"dot 7", 0, 3, "⡀"},
		{"dot 8", 1, 3, "⢀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDots(1, 1)
			d.Set(tt.x, tt.y)
			if got := d.Draw(); got != tt.want {
				t.Errorf("Set(%d,%d) drew %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDotsSetAccumulates(t *testing.T) {
	d := NewDots(1, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			d.Set(x, y)
		}
	}
	if got := d.Draw(); got != "⣿" {
		t.Errorf("full cell drew %q, want %q", got, "⣿")
	}
}

func TestDotsSetOutOfRange(t *testing.T) {
	d := NewDots(2, 2)
	d.Set(-1, 0)
	d.Set(0, -1)
	d.Set(4, 0)
	d.Set(0, 8)
	want := "⠀⠀\n⠀⠀"
	if got := d.Draw(); got != want {
		t.Errorf("out-of-range Set changed canvas: %q, want %q", got, want)
	}
}

func TestDotsCellAddressing(t *testing.T) {
	d := NewDots(3, 2)
	d.Set(5, 7) // column 2, row 1, dot 8
	want := "⠀⠀⠀\n⠀⠀⢀"
	if got := d.Draw(); got != want {
		t.Errorf("Draw() = %q, want %q", got, want)
	}
}

func TestDotsDimensions(t *testing.T) {
	d := NewDots(3, 2)
	if d.Width() != 6 || d.Height() != 8 {
		t.Errorf("dimensions = %dx%d, want 6x8", d.Width(), d.Height())
	}
}

func TestDotsClear(t *testing.T) {
	d := NewDots(2, 1)
	d.Set(0, 0)
	d.Set(3, 3)
	d.Clear()
	if got := d.Draw(); got != "⠀⠀" {
		t.Errorf("Clear left %q", got)
	}
}

func TestDotsLine(t *testing.T) {
	tests := []struct {
		name           string
		cols, rows     int
		x1, y1, x2, y2 int
		want           string
	}{
		{
			// samples x=0..3, endpoint x=4 excluded
			name: "horizontal excludes endpoint",
			cols: 3, rows: 1,
			x1: 0, y1: 0, x2: 4, y2: 0,
			want: "⠉⠉⠀",
		},
		{
			name: "reverse horizontal",
			cols: 3, rows: 1,
			x1: 4, y1: 0, x2: 0, y2: 0,
			want: "⠈⠉⠁",
		},
		{
			name: "vertical full cell column",
			cols: 1, rows: 1,
			x1: 0, y1: 0, x2: 0, y2: 4,
			want: "⡇",
		},
		{
			// shallow slope skips: samples (0,0) (1,0) (2,1)
			name: "skewed line rounds per sample",
			cols: 2, rows: 1,
			x1: 0, y1: 0, x2: 3, y2: 1,
			want: "⠉⠂",
		},
		{
			name: "zero length draws nothing",
			cols: 1, rows: 1,
			x1: 1, y1: 2, x2: 1, y2: 2,
			want: "⠀",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDots(tt.cols, tt.rows)
			d.Line(tt.x1, tt.y1, tt.x2, tt.y2)
			if got := d.Draw(); got != tt.want {
				t.Errorf("Line(%d,%d,%d,%d) drew %q, want %q", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
			}
		})
	}
}

func TestDotsDrawRow(t *testing.T) {
	d := NewDots(2, 2)
	d.Set(0, 4) // row 1
	if got := d.DrawRow(1); got != "⠁⠀" {
		t.Errorf("DrawRow(1) = %q, want %q", got, "⠁⠀")
	}
	if got := d.DrawRow(0); got != "⠀⠀" {
		t.Errorf("DrawRow(0) = %q, want %q", got, "⠀⠀")
	}
	if got := d.DrawRow(2); got != "" {
		t.Errorf("DrawRow(2) = %q, want empty", got)
	}
	if got := d.DrawRow(-1); got != "" {
		t.Errorf("DrawRow(-1) = %q, want empty", got)
	}
}
