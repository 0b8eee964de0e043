package window

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/lixenwraith/subcell/terminal"
)

func TestSplitRange(t *testing.T) {
	tests := []struct {
		name  string
		total int
		spans []Span
		want  []int
	}{
		{"exact absolutes", 10, []Span{Cells(3), Cells(7)}, []int{3, 7}},
		{"implicit trailing rest", 10, []Span{Cells(3)}, []int{3, 7}},
		{"rest between absolutes", 5, []Span{Cells(1), Rest(), Cells(1)}, []int{1, 3, 1}},
		{"last rest takes ceiling", 7, []Span{Rest(), Rest()}, []int{3, 4}},
		{"rests split evenly", 6, []Span{Rest(), Rest()}, []int{3, 3}},
		{"three rests floor then ceil", 11, []Span{Rest(), Rest(), Rest()}, []int{3, 3, 4}},
		{"proportion floors", 10, []Span{Frac(0.25), Rest()}, []int{2, 8}},
		{"proportion gains implicit rest", 10, []Span{Frac(0.2)}, []int{2, 8}},
		{"mixed kinds", 20, []Span{Cells(4), Frac(0.25), Rest()}, []int{4, 5, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitRange(tt.total, tt.spans)
			if err != nil {
				t.Fatalf("splitRange(%d, %v) error: %v", tt.total, tt.spans, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRange(%d) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestSplitRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		total int
		spans []Span
		want  error
	}{
		{"absolutes overflow", 5, []Span{Cells(3), Cells(7)}, ErrSplitInfeasible},
		{"starved trailing rest", 4, []Span{Cells(4), Rest()}, ErrSplitInfeasible},
		{"more rests than cells", 1, []Span{Rest(), Rest()}, ErrSplitInfeasible},
		{"proportions overflow", 10, []Span{Frac(0.7), Frac(0.7)}, ErrSplitInfeasible},
		{"negative cells", 10, []Span{Cells(-3)}, ErrInvalidSpan},
		{"negative proportion", 10, []Span{Frac(-0.5)}, ErrInvalidSpan},
		{"zero value span", 10, []Span{Cells(2), {}}, ErrInvalidSpan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := splitRange(tt.total, tt.spans)
			if !errors.Is(err, tt.want) {
				t.Errorf("splitRange(%d) error = %v, want %v", tt.total, err, tt.want)
			}
		})
	}
}

func TestHSplitGeometry(t *testing.T) {
	w := New(terminal.NewWriter(io.Discard), 1, 2, 10, 9)
	children, err := w.HSplit(Cells(2), Rest(), Cells(3))
	if err != nil {
		t.Fatalf("HSplit error: %v", err)
	}
	want := []struct{ x, y, width, height int }{
		{1, 2, 10, 2},
		{1, 4, 10, 4},
		{1, 8, 10, 3},
	}
	if len(children) != len(want) {
		t.Fatalf("HSplit returned %d windows, want %d", len(children), len(want))
	}
	for i, c := range children {
		if c.X() != want[i].x || c.Y() != want[i].y || c.Width() != want[i].width || c.Height() != want[i].height {
			t.Errorf("child %d at (%d,%d) size %dx%d, want (%d,%d) size %dx%d",
				i, c.X(), c.Y(), c.Width(), c.Height(), want[i].x, want[i].y, want[i].width, want[i].height)
		}
	}
}

func TestVSplitGeometry(t *testing.T) {
	w := New(terminal.NewWriter(io.Discard), 1, 2, 10, 9)
	children, err := w.VSplit(Frac(0.2), Rest())
	if err != nil {
		t.Fatalf("VSplit error: %v", err)
	}
	want := []struct{ x, y, width, height int }{
		{1, 2, 2, 9},
		{3, 2, 8, 9},
	}
	if len(children) != len(want) {
		t.Fatalf("VSplit returned %d windows, want %d", len(children), len(want))
	}
	for i, c := range children {
		if c.X() != want[i].x || c.Y() != want[i].y || c.Width() != want[i].width || c.Height() != want[i].height {
			t.Errorf("child %d at (%d,%d) size %dx%d, want (%d,%d) size %dx%d",
				i, c.X(), c.Y(), c.Width(), c.Height(), want[i].x, want[i].y, want[i].width, want[i].height)
		}
	}
}

func TestSplitErrorPropagation(t *testing.T) {
	w := New(terminal.NewWriter(io.Discard), 0, 0, 10, 5)
	if _, err := w.HSplit(Cells(100)); !errors.Is(err, ErrSplitInfeasible) {
		t.Errorf("HSplit(Cells(100)) error = %v, want ErrSplitInfeasible", err)
	}
	if _, err := w.VSplit(Span{}); !errors.Is(err, ErrInvalidSpan) {
		t.Errorf("VSplit(Span{}) error = %v, want ErrInvalidSpan", err)
	}
}
