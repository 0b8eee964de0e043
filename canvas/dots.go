package canvas

import (
	"math"
	"strings"
)

// brailleBits maps the sub-cell position (y%4, x%2) to its dot bit.
// Unicode braille numbers dots 1-6 column-major over the top three rows
// and puts dots 7-8 across the bottom row, hence the irregular last pair.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBase is the first codepoint of the braille pattern block; adding
// a cell's dot mask to it yields the glyph.
const brailleBase = 0x2800

// Dots is a monochrome bitmap rendered as braille glyphs, packing 2x4 dots
// into each terminal cell.
type Dots struct {
	cols, rows int
	cells      []uint8 // row-major dot masks
}

// NewDots creates an empty dot canvas of cols x rows terminal cells. The
// drawable dot space is 2*cols wide and 4*rows high.
func NewDots(cols, rows int) *Dots {
	return &Dots{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// Width returns the canvas width in dots.
func (d *Dots) Width() int { return d.cols * 2 }

// Height returns the canvas height in dots.
func (d *Dots) Height() int { return d.rows * 4 }

// Set lights the dot at (x, y). Out-of-range coordinates are ignored.
func (d *Dots) Set(x, y int) {
	if x < 0 || y < 0 || x >= d.cols*2 || y >= d.rows*4 {
		return
	}
	d.cells[(y/4)*d.cols+x/2] |= brailleBits[y%4][x%2]
}

// Line lights dots from (x1, y1) toward (x2, y2) by parametric sampling:
// one sample per step of the longer axis, each rounded independently, with
// the endpoint excluded. Not Bresenham; near-diagonal segments may skip
// dots, and samples falling outside the canvas clip silently.
func (d *Dots) Line(x1, y1, x2, y2 int) {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	for i := 0; i < steps; i++ {
		x := math.Round(float64(x1) + float64(dx)/float64(steps)*float64(i))
		y := math.Round(float64(y1) + float64(dy)/float64(steps)*float64(i))
		d.Set(int(x), int(y))
	}
}

// Clear zeroes every dot.
func (d *Dots) Clear() {
	clear(d.cells)
}

// Draw renders the canvas as rows of braille runes joined by newlines.
func (d *Dots) Draw() string {
	var b strings.Builder
	b.Grow(d.rows * (d.cols*3 + 1)) // braille runes encode to 3 bytes
	for row := 0; row < d.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		d.writeRow(&b, row)
	}
	return b.String()
}

// DrawRow renders a single cell row, without a trailing newline. Rows
// outside the canvas render empty.
func (d *Dots) DrawRow(row int) string {
	if row < 0 || row >= d.rows {
		return ""
	}
	var b strings.Builder
	b.Grow(d.cols * 3)
	d.writeRow(&b, row)
	return b.String()
}

func (d *Dots) writeRow(b *strings.Builder, row int) {
	for col := 0; col < d.cols; col++ {
		b.WriteRune(brailleBase + rune(d.cells[row*d.cols+col]))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
