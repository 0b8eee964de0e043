package canvas

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/subcell/ansi"
)

// halfBlock paints two vertically stacked pixels per cell: the glyph's
// foreground colors the upper pixel, its background the lower.
const halfBlock = '▀'

// Pixels is an RGB bitmap rendered two rows per terminal line using
// truecolor half-block glyphs.
type Pixels struct {
	width, height int
	pix           []ansi.RGB // row-major
}

// NewPixels creates a width x height pixel canvas, black filled.
func NewPixels(width, height int) *Pixels {
	return &Pixels{width: width, height: height, pix: make([]ansi.RGB, width*height)}
}

// Width returns the canvas width in pixels.
func (p *Pixels) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p *Pixels) Height() int { return p.height }

// Set colors the pixel at (x, y). Out-of-range coordinates are ignored,
// matching the dot canvas clipping behavior.
func (p *Pixels) Set(x, y int, c ansi.RGB) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// At returns the pixel at (x, y); out-of-range reads return black.
func (p *Pixels) At(x, y int) ansi.RGB {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return ansi.RGB{}
	}
	return p.pix[y*p.width+x]
}

// Fill sets every pixel to c.
func (p *Pixels) Fill(c ansi.RGB) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// SetData replaces the whole bitmap with row-major pixel data. The slice
// length must match the canvas exactly.
func (p *Pixels) SetData(pix []ansi.RGB) error {
	if len(pix) != p.width*p.height {
		return fmt.Errorf("pixel data length %d does not match %dx%d canvas", len(pix), p.width, p.height)
	}
	copy(p.pix, pix)
	return nil
}

// Draw renders the canvas as truecolor half-block rows joined by newlines.
// Consecutive cells sharing both colors reuse one SGR prefix, and every
// row ends with a reset so color state never leaks past the line. With an
// odd height the final row's missing lower pixels render black.
func (p *Pixels) Draw() string {
	var b strings.Builder
	for y := 0; y < p.height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		if p.width == 0 {
			continue
		}
		var fg, bg ansi.RGB
		first := true
		for x := 0; x < p.width; x++ {
			up := p.pix[y*p.width+x]
			var lo ansi.RGB
			if y+1 < p.height {
				lo = p.pix[(y+1)*p.width+x]
			}
			if first || !up.Equal(fg) || !lo.Equal(bg) {
				b.WriteString(ansi.Style{Fg: up.Color(), Bg: lo.Color()}.Sequence())
				fg, bg = up, lo
				first = false
			}
			b.WriteRune(halfBlock)
		}
		b.WriteString(ansi.Reset)
	}
	return b.String()
}
