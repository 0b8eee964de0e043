package canvas

import "math"

// Plot maps a real-valued coordinate domain onto a Dots canvas. The y axis
// flips during translation so larger domain values render nearer the top,
// the usual plotting orientation.
type Plot struct {
	MinX, MinY, MaxX, MaxY float64

	dots *Dots
}

// NewPlot creates a plot of cols x rows terminal cells covering the domain
// [minX, maxX] x [minY, maxY].
func NewPlot(cols, rows int, minX, minY, maxX, maxY float64) *Plot {
	return &Plot{
		MinX: minX,
		MinY: minY,
		MaxX: maxX,
		MaxY: maxY,
		dots: NewDots(cols, rows),
	}
}

// translate maps v in [a, b] onto the integer range [0, s].
func translate(v, a, b float64, s int) int {
	return int(math.Round((v - a) / (b - a) * float64(s)))
}

// translateXY maps a domain point to dot coordinates, flipping y.
func (p *Plot) translateXY(x, y float64) (int, int) {
	return translate(x, p.MinX, p.MaxX, p.dots.Width()-1),
		translate(y, p.MaxY, p.MinY, p.dots.Height()-1)
}

// Point lights the dot under the domain point (x, y). Points outside the
// domain translate out of range and clip silently.
func (p *Plot) Point(x, y float64) {
	dx, dy := p.translateXY(x, y)
	p.dots.Set(dx, dy)
}

// Line draws between two domain points with the dot canvas line sampler.
func (p *Plot) Line(x1, y1, x2, y2 float64) {
	ax, ay := p.translateXY(x1, y1)
	bx, by := p.translateXY(x2, y2)
	p.dots.Line(ax, ay, bx, by)
}

// Clear zeroes the backing canvas.
func (p *Plot) Clear() { p.dots.Clear() }

// Draw renders the backing canvas.
func (p *Plot) Draw() string { return p.dots.Draw() }

// DrawRow renders one cell row of the backing canvas.
func (p *Plot) DrawRow(row int) string { return p.dots.DrawRow(row) }

// Dots exposes the backing canvas for direct dot access.
func (p *Plot) Dots() *Dots { return p.dots }
