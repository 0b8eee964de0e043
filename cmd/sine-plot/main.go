// Plots one period of a sine wave with braille sub-cell resolution, then a
// midpoint circle on a raw dot canvas, and prints both.
package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/lixenwraith/subcell/canvas"
)

var (
	colsFlag = flag.Int("cols", 40, "plot width in cells")
	rowsFlag = flag.Int("rows", 10, "plot height in cells")
)

func main() {
	flag.Parse()

	// One full wave: domain 0..2pi horizontally, -1..1 vertically.
	plot := canvas.NewPlot(*colsFlag, *rowsFlag, 0, -1, 2*math.Pi, 1)
	plot.Line(0, 0, 2*math.Pi, 0)
	for x := 0.0; x < 2*math.Pi; x += 0.1 {
		plot.Point(x, math.Sin(x))
	}
	fmt.Println(plot.Draw())

	// Characters are taller than wide, so 20x10 cells is roughly square.
	dots := canvas.NewDots(20, 10)
	circle(dots, dots.Width()/2, dots.Height()/2, 10)
	fmt.Println(dots.Draw())
}

// circle rasterizes a midpoint circle of radius r centered on (cx, cy).
func circle(d *canvas.Dots, cx, cy, r int) {
	x, y := 0, r
	decision := 3 - 2*r

	octant(d, cx, cy, x, y)
	for y >= x {
		x++
		if decision > 0 {
			y--
			decision += 4*(x-y) + 10
		} else {
			decision += 4*x + 6
		}
		octant(d, cx, cy, x, y)
	}
}

// octant mirrors one point into all eight circle octants.
func octant(d *canvas.Dots, cx, cy, x, y int) {
	d.Set(cx+x, cy+y)
	d.Set(cx-x, cy+y)
	d.Set(cx+x, cy-y)
	d.Set(cx-x, cy-y)
	d.Set(cx+y, cy+x)
	d.Set(cx-y, cy+x)
	d.Set(cx+y, cy-x)
	d.Set(cx-y, cy-x)
}
