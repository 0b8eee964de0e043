// Renders a mandelbrot zoom as half-block pixels, two per character cell,
// with the escape time mapped onto a perceptual color gradient.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/canvas"
)

// Viewport of the classic seahorse valley detail.
const (
	viewLeft   = -0.7436
	viewTop    = 0.1306
	viewRight  = -0.7426
	viewBottom = 0.1316
)

var (
	widthFlag  = flag.Int("width", 64, "canvas width in pixels")
	heightFlag = flag.Int("height", 64, "canvas height in pixels")
	iterFlag   = flag.Int("iter", 100, "iteration limit")
)

var (
	paletteCold = colorful.Color{R: 0.05, G: 0.03, B: 0.25}
	paletteHot  = colorful.Color{R: 1.00, G: 0.85, B: 0.30}
)

func main() {
	flag.Parse()
	width, height, limit := *widthFlag, *heightFlag, *iterFlag
	if width < 2 || height < 2 || limit < 1 {
		fmt.Fprintln(os.Stderr, "width and height must be at least 2, iter at least 1")
		os.Exit(1)
	}

	data := make([]ansi.RGB, width*height)
	for py := 0; py < height; py++ {
		ci := viewTop + (viewBottom-viewTop)*float64(py)/float64(height-1)
		for px := 0; px < width; px++ {
			cr := viewLeft + (viewRight-viewLeft)*float64(px)/float64(width-1)
			data[py*width+px] = shade(escape(cr, ci, limit), limit)
		}
	}

	pix := canvas.NewPixels(width, height)
	if err := pix.SetData(data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(pix.Draw())
}

// escape returns the iteration at which z = z^2 + c leaves the radius-2
// disk, or max when it never does.
func escape(cr, ci float64, max int) int {
	var zr, zi float64
	for i := 0; i < max; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > 4 {
			return i
		}
	}
	return max
}

// shade maps escape time onto the gradient; interior points stay black.
func shade(iter, max int) ansi.RGB {
	if iter >= max {
		return ansi.RGB{}
	}
	t := float64(iter) / float64(max)
	r, g, b := paletteCold.BlendHcl(paletteHot, t).Clamped().RGB255()
	return ansi.RGB{R: r, G: g, B: b}
}
