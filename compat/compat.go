// Package compat bridges the toolkit to tcell, for embedding canvases and
// styles in applications that already own a tcell screen.
package compat

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/canvas"
	"github.com/lixenwraith/subcell/keyboard"
)

func colorTcell(c ansi.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// StyleTcell converts a style to its tcell equivalent. Truecolor values and
// the shared attribute bits convert losslessly.
func StyleTcell(s ansi.Style) tcell.Style {
	st := tcell.StyleDefault
	if s.Fg.IsSet() {
		st = st.Foreground(colorTcell(s.Fg.RGB()))
	}
	if s.Bg.IsSet() {
		st = st.Background(colorTcell(s.Bg.RGB()))
	}
	return st.
		Bold(s.Bold).
		Dim(s.Faint).
		Italic(s.Italic).
		Underline(s.Underline).
		Blink(s.Blink).
		Reverse(s.Negative).
		StrikeThrough(s.CrossedOut)
}

// StyleFromTcell converts a tcell style. Default colors stay unset; palette
// colors arrive as their RGB values.
func StyleFromTcell(st tcell.Style) ansi.Style {
	fg, bg, attrs := st.Decompose()
	var s ansi.Style
	if fg != tcell.ColorDefault {
		r, g, b := fg.RGB()
		s.Fg = ansi.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	if bg != tcell.ColorDefault {
		r, g, b := bg.RGB()
		s.Bg = ansi.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	s.Bold = attrs&tcell.AttrBold != 0
	s.Faint = attrs&tcell.AttrDim != 0
	s.Italic = attrs&tcell.AttrItalic != 0
	s.Underline = attrs&tcell.AttrUnderline != 0
	s.Blink = attrs&tcell.AttrBlink != 0
	s.Negative = attrs&tcell.AttrReverse != 0
	s.CrossedOut = attrs&tcell.AttrStrikeThrough != 0
	return s
}

// KeyTcell converts a decoded key event to a tcell key event. Unknown
// escapes have no tcell equivalent and return nil.
func KeyTcell(ev keyboard.Event) *tcell.EventKey {
	switch ev.Key {
	case keyboard.KeyRune:
		return tcell.NewEventKey(tcell.KeyRune, ev.Rune, tcell.ModNone)
	case keyboard.KeyUp:
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	case keyboard.KeyDown:
		return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	case keyboard.KeyLeft:
		return tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	case keyboard.KeyRight:
		return tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	case keyboard.KeyEnter:
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	case keyboard.KeyTab:
		return tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	case keyboard.KeyBackspace:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	}
	return nil
}

// BlitDots writes a braille canvas onto a tcell screen with its top-left
// cell at (x, y), every cell under one style.
func BlitDots(s tcell.Screen, x, y int, d *canvas.Dots, st tcell.Style) {
	rows := d.Height() / 4
	for row := 0; row < rows; row++ {
		col := 0
		for _, r := range d.DrawRow(row) {
			s.SetContent(x+col, y+row, r, nil, st)
			col++
		}
	}
}

// BlitPixels writes a half-block canvas onto a tcell screen with its
// top-left cell at (x, y). Each screen cell carries two stacked pixels,
// upper as foreground and lower as background; an odd final row renders
// black below.
func BlitPixels(s tcell.Screen, x, y int, p *canvas.Pixels) {
	for py := 0; py < p.Height(); py += 2 {
		for px := 0; px < p.Width(); px++ {
			upper := p.At(px, py)
			var lower ansi.RGB
			if py+1 < p.Height() {
				lower = p.At(px, py+1)
			}
			st := tcell.StyleDefault.
				Foreground(colorTcell(upper)).
				Background(colorTcell(lower))
			s.SetContent(x+px, y+py/2, '▀', nil, st)
		}
	}
}
