package compat

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/canvas"
	"github.com/lixenwraith/subcell/keyboard"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(20, 10)
	return s
}

func TestStyleRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		style ansi.Style
	}{
		{"zero style", ansi.Style{}},
		{"foreground only", ansi.Style{Fg: ansi.ColorRGB(1, 2, 3)}},
		{"full style", ansi.Style{
			Fg:         ansi.ColorRGB(1, 2, 3),
			Bg:         ansi.ColorRGB(4, 5, 6),
			Bold:       true,
			Faint:      true,
			Italic:     true,
			Underline:  true,
			Blink:      true,
			Negative:   true,
			CrossedOut: true,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleFromTcell(StyleTcell(tt.style)); got != tt.style {
				t.Errorf("round trip = %+v, want %+v", got, tt.style)
			}
		})
	}
}

func TestKeyTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   keyboard.Event
		want tcell.Key
	}{
		{"up", keyboard.Event{Key: keyboard.KeyUp}, tcell.KeyUp},
		{"down", keyboard.Event{Key: keyboard.KeyDown}, tcell.KeyDown},
		{"left", keyboard.Event{Key: keyboard.KeyLeft}, tcell.KeyLeft},
		{"right", keyboard.Event{Key: keyboard.KeyRight}, tcell.KeyRight},
		{"enter", keyboard.Event{Key: keyboard.KeyEnter}, tcell.KeyEnter},
		{"tab", keyboard.Event{Key: keyboard.KeyTab}, tcell.KeyTab},
		{"backspace", keyboard.Event{Key: keyboard.KeyBackspace}, tcell.KeyBackspace2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyTcell(tt.ev)
			if got == nil || got.Key() != tt.want {
				t.Errorf("KeyTcell(%v) = %v, want key %v", tt.ev, got, tt.want)
			}
		})
	}

	ev := KeyTcell(keyboard.Event{Key: keyboard.KeyRune, Rune: 'x'})
	if ev == nil || ev.Key() != tcell.KeyRune || ev.Rune() != 'x' {
		t.Errorf("rune event = %v, want KeyRune 'x'", ev)
	}
	if got := KeyTcell(keyboard.Event{Key: keyboard.KeyUnknown}); got != nil {
		t.Errorf("unknown event = %v, want nil", got)
	}
}

func TestBlitDots(t *testing.T) {
	s := simScreen(t)

	d := canvas.NewDots(2, 1)
	d.Set(0, 0)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0))
	BlitDots(s, 1, 1, d, st)

	pr, _, gotStyle, _ := s.GetContent(1, 1)
	if pr != '⠁' {
		t.Errorf("cell rune = %q, want ⠁", pr)
	}
	if gotStyle != st {
		t.Errorf("cell style = %v, want %v", gotStyle, st)
	}
	if pr, _, _, _ := s.GetContent(2, 1); pr != '⠀' {
		t.Errorf("empty cell rune = %q, want blank braille", pr)
	}
}

func TestBlitPixels(t *testing.T) {
	s := simScreen(t)

	p := canvas.NewPixels(2, 2)
	p.Set(0, 0, ansi.RGB{R: 255})
	p.Set(0, 1, ansi.RGB{B: 255})
	BlitPixels(s, 0, 0, p)

	pr, _, gotStyle, _ := s.GetContent(0, 0)
	if pr != '▀' {
		t.Errorf("cell rune = %q, want upper half block", pr)
	}
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Background(tcell.NewRGBColor(0, 0, 255))
	if gotStyle != want {
		t.Errorf("cell style = %v, want %v", gotStyle, want)
	}
}
