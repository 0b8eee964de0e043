// Splits the terminal into header, body, and footer bands, plots a random
// walk in the body, and lays the whole screen out again on every resize.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/canvas"
	"github.com/lixenwraith/subcell/keyboard"
	"github.com/lixenwraith/subcell/terminal"
	"github.com/lixenwraith/subcell/window"
)

// Tokyo Night
var (
	baseStyle   = ansi.Style{Fg: ansi.ColorInt(0xA9B1D6), Bg: ansi.ColorInt(0x1A1B26)}
	headerStyle = ansi.Style{Fg: ansi.ColorInt(0x1A1B26), Bg: ansi.ColorInt(0xA9B1D6)}
	footerStyle = ansi.Style{Fg: ansi.ColorInt(0x565F89), Bg: ansi.ColorInt(0x414868)}
)

type point struct{ x, y int }

func main() {
	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWINDOW-LAYOUT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	state, err := terminal.Capture(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "stdin is not a terminal: %v\n", err)
		os.Exit(1)
	}

	reader := keyboard.Stdin(state)
	events := make(chan keyboard.Event, 16)
	if err := reader.Listen(func(ev keyboard.Event) { events <- ev }); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	term := terminal.Stdout()
	term.EnterAlt()
	term.HideCursor()
	term.Flush()
	defer func() {
		term.ExitAlt()
		term.Reset()
		term.Flush()
	}()

	// One fixed walk so every relayout draws the same data.
	walk := make([]point, 100)
	for i := range walk {
		walk[i] = point{i, rand.Intn(100)}
	}

	layout := func(cols, rows int) error {
		screen := window.NewStyled(term, 0, 0, cols, rows, baseStyle)
		bands, err := screen.HSplit(window.Cells(1), window.Rest(), window.Cells(1))
		if err != nil {
			return err
		}
		header, body, footer := bands[0], bands[1], bands[2]
		header.SetStyle(headerStyle)
		footer.SetStyle(footerStyle)
		panes, err := body.VSplit(window.Frac(0.2), window.Rest())
		if err != nil {
			return err
		}
		left, right := panes[0], panes[1]

		_ = header.AppendLine("random walk", window.Center)
		_ = footer.AppendLine(fmt.Sprintf("%dx%d / q or ctrl-c quits", cols, rows), window.Center)

		plot := canvas.NewPlot(right.Width(), right.Height(), 0, 0, 100, 100)
		px, py := 0, 0
		for _, p := range walk {
			plot.Line(float64(px), float64(py), float64(p.x), float64(p.y))
			px, py = p.x, p.y
			_ = left.AppendLine(fmt.Sprintf("%d, %d", p.x, p.y), window.Left)
		}
		if err := right.SetContent(plot.Draw(), window.Left); err != nil {
			return err
		}

		term.Clear()
		for _, w := range []*window.Window{header, footer, left, right} {
			w.Draw()
		}
		return term.Flush()
	}

	redraw := func(cols, rows int) {
		// A failed split means the terminal is too small for the fixed
		// bands. Blank the frame and wait for a workable size.
		if err := layout(cols, rows); err != nil {
			term.Clear()
			term.Flush()
		}
	}

	watcher := terminal.WatchResize(int(os.Stdout.Fd()))
	defer watcher.Stop()

	redraw(terminal.Size(int(os.Stdout.Fd())))

	for {
		select {
		case ev := <-events:
			// Raw mode delivers ctrl-c as a plain 0x03 rune
			if ev.Key == keyboard.KeyRune && (ev.Rune == 'q' || ev.Rune == 0x03) {
				return
			}
		case sz := <-watcher.Events():
			redraw(sz.Width, sz.Height)
		}
	}
}
