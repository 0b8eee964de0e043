// Interactive probe for the keyboard reader: every decoded event is
// appended to a scrolling log window until q or ctrl-c quits.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/keyboard"
	"github.com/lixenwraith/subcell/terminal"
	"github.com/lixenwraith/subcell/window"
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINPUT-TEST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	state, err := terminal.Capture(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "stdin is not a terminal: %v\n", err)
		os.Exit(1)
	}

	term := terminal.Stdout()
	term.EnterAlt()
	term.Clear()
	term.HideCursor()
	if err := term.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal write failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		term.ExitAlt()
		term.Reset()
		term.Flush()
	}()

	cols, rows := terminal.Size(int(os.Stdout.Fd()))
	header := window.NewStyled(term, 0, 0, cols, 1, ansi.Style{Negative: true})
	log := window.New(term, 0, 1, cols, rows-1)
	_ = header.AppendText("keyboard probe: press keys, q or ctrl-c quits", window.Center)

	reader := keyboard.Stdin(state)
	defer reader.Close()

	events := make(chan keyboard.Event, 16)
	if err := reader.Listen(func(ev keyboard.Event) { events <- ev }); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard: %v\n", err)
		os.Exit(1)
	}

	header.Draw()
	log.Draw()
	term.Flush()

	for ev := range events {
		// Raw mode delivers ctrl-c as a plain 0x03 rune
		if ev.Key == keyboard.KeyRune && (ev.Rune == 'q' || ev.Rune == 0x03) {
			return
		}
		entry := "key: " + ev.Key.String()
		if ev.Key == keyboard.KeyRune {
			entry = fmt.Sprintf("rune: %q", ev.Rune)
		}
		_ = log.AppendText(entry, window.Left)
		log.Draw()
		term.Flush()
	}
}
