// Shell-style line editor in a scrolling ten by ten window.
// Submitted lines echo into the window; type quit to exit.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/subcell/keyboard"
	"github.com/lixenwraith/subcell/prompt"
	"github.com/lixenwraith/subcell/terminal"
	"github.com/lixenwraith/subcell/window"
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPROMPT-DEMO CRASHED: %v\x1b[0m\n", r)
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
	term.Clear()
	term.Flush()
	defer func() {
		// Park the shell cursor below the window on the way out
		term.Reset()
		term.SetCursor(0, 10)
		term.Flush()
	}()

	win := window.New(term, 0, 0, 10, 10)
	_ = win.AppendText("type quit to exit", window.Left)

	reader := keyboard.Stdin(state)
	defer reader.Close()

	done := make(chan struct{})
	var once sync.Once
	quit := func() { once.Do(func() { close(done) }) }

	// Raw mode delivers ctrl-c as a plain 0x03 rune
	if err := reader.Listen(func(ev keyboard.Event) {
		if ev.Key == keyboard.KeyRune && ev.Rune == 0x03 {
			quit()
		}
	}); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard: %v\n", err)
		os.Exit(1)
	}

	input := prompt.New(term, win, reader, func(line string, fields []string) {
		if line == "quit" {
			quit()
		}
	})
	if err := input.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "prompt: %v\n", err)
		os.Exit(1)
	}

	<-done
}
