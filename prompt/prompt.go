// Package prompt provides line input over a window: keystrokes echo into
// the window's bottom row, submitted lines scroll up as history.
package prompt

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/keyboard"
	"github.com/lixenwraith/subcell/terminal"
	"github.com/lixenwraith/subcell/window"
)

// DefaultPrompt prefixes the edit line unless SetPrompt overrides it.
const DefaultPrompt = "> "

// Func receives each submitted line along with its whitespace-split fields.
type Func func(line string, fields []string)

// Input couples a window, a keyboard reader and an on-enter callback.
// Typing echoes into the window's last row; backspace edits; enter submits
// the line to the callback, echoes it into the history and clears the edit
// buffer. Tab, cursor keys and unknown escapes are ignored.
type Input struct {
	term   *terminal.Writer
	win    *window.Window
	reader *keyboard.Reader
	fn     Func

	mu     sync.Mutex
	prompt string
	edit   []rune
}

// New builds an input over win, reading keys from r and reporting submitted
// lines to fn. Drawing goes through t; each keystroke redraws and flushes.
func New(t *terminal.Writer, win *window.Window, r *keyboard.Reader, fn Func) *Input {
	return &Input{
		term:   t,
		win:    win,
		reader: r,
		fn:     fn,
		prompt: DefaultPrompt,
	}
}

// SetPrompt replaces the edit line prefix. Empty is allowed.
func (i *Input) SetPrompt(p string) {
	i.mu.Lock()
	i.prompt = p
	i.mu.Unlock()
}

// Listen registers the input with its reader, starting it if needed, and
// draws the initial prompt row.
func (i *Input) Listen() error {
	if err := i.reader.Listen(i.handle); err != nil {
		return err
	}
	i.mu.Lock()
	i.redraw()
	i.mu.Unlock()
	return nil
}

// handle runs on the reader goroutine; the callback is invoked outside the
// lock so it may call back into the input.
func (i *Input) handle(ev keyboard.Event) {
	var line string
	var submitted bool

	i.mu.Lock()
	switch ev.Key {
	case keyboard.KeyRune:
		i.edit = append(i.edit, ev.Rune)
	case keyboard.KeyBackspace:
		if len(i.edit) > 0 {
			i.edit = i.edit[:len(i.edit)-1]
		}
	case keyboard.KeyEnter:
		line = string(i.edit)
		i.edit = i.edit[:0]
		submitted = true
		// Lines wider than the window wrap into multiple history rows.
		_ = i.win.AppendText(i.prompt+line, window.Left)
	default:
		i.mu.Unlock()
		return
	}
	i.redraw()
	i.mu.Unlock()

	if submitted {
		i.fn(line, strings.Fields(line))
	}
}

// redraw paints the history window and overlays the edit line on the row
// after the last history entry (or the bottom row once full). Call with the
// lock held.
func (i *Input) redraw() {
	i.win.Draw()

	row := len(i.win.Lines())
	if last := i.win.Height() - 1; row > last {
		row = last
	}
	if row < 0 {
		i.term.Flush()
		return
	}

	// Overflowing edit lines show their tail so the insertion point stays
	// visible.
	line := i.prompt + string(i.edit)
	for ansi.VisibleWidth(line) > i.win.Width() && line != "" {
		_, size := utf8.DecodeRuneInString(line)
		line = line[size:]
	}
	if justified, err := i.win.Justify(line, window.Left); err == nil {
		i.term.SetCursor(i.win.X(), i.win.Y()+row)
		i.term.WriteString(justified)
	}
	i.term.Flush()
}
