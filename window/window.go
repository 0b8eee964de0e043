package window

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/subcell/ansi"
	"github.com/lixenwraith/subcell/terminal"
)

// Justify selects how a line pads out to the window width.
type Justify uint8

const (
	Left Justify = iota
	Right
	Center
)

// Window is a positioned, fixed-size text region. It buffers at most
// height lines, scrolling on append and prepend, and draws every row at
// its screen position, blank-filling rows without content.
//
// The line renderer and the child factory are fixed at construction;
// splitting builds children through the same path the window itself came
// from, so a styled window splits into styled children.
type Window struct {
	term          *terminal.Writer
	x, y          int
	width, height int
	lines         []string

	style  *ansi.Style // nil for plain windows
	render func(line string)
	spawn  func(x, y, w, h int) *Window
}

// New creates a plain window at (x, y) spanning width x height cells.
func New(t *terminal.Writer, x, y, width, height int) *Window {
	w := &Window{term: t, x: x, y: y, width: width, height: height}
	w.render = w.renderPlain
	w.spawn = w.spawnPlain
	return w
}

// NewStyled creates a window rendering every line under style. Children
// split from it inherit a copy of the style current at split time.
func NewStyled(t *terminal.Writer, x, y, width, height int, style ansi.Style) *Window {
	w := New(t, x, y, width, height)
	w.SetStyle(style)
	return w
}

// X returns the window's left column.
func (w *Window) X() int { return w.x }

// Y returns the window's top row.
func (w *Window) Y() int { return w.y }

// Width returns the window width in cells.
func (w *Window) Width() int { return w.width }

// Height returns the window height in cells.
func (w *Window) Height() int { return w.height }

// Lines returns a copy of the buffered lines.
func (w *Window) Lines() []string {
	out := make([]string, len(w.lines))
	copy(out, w.lines)
	return out
}

// Style returns the window style and whether one is set.
func (w *Window) Style() (ansi.Style, bool) {
	if w.style == nil {
		return ansi.Style{}, false
	}
	return *w.style, true
}

// SetStyle replaces the window's style with a copy of style. A plain
// window becomes styled; existing children keep the style they inherited.
func (w *Window) SetStyle(style ansi.Style) {
	w.style = &style
	w.render = w.renderStyled
	w.spawn = w.spawnStyled
}

// Justify pads line with spaces to the window width. Escape sequences
// take no columns; only the visible width counts toward the padding.
func (w *Window) Justify(line string, j Justify) (string, error) {
	visible := ansi.VisibleWidth(line)
	if visible > w.width {
		return "", fmt.Errorf("%w: %d columns in a %d cell window", ErrLineTooWide, visible, w.width)
	}
	pad := w.width - visible
	switch j {
	case Right:
		return strings.Repeat(" ", pad) + line, nil
	case Center:
		left := pad / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left), nil
	default:
		return line + strings.Repeat(" ", pad), nil
	}
}

// AppendLine justifies line into the buffer. A full window scrolls up,
// dropping its oldest line.
func (w *Window) AppendLine(line string, j Justify) error {
	justified, err := w.Justify(line, j)
	if err != nil {
		return err
	}
	if len(w.lines) >= w.height && len(w.lines) > 0 {
		w.lines = w.lines[1:]
	}
	w.lines = append(w.lines, justified)
	return nil
}

// PrependLine justifies line into the front of the buffer. A full window
// scrolls down, dropping its newest line.
func (w *Window) PrependLine(line string, j Justify) error {
	justified, err := w.Justify(line, j)
	if err != nil {
		return err
	}
	if len(w.lines) >= w.height && len(w.lines) > 0 {
		w.lines = w.lines[:len(w.lines)-1]
	}
	w.lines = append([]string{justified}, w.lines...)
	return nil
}

// AppendText wraps text to the window width and appends every produced
// line.
func (w *Window) AppendText(text string, j Justify) error {
	for _, line := range ansi.Wrap(text, w.width) {
		if err := w.AppendLine(line, j); err != nil {
			return err
		}
	}
	return nil
}

// SetContent replaces the buffer with the newline-split content, each line
// justified. Empty content empties the buffer. Lines past the window
// height are dropped. The buffer is left unchanged on error.
func (w *Window) SetContent(content string, j Justify) error {
	if content == "" {
		w.lines = nil
		return nil
	}
	split := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(split) > w.height {
		split = split[:w.height]
	}
	lines := make([]string, len(split))
	for i, line := range split {
		justified, err := w.Justify(line, j)
		if err != nil {
			return err
		}
		lines[i] = justified
	}
	w.lines = lines
	return nil
}

// Clear empties the buffer.
func (w *Window) Clear() {
	w.lines = nil
}

// Draw paints every window row at its screen position. Output lands in
// the terminal writer's buffer; call Flush to send it.
func (w *Window) Draw() {
	for row := 0; row < w.height; row++ {
		w.term.SetCursor(w.x, w.y+row)
		if row < len(w.lines) {
			w.render(w.lines[row])
		} else {
			w.render(strings.Repeat(" ", w.width))
		}
	}
}

// HSplit partitions the window height into stacked child windows, top to
// bottom in span order.
func (w *Window) HSplit(spans ...Span) ([]*Window, error) {
	sizes, err := splitRange(w.height, spans)
	if err != nil {
		return nil, err
	}
	children := make([]*Window, len(sizes))
	offset := w.y
	for i, size := range sizes {
		children[i] = w.spawn(w.x, offset, w.width, size)
		offset += size
	}
	return children, nil
}

// VSplit partitions the window width into side-by-side child windows,
// left to right in span order.
func (w *Window) VSplit(spans ...Span) ([]*Window, error) {
	sizes, err := splitRange(w.width, spans)
	if err != nil {
		return nil, err
	}
	children := make([]*Window, len(sizes))
	offset := w.x
	for i, size := range sizes {
		children[i] = w.spawn(offset, w.y, size, w.height)
		offset += size
	}
	return children, nil
}

func (w *Window) renderPlain(line string) {
	w.term.WriteString(line)
}

// renderStyled brackets the line with the window style, re-injecting the
// prefix after every embedded reset so content resets cannot cancel it.
func (w *Window) renderStyled(line string) {
	prefix := w.style.Sequence()
	if prefix == "" {
		w.term.WriteString(line)
		return
	}
	w.term.WriteString(prefix)
	w.term.WriteString(strings.ReplaceAll(line, ansi.Reset, ansi.Reset+prefix))
	w.term.WriteString(ansi.Reset)
}

func (w *Window) spawnPlain(x, y, width, height int) *Window {
	return New(w.term, x, y, width, height)
}

func (w *Window) spawnStyled(x, y, width, height int) *Window {
	return NewStyled(w.term, x, y, width, height, *w.style)
}
