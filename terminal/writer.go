package terminal

import (
	"bufio"
	"io"
	"os"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
)

// Writer buffers terminal output and emits the toolkit's escape sequences.
// Windows and canvases draw through it; nothing reaches the terminal until
// Flush, and any write error surfaces there.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w in a buffered terminal writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 8192)}
}

// Stdout returns a buffered writer over os.Stdout.
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

// WriteString appends raw text to the output buffer.
func (t *Writer) WriteString(s string) {
	t.w.WriteString(s)
}

// SetCursor moves the cursor to column x, row y (0-based).
func (t *Writer) SetCursor(x, y int) {
	writeCursorPos(t.w, x, y)
}

// Clear erases the screen and homes the cursor.
func (t *Writer) Clear() {
	t.w.Write(csiClear)
}

// HideCursor makes the cursor invisible.
func (t *Writer) HideCursor() {
	t.w.Write(csiCursorHide)
}

// ShowCursor makes the cursor visible.
func (t *Writer) ShowCursor() {
	t.w.Write(csiCursorShow)
}

// ResetColors returns the terminal to the default rendition.
func (t *Writer) ResetColors() {
	t.w.Write(csiReset)
}

// EnterAlt switches to the alternate screen buffer.
func (t *Writer) EnterAlt() {
	t.w.Write(csiAltScreenEnter)
}

// ExitAlt returns to the main screen buffer.
func (t *Writer) ExitAlt() {
	t.w.Write(csiAltScreenExit)
}

// Reset restores default rendition, auto-wrap and cursor visibility.
func (t *Writer) Reset() {
	t.w.Write(csiReset)
	t.w.Write(csiAutoWrapOn)
	t.w.Write(csiCursorShow)
}

// Flush sends the buffered output and reports any write error.
func (t *Writer) Flush() error {
	return t.w.Flush()
}

// writeInt writes a non-negative integer without allocation.
// Terminal coordinates rarely exceed two digits.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte('0' + n))
		return
	}
	if n < 100 {
		w.WriteByte(byte('0' + n/10))
		w.WriteByte(byte('0' + n%10))
		return
	}
	var buf [6]byte
	i := len(buf)
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes the 1-based cursor address for 0-based x, y.
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
