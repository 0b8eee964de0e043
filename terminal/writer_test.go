package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterSequences(t *testing.T) {
	tests := []struct {
		name string
		emit func(*Writer)
		want string
	}{
		{"clear", func(w *Writer) { w.Clear() }, "\x1b[2J\x1b[H"},
		{"cursor home", func(w *Writer) { w.SetCursor(0, 0) }, "\x1b[1;1H"},
		{"cursor is one based", func(w *Writer) { w.SetCursor(3, 5) }, "\x1b[6;4H"},
		{"cursor three digits", func(w *Writer) { w.SetCursor(119, 49) }, "\x1b[50;120H"},
		{"hide cursor", func(w *Writer) { w.HideCursor() }, "\x1b[?25l"},
		{"show cursor", func(w *Writer) { w.ShowCursor() }, "\x1b[?25h"},
		{"reset colors", func(w *Writer) { w.ResetColors() }, "\x1b[0m"},
		{"alt screen round trip", func(w *Writer) { w.EnterAlt(); w.ExitAlt() }, "\x1b[?1049h\x1b[?1049l"},
		{"reset", func(w *Writer) { w.Reset() }, "\x1b[0m\x1b[?7h\x1b[?25h"},
		{"raw text", func(w *Writer) { w.WriteString("hi") }, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			tt.emit(w)
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush returned error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("emitted %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString("pending")
	if buf.Len() != 0 {
		t.Errorf("output reached the sink before Flush: %q", buf.String())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if got := buf.String(); got != "pending" {
		t.Errorf("flushed %q, want %q", got, "pending")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m", "\x1b[?7h", "\x1bc"} {
		if !strings.Contains(out, seq) {
			t.Errorf("EmergencyReset output %q missing %q", out, seq)
		}
	}
}
