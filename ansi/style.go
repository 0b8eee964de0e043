package ansi

import (
	"strconv"
	"strings"
)

// Reset is the SGR terminator that returns the terminal to default rendition.
const Reset = "\x1b[0m"

// Pre-built sequence fragments
const (
	sgrFgRGB = "\x1b[38;2;" // followed by R;G;Bm
	sgrBgRGB = "\x1b[48;2;" // followed by R;G;Bm

	sgrBold       = "\x1b[1m"
	sgrFaint      = "\x1b[2m"
	sgrItalic     = "\x1b[3m"
	sgrUnderline  = "\x1b[4m"
	sgrBlink      = "\x1b[5m"
	sgrNegative   = "\x1b[7m"
	sgrCrossedOut = "\x1b[9m"
)

// Style is a normalized text style: optional truecolor fore/background plus
// boolean SGR attributes. The zero Style selects nothing and renders text
// unchanged.
type Style struct {
	Fg, Bg Color

	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	Blink      bool
	Negative   bool
	CrossedOut bool
}

// IsZero reports whether the style selects nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Sequence returns the SGR prefix selecting the style: foreground, then
// background, then attributes in fixed code order (1,2,3,4,5,7,9). The zero
// Style returns "".
func (s Style) Sequence() string {
	if s.IsZero() {
		return ""
	}
	var b strings.Builder
	if s.Fg.set {
		writeColorSeq(&b, sgrFgRGB, s.Fg.rgb)
	}
	if s.Bg.set {
		writeColorSeq(&b, sgrBgRGB, s.Bg.rgb)
	}
	if s.Bold {
		b.WriteString(sgrBold)
	}
	if s.Faint {
		b.WriteString(sgrFaint)
	}
	if s.Italic {
		b.WriteString(sgrItalic)
	}
	if s.Underline {
		b.WriteString(sgrUnderline)
	}
	if s.Blink {
		b.WriteString(sgrBlink)
	}
	if s.Negative {
		b.WriteString(sgrNegative)
	}
	if s.CrossedOut {
		b.WriteString(sgrCrossedOut)
	}
	return b.String()
}

// Apply wraps text in the style's SGR prefix and a reset terminator.
// The zero Style returns text unchanged, with no terminator.
func (s Style) Apply(text string) string {
	seq := s.Sequence()
	if seq == "" {
		return text
	}
	return seq + text + Reset
}

// writeColorSeq emits prefix + "R;G;Bm".
func writeColorSeq(b *strings.Builder, prefix string, c RGB) {
	b.WriteString(prefix)
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
}
