package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// csiEnd returns the index just past the CSI sequence starting at i, or -1
// when the bytes at i do not begin a complete sequence. Recognized
// introducers are ESC '[' and U+009B (UTF-8 encoded); the body is parameter
// bytes 0x30-0x3F, intermediate bytes 0x20-0x2F, one final byte 0x40-0x7E.
// Incomplete sequences are left alone rather than guessed at.
func csiEnd(s string, i int) int {
	switch s[i] {
	case 0x1b:
		if i+1 >= len(s) || s[i+1] != '[' {
			return -1
		}
	case 0xc2:
		if i+1 >= len(s) || s[i+1] != 0x9b {
			return -1
		}
	default:
		return -1
	}
	i += 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
		i++
	}
	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
		i++
	}
	if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e {
		return i + 1
	}
	return -1
}

// nextCSI returns the index of the first complete CSI sequence at or after
// i, or -1.
func nextCSI(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] != 0x1b && s[i] != 0xc2 {
			continue
		}
		if csiEnd(s, i) >= 0 {
			return i
		}
	}
	return -1
}

// Strip removes every complete CSI escape sequence and returns the plain
// text. Bytes that only look like the start of a sequence pass through.
func Strip(s string) string {
	i := nextCSI(s, 0)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for i >= 0 {
		b.WriteString(s[pos:i])
		pos = csiEnd(s, i)
		i = nextCSI(s, pos)
	}
	b.WriteString(s[pos:])
	return b.String()
}

// VisibleWidth returns the display columns s occupies once escape sequences
// are removed. Wide runes count by their terminal cell width.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}
