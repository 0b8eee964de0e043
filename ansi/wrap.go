package ansi

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines of at most width visible columns, carrying open
// styles across line breaks.
//
// Escape sequences contribute no width and accumulate as the tracked style
// until a reset clears them. Closing a line appends a reset terminator
// (unless one is already trailing) and the next line reopens with the
// tracked style, so every produced line renders identically on its own.
// A newline immediately following a width-forced break is consumed to avoid
// a spurious blank line. The trailing partial line, if any, is flushed
// unterminated.
func Wrap(s string, width int) []string {
	var lines []string
	line := ""  // output line under construction
	style := "" // escape sequences active since the last reset
	length := 0 // visible columns on line

	closeLine := func() {
		if !strings.HasSuffix(line, Reset) {
			line += Reset
		}
		lines = append(lines, line)
		line = style
		length = 0
	}

	i := 0
	for i < len(s) {
		if end := csiEnd(s, i); end >= 0 {
			seq := s[i:end]
			line += seq
			if seq == Reset {
				style = ""
			} else {
				style += seq
			}
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '\n' {
			closeLine()
			i += size
			continue
		}
		rw := runewidth.RuneWidth(r)
		if length+rw > width && length > 0 {
			// rune too wide for the remaining room, break early
			closeLine()
		}
		line += s[i : i+size]
		length += rw
		i += size
		if length >= width {
			closeLine()
			if i < len(s) && s[i] == '\n' {
				i++
			}
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
