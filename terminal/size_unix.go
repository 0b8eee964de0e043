//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// Size returns the dimensions of the terminal behind fd in cells, falling
// back to 80x24 when the query fails.
func Size(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
