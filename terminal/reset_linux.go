//go:build linux

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// restoreCookedMode re-enables echo and canonical input via /dev/tty, which
// works even when stdin is redirected. Best effort; errors are ignored in
// crash context.
func restoreCookedMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
