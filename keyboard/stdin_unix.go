//go:build unix

package keyboard

import (
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/lixenwraith/subcell/terminal"
)

// pollSource reads a file descriptor through poll with a timeout, so the
// read loop can observe the stop channel even when no input arrives.
type pollSource struct {
	fd int
}

func (s *pollSource) read(stop <-chan struct{}) ([]byte, error) {
	buf := make([]byte, 256)

	for {
		select {
		case <-stop:
			return nil, nil
		default:
		}

		fds := []unix.PollFd{
			{Fd: int32(s.fd), Events: unix.POLLIN},
		}

		// 100ms timeout
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}
		if n == 0 {
			continue // Timeout
		}

		rn, err := unix.Read(s.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if rn == 0 {
			return nil, io.EOF
		}

		ret := make([]byte, rn)
		copy(ret, buf[:rn])
		return ret, nil
	}
}

var (
	stdinOnce   sync.Once
	stdinReader *Reader
)

// Stdin returns the process-wide reader for standard input. Every call
// yields the same instance, so there is at most one raw-mode transition and
// one background reading task no matter how many components listen. The
// state handle, captured once at startup, is what Close and crash paths use
// to restore the terminal.
func Stdin(state *terminal.State) *Reader {
	stdinOnce.Do(func() {
		stdinReader = newReader(&pollSource{fd: int(os.Stdin.Fd())})
		stdinReader.makeRaw = state.MakeRaw
		stdinReader.restore = state.Restore
	})
	return stdinReader
}
