package terminal

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// State is a process-scoped terminal state handle. Capture it once at
// startup and pass it to every component that may need to restore the
// terminal; Restore is idempotent and safe from any goroutine, so it can
// run on signal and panic paths as well as normal shutdown.
type State struct {
	fd int

	mu    sync.Mutex
	saved *term.State
	raw   bool
}

// Capture snapshots the current attributes of fd, which must be a terminal.
func Capture(fd int) (*State, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	saved, err := term.GetState(fd)
	if err != nil {
		return nil, err
	}
	return &State{fd: fd, saved: saved}, nil
}

// Fd returns the captured file descriptor.
func (s *State) Fd() int {
	return s.fd
}

// MakeRaw switches the terminal into raw mode. Calling it while already
// raw is a no-op; the attributes captured at startup are kept for Restore.
func (s *State) MakeRaw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw {
		return nil
	}
	if _, err := term.MakeRaw(s.fd); err != nil {
		return err
	}
	s.raw = true
	return nil
}

// IsRaw reports whether MakeRaw has been applied without a later Restore.
func (s *State) IsRaw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Restore reinstates the attributes captured at startup, regardless of who
// changed them since.
func (s *State) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = false
	return term.Restore(s.fd, s.saved)
}
