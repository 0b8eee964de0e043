package keyboard

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/subcell/terminal"
)

// source is a stoppable byte supplier. read blocks until input arrives,
// the stop channel closes, or the stream ends; a nil slice with nil error
// means nothing arrived and the caller should check stop and retry.
type source interface {
	read(stop <-chan struct{}) ([]byte, error)
}

// streamSource adapts a plain io.Reader. The read itself cannot be
// interrupted; Close falls back to its timeout when the stream never
// delivers another byte.
type streamSource struct {
	r io.Reader
}

func (s *streamSource) read(stop <-chan struct{}) ([]byte, error) {
	select {
	case <-stop:
		return nil, nil
	default:
	}
	buf := make([]byte, 256)
	n, err := s.r.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// Reader decodes a raw byte stream into key events and dispatches them to
// registered listeners, in registration order, from a single background
// goroutine.
type Reader struct {
	src     source
	makeRaw func() error
	restore func() error

	mu        sync.Mutex
	listeners []Listener
	started   bool
	stopped   bool

	stopCh chan struct{}
	doneCh chan struct{}

	// Persistent buffer so partial escape and UTF-8 sequences survive
	// read boundaries.
	buf []byte
}

func newReader(src source) *Reader {
	return &Reader{
		src:    src,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		buf:    make([]byte, 0, 256),
	}
}

// NewReader wraps any byte source. When r is a terminal file the reader
// captures its state and enters raw mode on the first Listen; Close
// restores it.
func NewReader(r io.Reader) *Reader {
	kr := newReader(&streamSource{r: r})
	if f, ok := r.(*os.File); ok {
		if state, err := terminal.Capture(int(f.Fd())); err == nil {
			kr.makeRaw = state.MakeRaw
			kr.restore = state.Restore
		}
	}
	return kr
}

// Listen registers fn and, on the first call, switches the source into raw
// mode and starts the background goroutine. A nil fn registers nothing but
// still starts the reader.
func (r *Reader) Listen(fn Listener) error {
	r.mu.Lock()
	if fn != nil {
		r.listeners = append(r.listeners, fn)
	}
	if r.started || r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.started = true
	r.mu.Unlock()

	if r.makeRaw != nil {
		if err := r.makeRaw(); err != nil {
			r.mu.Lock()
			r.started = false
			r.mu.Unlock()
			return err
		}
	}
	go r.readLoop()
	return nil
}

// Close stops the background goroutine and restores any terminal state the
// reader manages. A goroutine stuck in an uninterruptible read is abandoned
// after a short wait rather than blocking shutdown.
func (r *Reader) Close() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	started := r.started
	r.mu.Unlock()

	if started {
		close(r.stopCh)
		select {
		case <-r.doneCh:
		case <-time.After(200 * time.Millisecond):
		}
	}
	if r.restore != nil {
		return r.restore()
	}
	return nil
}

// readLoop is the single producer: it reads, decodes and dispatches until
// the source ends or Close signals stop.
func (r *Reader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mKEYBOARD READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := r.src.read(r.stopCh)
		if err != nil {
			return
		}
		if len(data) == 0 {
			select {
			case <-r.stopCh:
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parse(r.buf)
		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parse decodes as many buffered bytes as possible, dispatching one event
// per key, and returns the count consumed. It stops short on a partial
// escape or multibyte sequence so the remainder can complete on the next
// read.
func (r *Reader) parse(data []byte) int {
	i := 0
	n := len(data)
	for i < n {
		b := data[i]

		if b == 0x1b {
			// Escape tails are two bytes; only the second is decoded,
			// the byte in between is not validated.
			if i+2 >= n {
				return i
			}
			r.dispatch(decodeEscape(data[i+2]))
			i += 3
			continue
		}

		switch b {
		case 0x7f:
			r.dispatch(Event{Key: KeyBackspace})
			i++
		case 0x0a, 0x0d: // raw mode delivers enter as CR
			r.dispatch(Event{Key: KeyEnter})
			i++
		case 0x09:
			r.dispatch(Event{Key: KeyTab})
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			r.dispatch(Event{Key: KeyRune, Rune: rn})
			i += size
		}
	}
	return i
}

// dispatch invokes every listener registered at snapshot time. The list is
// append-only, so a header copy under the lock gives a stable prefix to
// iterate without holding the lock through callbacks.
func (r *Reader) dispatch(ev Event) {
	r.mu.Lock()
	listeners := r.listeners
	r.mu.Unlock()
	for _, fn := range listeners {
		fn(ev)
	}
}
