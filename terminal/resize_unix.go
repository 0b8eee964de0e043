//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// ResizeWatcher converts SIGWINCH into size events. The event channel holds
// one pending event; an unconsumed stale size is replaced, never queued.
type ResizeWatcher struct {
	fd      int
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchResize starts watching the terminal behind fd for size changes.
func WatchResize(fd int) *ResizeWatcher {
	w := &ResizeWatcher{
		fd:      fd,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.watchLoop()
	return w
}

// Events returns the resize event channel.
func (w *ResizeWatcher) Events() <-chan ResizeEvent {
	return w.eventCh
}

// Stop releases the signal registration and waits for the watcher to exit.
func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

func (w *ResizeWatcher) watchLoop() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			width, height := Size(w.fd)
			if width <= 0 || height <= 0 {
				continue
			}
			select {
			case w.eventCh <- ResizeEvent{Width: width, Height: height}:
			default:
				// Replace the unconsumed event
				select {
				case <-w.eventCh:
				default:
				}
				w.eventCh <- ResizeEvent{Width: width, Height: height}
			}
		}
	}
}
