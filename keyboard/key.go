package keyboard

// Key identifies a decoded input key.
type Key uint8

const (
	KeyUnknown Key = iota // unrecognized escape tail
	KeyRune               // literal character (check Event.Rune)

	// Control keys
	KeyEnter
	KeyTab
	KeyBackspace

	// Cursor keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String names the key for logs and demos.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	}
	return "unknown"
}

// Event is one decoded key press.
type Event struct {
	Key  Key
	Rune rune // set for KeyRune events
}

// Listener receives decoded events, synchronously from the reading task.
type Listener func(Event)

// decodeEscape maps the final byte of a two-byte escape tail to a key.
// Only the cursor keys are recognized; everything else is unknown.
func decodeEscape(b byte) Event {
	switch b {
	case 'A':
		return Event{Key: KeyUp}
	case 'B':
		return Event{Key: KeyDown}
	case 'C':
		return Event{Key: KeyRight}
	case 'D':
		return Event{Key: KeyLeft}
	}
	return Event{Key: KeyUnknown}
}
