//go:build !linux

package terminal

// restoreCookedMode is a no-op where the Linux termios path is unavailable;
// the escape sequences written by EmergencyReset still apply.
func restoreCookedMode() {}
