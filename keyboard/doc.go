// Package keyboard decodes raw terminal input into key events.
//
// A Reader owns one background goroutine that reads bytes, decodes a small
// escape vocabulary (the cursor keys) plus the literal control bytes for
// enter, tab and backspace, and hands everything else through as character
// events. Listeners register with Listen and are invoked synchronously, in
// registration order, from the reading goroutine.
//
// Stdin returns the shared process-wide reader; NewReader wraps any other
// byte source such as a pty or a recorded stream.
package keyboard
