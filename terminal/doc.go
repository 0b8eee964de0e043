// Package terminal provides the output and state collaborators the
// rendering types draw through.
//
// Features:
//   - Buffered escape emission: cursor addressing, clear, SGR reset, alt screen
//   - Process-scoped raw-state handle for restoration on every exit path
//   - Size query and SIGWINCH resize watching
//   - Last-resort EmergencyReset for panic recovery
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
