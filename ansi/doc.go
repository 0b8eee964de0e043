// Package ansi provides styled-text primitives for ANSI terminals.
//
// Features:
//   - Normalized style record (optional truecolor fore/background + SGR attributes)
//   - CSI escape stripping and visible-width measurement
//   - Style-aware line wrapping that carries open styles across breaks
//
// Sequences target xterm-compatible truecolor terminals; terminfo is
// bypassed entirely. Parsing is byte-level with no regular expressions.
package ansi
