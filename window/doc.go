// Package window manages positioned, fixed-size text regions drawn through
// a shared terminal writer.
//
// A Window buffers justified lines, scrolls on append or prepend, and
// splits recursively into child windows sized by absolute, proportional,
// or remainder spans. Styled windows tag every drawn line with their style
// and re-inject it after embedded resets, so content styling can neither
// leak past a line nor cancel the window's own style. Children split from
// a styled window inherit a copy of its style.
package window
