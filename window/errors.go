package window

import "errors"

// Error kinds surfaced by window operations. Returned errors wrap these
// with detail; match them with errors.Is.
var (
	// ErrLineTooWide reports a line whose visible width exceeds the window.
	ErrLineTooWide = errors.New("line too wide")

	// ErrSplitInfeasible reports a split whose spans cannot fit the window.
	ErrSplitInfeasible = errors.New("split infeasible")

	// ErrInvalidSpan reports a split argument that is none of absolute
	// size, proportion, or remainder.
	ErrInvalidSpan = errors.New("invalid split span")
)
