package window

import "fmt"

// spanKind discriminates split arguments. The zero kind is invalid so an
// uninitialized Span cannot silently claim space.
type spanKind uint8

const (
	spanInvalid spanKind = iota
	spanCells
	spanFrac
	spanRest
)

// Span is one argument to HSplit or VSplit: an absolute cell count, a
// proportion of the split total, or the remainder marker.
type Span struct {
	kind  spanKind
	cells int
	frac  float64
}

// Cells is an absolute span of n cells.
func Cells(n int) Span {
	return Span{kind: spanCells, cells: n}
}

// Frac is a proportional span, resolved as floor(total * f) before any
// remainder space is assigned.
func Frac(f float64) Span {
	return Span{kind: spanFrac, frac: f}
}

// Rest marks a span that shares whatever space the sized spans leave over.
func Rest() Span {
	return Span{kind: spanRest}
}

// splitRange resolves spans against total cells. Proportions resolve
// first and then count as absolute. Remainder markers share the leftover
// space, the last marker taking the ceiling share and the others the
// floor. A shortfall with no marker present gains an implicit trailing
// remainder span; every marker must receive at least one cell.
func splitRange(total int, spans []Span) ([]int, error) {
	sizes := make([]int, 0, len(spans)+1)
	available := total
	blanks := 0
	lastBlank := -1

	for i, s := range spans {
		switch s.kind {
		case spanCells:
			if s.cells < 0 {
				return nil, fmt.Errorf("%w: negative size %d", ErrInvalidSpan, s.cells)
			}
			sizes = append(sizes, s.cells)
			available -= s.cells
		case spanFrac:
			if s.frac < 0 {
				return nil, fmt.Errorf("%w: negative proportion %v", ErrInvalidSpan, s.frac)
			}
			n := int(float64(total) * s.frac)
			sizes = append(sizes, n)
			available -= n
		case spanRest:
			sizes = append(sizes, -1)
			blanks++
			lastBlank = i
		default:
			return nil, fmt.Errorf("%w: span %d is uninitialized", ErrInvalidSpan, i)
		}
	}

	if available < 0 {
		return nil, fmt.Errorf("%w: spans claim %d of %d cells", ErrSplitInfeasible, total-available, total)
	}
	if blanks == 0 && available > 0 {
		sizes = append(sizes, -1)
		blanks = 1
		lastBlank = len(sizes) - 1
	}
	if blanks > 0 {
		if available < blanks {
			return nil, fmt.Errorf("%w: %d remainder spans, %d cells left", ErrSplitInfeasible, blanks, available)
		}
		share := available / blanks
		ceil := (available + blanks - 1) / blanks
		for i, v := range sizes {
			if v != -1 {
				continue
			}
			if i == lastBlank {
				sizes[i] = ceil
			} else {
				sizes[i] = share
			}
		}
	}
	return sizes, nil
}
