// SPDX-License-Identifier: MIT

package session

import "fmt"

// Default dimension bounds offered to users building grids by hand.
const (
	DefaultMinDim = 1
	DefaultMaxDim = 8
)

// Limits bounds the rows and columns a front end lets users request.
// The engine itself accepts any positive shape; Limits is a presentation policy.
type Limits struct {
	MinDim int
	MaxDim int
}

// DefaultLimits returns 1..8.
func DefaultLimits() Limits {
	return Limits{MinDim: DefaultMinDim, MaxDim: DefaultMaxDim}
}

// Validate reports ErrDimensionsOutOfRange unless both r and c lie in
// [MinDim, MaxDim].
func (l Limits) Validate(r, c int) error {
	if r < l.MinDim || r > l.MaxDim || c < l.MinDim || c > l.MaxDim {
		return fmt.Errorf("%w: %d×%d, each dimension must be between %d and %d",
			ErrDimensionsOutOfRange, r, c, l.MinDim, l.MaxDim)
	}

	return nil
}

// Check verifies that the bounds themselves are usable (1 <= MinDim <= MaxDim).
func (l Limits) Check() error {
	if l.MinDim < 1 || l.MinDim > l.MaxDim {
		return fmt.Errorf("session: invalid limits %d..%d", l.MinDim, l.MaxDim)
	}

	return nil
}
