// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
)

// ErrDimensionsOutOfRange is returned by Limits.Validate when a requested row or
// column count lies outside the configured bounds.
var ErrDimensionsOutOfRange = errors.New("session: dimensions out of range")

// sessionErrorf wraps err with the failing entry point, keeping errors.Is intact.
func sessionErrorf(tag string, err error) error {
	return fmt.Errorf("session: %s: %w", tag, err)
}
