// SPDX-License-Identifier: MIT

// Package session keeps the bookkeeping a calculator front end needs around the
// stateless matrix engine: a bounded history of successful calculations, timing
// statistics over a sliding window, the most recent result, and the dimension
// limits offered to users when they build grids.
//
// The engine itself never sees any of this state. A Session wraps matrix.Compute,
// copies inputs and results into immutable history entries, and is safe for
// concurrent use.
//
// Defaults:
//   - history capacity: 10 entries, newest first;
//   - timing window: the last 20 successful calculations;
//   - dimension limits: 1..8 rows and columns.
package session
