// SPDX-License-Identifier: MIT

// Package converters moves matrix.Grid values in and out of the formats a
// calculator front end exchanges with users:
//   - a compact text form ("1 2; 3 4" in, "[1.00, 2.00]" lines out),
//   - indented JSON arrays (the "matrix_result.json" export),
//   - YAML sequences.
//
// Every decoder validates that the result is a non-empty rectangular grid and
// reports matrix.ErrMalformedGrid otherwise, so decoded values can be passed to
// matrix.Compute without further checks.
package converters
