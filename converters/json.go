// SPDX-License-Identifier: MIT

package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// DefaultExportName is the file name used when a result is exported without an
// explicit destination.
const DefaultExportName = "matrix_result.json"

// jsonIndent matches the two-space layout of the exported files.
const jsonIndent = "  "

// cell is a float64 that encodes NaN and ±Inf as JSON null and decodes null as NaN.
// JSON has no literal for non-finite numbers.
type cell float64

// MarshalJSON implements json.Marshaler.
func (c cell) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *cell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = cell(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("%w %s", ErrBadToken, b)
	}
	*c = cell(f)

	return nil
}

// MarshalJSON encodes g as an indented array of row arrays. Non-finite cells
// become null.
func MarshalJSON(g matrix.Grid) ([]byte, error) {
	rows := make([][]cell, len(g))
	for i, row := range g {
		rows[i] = make([]cell, len(row))
		for j, v := range row {
			rows[i][j] = cell(v)
		}
	}

	return json.MarshalIndent(rows, "", jsonIndent)
}

// WriteJSON writes MarshalJSON(g) to w.
func WriteJSON(w io.Writer, g matrix.Grid) error {
	b, err := MarshalJSON(g)
	if err != nil {
		return fmt.Errorf("converters: WriteJSON: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("converters: WriteJSON: %w", err)
	}

	return nil
}

// UnmarshalJSON decodes an array of row arrays. null cells decode to NaN.
// The result must be a valid grid (matrix.ErrMalformedGrid otherwise).
func UnmarshalJSON(data []byte) (matrix.Grid, error) {
	var rows [][]cell
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("converters: UnmarshalJSON: %w", err)
	}

	g := make(matrix.Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]float64, len(row))
		for j, c := range row {
			g[i][j] = float64(c)
		}
	}
	if err := matrix.ValidateGrid(g); err != nil {
		return nil, fmt.Errorf("converters: UnmarshalJSON: %w", err)
	}

	return g, nil
}
