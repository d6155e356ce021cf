// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// DefaultDecimals is the number of fractional digits FormatText prints when the
// caller has no preference.
const DefaultDecimals = 2

// ErrBadToken is returned by ParseText when a cell is not a number.
var ErrBadToken = errors.New("converters: bad number")

// TokenError locates a cell ParseText could not read. Row and Col are zero-based.
// It unwraps to ErrBadToken.
type TokenError struct {
	Row, Col int
	Token    string
}

// Error implements error.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%v %q at row %d, column %d", ErrBadToken, e.Token, e.Row, e.Col)
}

// Unwrap exposes the sentinel.
func (e *TokenError) Unwrap() error { return ErrBadToken }

// brackets turns "[" into a blank and "]" into a row break, so both
// "[1, 2]\n[3, 4]" and "[[1,2],[3,4]]" read as two rows.
var brackets = strings.NewReplacer("[", " ", "]", ";")

// ParseText reads a grid written as rows of numbers.
//
// Rows are separated by ';' or newlines, cells by commas and/or whitespace, and
// square brackets are optional. Blank rows are skipped. Every token goes through
// strconv.ParseFloat, so "NaN", "Inf", "+Inf" and "-Inf" are accepted.
//
// Errors:
//   - *TokenError (ErrBadToken) for a cell that is not a number;
//   - matrix.ErrMalformedGrid when no rows remain or rows differ in length.
func ParseText(s string) (matrix.Grid, error) {
	lines := strings.FieldsFunc(brackets.Replace(s), func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})

	var g matrix.Grid
	for _, line := range lines {
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(tokens) == 0 {
			continue
		}
		row := make([]float64, len(tokens))
		for j, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &TokenError{Row: len(g), Col: j, Token: tok}
			}
			row[j] = v
		}
		g = append(g, row)
	}

	if err := matrix.ValidateGrid(g); err != nil {
		return nil, fmt.Errorf("converters: ParseText: %w", err)
	}

	return g, nil
}

// FormatText renders g one row per line as "[a, b, c]" with the given number
// of decimals. A negative decimals value prints the shortest exact form.
// Non-finite cells print as NaN, +Inf and -Inf, which ParseText reads back.
func FormatText(g matrix.Grid, decimals int) string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', decimals, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
