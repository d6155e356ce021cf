// SPDX-License-Identifier: MIT

// Package matrix: the closed operation catalogue.
//
// The ten identifiers keep their historical wire names: an "m_" prefix for
// element mode and an "s_" prefix for scalar mode, followed by the kind
// ("add", "sub", "mult", "div", "exp"). Lookup is a fixed table; there is no
// registration hook, so the set cannot grow at runtime.
package matrix

import (
	"fmt"
	"strings"
)

// Wire-name prefixes per mode.
const (
	prefixElement = "m_"
	prefixScalar  = "s_"
)

// kindInfo is one row of the catalogue.
type kindInfo struct {
	name   string // wire suffix
	symbol string // operator glyph
	title  string // display noun
}

// kinds is indexed by Kind; index 0 is the invalid zero value.
var kinds = [...]kindInfo{
	KindAdd:  {name: "add", symbol: "+", title: "Addition"},
	KindSub:  {name: "sub", symbol: "−", title: "Subtraction"},
	KindMult: {name: "mult", symbol: "×", title: "Multiplication"},
	KindDiv:  {name: "div", symbol: "÷", title: "Division"},
	KindExp:  {name: "exp", symbol: "^", title: "Exponentiation"},
}

// Valid reports whether k is one of the five kinds.
func (k Kind) Valid() bool { return k >= KindAdd && k <= KindExp }

// String returns the wire suffix ("add", "sub", ...).
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kinds[k].name
}

// Symbol returns the operator glyph used when printing an expression.
func (k Kind) Symbol() string {
	if !k.Valid() {
		return "?"
	}

	return kinds[k].symbol
}

// Valid reports whether m is ModeElement or ModeScalar.
func (m Mode) Valid() bool { return m == ModeElement || m == ModeScalar }

// String returns "element" or "scalar".
func (m Mode) String() string {
	switch m {
	case ModeElement:
		return "element"
	case ModeScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether op is one of the ten catalogue entries.
func (op OpID) Valid() bool { return op.Kind.Valid() && op.Mode.Valid() }

// String returns the wire name ("m_add", "s_div", ...). Invalid identifiers render
// as "OpID(kind,mode)" so they stay readable in error messages.
func (op OpID) String() string {
	if !op.Valid() {
		return fmt.Sprintf("OpID(%d,%d)", uint8(op.Kind), uint8(op.Mode))
	}
	if op.Mode == ModeScalar {
		return prefixScalar + op.Kind.String()
	}

	return prefixElement + op.Kind.String()
}

// DisplayName returns the human-readable name, e.g. "Matrix Addition" or
// "Scalar Division". Invalid identifiers return their String form.
func (op OpID) DisplayName() string {
	if !op.Valid() {
		return op.String()
	}
	if op.Mode == ModeScalar {
		return "Scalar " + kinds[op.Kind].title
	}

	return "Matrix " + kinds[op.Kind].title
}

// AllOps returns the ten valid identifiers: every kind in element mode, then every
// kind in scalar mode. The slice is freshly allocated on each call.
func AllOps() []OpID {
	out := make([]OpID, 0, 2*int(KindExp))
	for _, m := range []Mode{ModeElement, ModeScalar} {
		for k := KindAdd; k <= KindExp; k++ {
			out = append(out, OpID{Kind: k, Mode: m})
		}
	}

	return out
}

// ParseOpID resolves a wire name ("m_add", "S_EXP", " s_div ") into an OpID.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unknown names fail with ErrUnknownOperation.
// Complexity: O(1) (fixed ten-entry scan).
func ParseOpID(name string) (OpID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	var mode Mode
	switch {
	case strings.HasPrefix(s, prefixElement):
		mode = ModeElement
	case strings.HasPrefix(s, prefixScalar):
		mode = ModeScalar
	default:
		return OpID{}, fmt.Errorf("ParseOpID(%q): %w", name, ErrUnknownOperation)
	}
	suffix := s[len(prefixElement):] // both prefixes have the same length
	for k := KindAdd; k <= KindExp; k++ {
		if kinds[k].name == suffix {
			return OpID{Kind: k, Mode: mode}, nil
		}
	}

	return OpID{}, fmt.Errorf("ParseOpID(%q): %w", name, ErrUnknownOperation)
}

// MustParseOpID is like ParseOpID but panics on an unknown name.
// Intended for package-level variables and tests with literal names.
func MustParseOpID(name string) OpID {
	op, err := ParseOpID(name)
	if err != nil {
		panic(err)
	}

	return op
}
