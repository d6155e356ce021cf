// SPDX-License-Identifier: MIT

package converters

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// yamlNumber renders v as a plain YAML scalar. YAML has literals for the
// non-finite values, so nothing is lost.
func yamlNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// gridNode builds a block sequence of flow rows: "- [1, 2]".
func gridNode(g matrix.Grid) *yaml.Node {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range g {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			r.Content = append(r.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: yamlNumber(v)})
		}
		root.Content = append(root.Content, r)
	}

	return root
}

// MarshalYAML encodes g as a YAML sequence with one flow-style row per line.
func MarshalYAML(g matrix.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteYAML writes MarshalYAML(g) to w.
func WriteYAML(w io.Writer, g matrix.Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(gridNode(g)); err != nil {
		return fmt.Errorf("converters: WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("converters: WriteYAML: %w", err)
	}

	return nil
}

// UnmarshalYAML decodes a sequence of numeric sequences (.nan and .inf allowed).
// The result must be a valid grid (matrix.ErrMalformedGrid otherwise).
func UnmarshalYAML(data []byte) (matrix.Grid, error) {
	var rows [][]float64
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("converters: UnmarshalYAML: %w", err)
	}
	g := matrix.Grid(rows)
	if err := matrix.ValidateGrid(g); err != nil {
		return nil, fmt.Errorf("converters: UnmarshalYAML: %w", err)
	}

	return g, nil
}
