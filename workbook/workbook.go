// SPDX-License-Identifier: MIT

// Package workbook runs batches of calculations described in HCL files.
//
// A workbook is a list of named calculation blocks:
//
//	calculation "double" {
//	  op      = "s_mult"
//	  grid    = [[1, 2], [3, 4]]
//	  operand = 2
//	}
//
//	calculation "sum" {
//	  op      = "m_add"
//	  grid    = calculation.double.result
//	  operand = [[5, 6], [7, 8]]
//	}
//
// The op attribute is resolved when the file is decoded. grid and operand are
// kept as expressions and evaluated only when the calculation runs, so they may
// refer to the result of any calculation that ran earlier in the same workbook
// (calculation.<name>.result) and may call a small set of numeric functions
// (abs, ceil, floor, log, max, min, pow, signum).
package workbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixnexus/logging"
	"github.com/katalvlaran/matrixnexus/matrix"
)

// FileExtension is the suffix Decode looks for when given a directory.
const FileExtension = ".hcl"

var (
	// ErrDuplicateName is reported when two calculations share a label.
	ErrDuplicateName = errors.New("workbook: duplicate calculation name")

	// ErrOperandType is returned when grid or operand evaluates to a value that is
	// neither a number nor a list of number lists.
	ErrOperandType = errors.New("workbook: unsupported operand type")

	// ErrUnresolved is returned when an expression depends on a value that is not
	// available, such as an earlier result containing NaN.
	ErrUnresolved = errors.New("workbook: unresolved value")

	// ErrNoCalculations is returned when the decoded input holds no calculation blocks.
	ErrNoCalculations = errors.New("workbook: no calculations")
)

// Workbook is an ordered set of calculations.
type Workbook struct {
	Calculations []Calculation
}

// Calculation is one decoded calculation block.
type Calculation struct {
	Name        string
	Description string
	Op          matrix.OpID
	Grid        hcl.Expression // evaluated at run time
	Operand     hcl.Expression // evaluated at run time
	DeclRange   hcl.Range      // range of the op attribute, for messages
}

// DecodeError carries the HCL diagnostics of a failed decode. It unwraps to the
// package sentinels (ErrDuplicateName) and matrix.ErrUnknownOperation when those
// conditions were among the diagnostics.
type DecodeError struct {
	Path   string
	Diags  hcl.Diagnostics
	causes []error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode workbook %s: %s", e.Path, e.Diags.Error())
}

// Unwrap exposes the sentinel causes for errors.Is.
func (e *DecodeError) Unwrap() []error { return e.causes }

// hclWorkbook represents the top-level structure of a workbook file for decoding.
type hclWorkbook struct {
	Calculations []*hclCalculation `hcl:"calculation,block"`
}

// hclCalculation is the raw shape of a calculation block.
type hclCalculation struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Op          hcl.Expression `hcl:"op"`
	Grid        hcl.Expression `hcl:"grid"`
	Operand     hcl.Expression `hcl:"operand"`
}

// decoder accumulates calculations across one or more files.
type decoder struct {
	parser *hclparse.Parser
	seen   map[string]hcl.Range
	wb     *Workbook
	err    *DecodeError
}

func newDecoder(path string) *decoder {
	return &decoder{
		parser: hclparse.NewParser(),
		seen:   make(map[string]hcl.Range),
		wb:     &Workbook{},
		err:    &DecodeError{Path: path},
	}
}

// Decode loads a workbook from path. A directory is searched recursively for
// *.hcl files, which are read in lexical order and merged into one workbook.
func Decode(ctx context.Context, path string) (*Workbook, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("loading workbook", zap.String("path", path))

	files, err := findFiles(path)
	if err != nil {
		return nil, err
	}

	d := newDecoder(path)
	for _, file := range files {
		f, diags := d.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		d.add(f)
	}

	return d.finish(logger)
}

// DecodeBytes parses src as a single workbook file; filename is used in messages.
func DecodeBytes(ctx context.Context, src []byte, filename string) (*Workbook, error) {
	logger := logging.FromContext(ctx)

	d := newDecoder(filename)
	f, diags := d.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	d.add(f)

	return d.finish(logger)
}

// add decodes the calculation blocks of one parsed file.
func (d *decoder) add(f *hcl.File) {
	var raw hclWorkbook
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		d.err.Diags = append(d.err.Diags, diags...)
		return
	}

	for _, rc := range raw.Calculations {
		rng := rc.Op.Range()
		if prev, dup := d.seen[rc.Name]; dup {
			d.err.Diags = append(d.err.Diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate calculation \"" + rc.Name + "\"",
				Detail:   "A calculation with this name was already declared at " + prev.String() + ".",
				Subject:  &rng,
			})
			d.err.causes = appendOnce(d.err.causes, ErrDuplicateName)
			continue
		}
		d.seen[rc.Name] = rng

		var name string
		if diags := gohcl.DecodeExpression(rc.Op, nil, &name); diags.HasErrors() {
			d.err.Diags = append(d.err.Diags, diags...)
			continue
		}
		op, err := matrix.ParseOpID(name)
		if err != nil {
			d.err.Diags = append(d.err.Diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown operation",
				Detail:   fmt.Sprintf("%q is not a supported operation; use one of m_add, m_sub, m_mult, m_div, m_exp, s_add, s_sub, s_mult, s_div, s_exp.", name),
				Subject:  &rng,
			})
			d.err.causes = appendOnce(d.err.causes, matrix.ErrUnknownOperation)
			continue
		}

		d.wb.Calculations = append(d.wb.Calculations, Calculation{
			Name:        rc.Name,
			Description: rc.Description,
			Op:          op,
			Grid:        rc.Grid,
			Operand:     rc.Operand,
			DeclRange:   rng,
		})
	}
}

// finish turns accumulated diagnostics into an error.
func (d *decoder) finish(logger *zap.Logger) (*Workbook, error) {
	if d.err.Diags.HasErrors() {
		return nil, d.err
	}
	if len(d.wb.Calculations) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCalculations, d.err.Path)
	}
	logger.Debug("workbook decoded",
		zap.String("path", d.err.Path),
		zap.Int("calculations", len(d.wb.Calculations)))

	return d.wb, nil
}

// findFiles returns path itself or, for a directory, every *.hcl file below it.
func findFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !de.IsDir() && filepath.Ext(p) == FileExtension {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find workbook files in %s: %w", path, err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCalculations, path)
	}

	return files, nil
}

func appendOnce(errs []error, err error) []error {
	for _, e := range errs {
		if e == err {
			return errs
		}
	}
	return append(errs, err)
}
