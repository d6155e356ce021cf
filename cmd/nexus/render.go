// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/matrixnexus/matrix"
	"github.com/katalvlaran/matrixnexus/session"
)

// Palette
var (
	colorPrimary = lipgloss.Color("#2196F3")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#8a94a6")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by the commands.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Special lipgloss.Style // NaN and Inf cells
	Border  lipgloss.Style
}

func newStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Label:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Special: lipgloss.NewStyle().Foreground(colorWarning),
		Border:  lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// formatCell prints v with fixed decimals; non-finite values print as NaN/+Inf/-Inf.
func formatCell(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// renderGrid draws g as a bordered table.
func renderGrid(st Styles, g matrix.Grid, decimals int) string {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = formatCell(v, decimals)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if row >= 0 && row < len(g) && col < len(g[row]) {
				if v := g[row][col]; math.IsNaN(v) || math.IsInf(v, 0) {
					return base.Inherit(st.Special)
				}
			}
			return base
		})

	return t.String()
}

// renderEntry prints one calculation: title, inputs, result grid and timing.
func renderEntry(st Styles, e session.Entry, decimals int) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render(e.Op.DisplayName()))
	sb.WriteString(st.Muted.Render(fmt.Sprintf("  (%s)", e.Op)))
	sb.WriteString("\n")
	sb.WriteString(st.Label.Render("A"))
	sb.WriteString(fmt.Sprintf(" %s  %s  ", e.Primary.Shape(), e.Op.Kind.Symbol()))
	if s, ok := e.Operand.Scalar(); ok {
		sb.WriteString(formatCell(s, decimals))
	} else {
		g, _ := e.Operand.Grid()
		sb.WriteString(st.Label.Render("B"))
		sb.WriteString(" " + g.Shape().String())
	}
	sb.WriteString("\n")
	sb.WriteString(renderGrid(st, e.Result, decimals))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render("computed in " + formatDuration(e.Elapsed)))

	return sb.String()
}

// renderHistory lists entries newest first.
func renderHistory(st Styles, entries []session.Entry) string {
	if len(entries) == 0 {
		return st.Muted.Render("No calculations yet")
	}

	var sb strings.Builder
	sb.WriteString(st.Title.Render("History"))
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%2d. %-24s %-6s %s  %s",
			i+1, e.Op.DisplayName(), e.Result.Shape(), formatDuration(e.Elapsed),
			st.Muted.Render(e.At.Format(time.TimeOnly))))
	}

	return sb.String()
}

// renderStats prints the session counters.
func renderStats(st Styles, s session.Stats) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Performance"))
	sb.WriteString(fmt.Sprintf("\noperations: %d  failures: %d", s.Operations, s.Failures))
	sb.WriteString(fmt.Sprintf("\naverage: %s  ops/sec: %.2f", formatDuration(s.Average), s.OpsPerSec))
	if len(s.Window) > 0 {
		sb.WriteString(fmt.Sprintf("\nlast %d: min %s  max %s  mean %s",
			len(s.Window), formatDuration(s.WindowMin), formatDuration(s.WindowMax), formatDuration(s.WindowMean)))
	}

	return sb.String()
}

// formatDuration prints milliseconds with two decimals, e.g. "0.01ms".
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
