// Package irprint renders a lowered ir.Module as deterministic text: one
// block per line group, its instructions and terminator, and a summary
// table of function name / block count / frame size. Used for golden tests
// and the CLI's human-readable dump.
package irprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cflow/internal/ir"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Options controls how Dump renders a module.
type Options struct {
	// Color enables lipgloss/ANSI styling of each function's header line and
	// the summary table header. Golden tests should leave this false.
	Color bool
}

// Dump writes a full textual rendering of m to w: a summary table followed
// by each function's blocks in arena order.
func Dump(w io.Writer, m *ir.Module, opts Options) {
	writeSummaryTable(w, m, opts)
	for _, f := range m.Funcs {
		fmt.Fprintln(w)
		writeFunc(w, f, opts)
	}
}

func writeSummaryTable(w io.Writer, m *ir.Module, opts Options) {
	header := []string{"func", "blocks", "frame"}
	rows := make([][]string, 0, len(m.Funcs))
	for _, f := range m.Funcs {
		rows = append(rows, []string{f.Name, fmt.Sprintf("%d", len(f.Blocks)), fmt.Sprintf("%d", f.FrameSize)})
	}
	widths := columnWidths(header, rows)

	headerLine := formatRow(header, widths)
	if opts.Color {
		headerLine = headerStyle.Render(headerLine)
	}
	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, strings.Repeat("-", sum(widths)+2*(len(widths)-1)))
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

func writeFunc(w io.Writer, f *ir.Func, opts Options) {
	label := fmt.Sprintf("func %s (frame=%d, epilogue=bb%d)", f.Name, f.FrameSize, f.Epilogue)
	if opts.Color {
		label = labelStyle.Render(label)
	}
	fmt.Fprintln(w, label)

	for _, local := range f.Locals {
		fmt.Fprintf(w, "  local %-8s @%d\n", local.Name, local.Offset)
	}

	for _, b := range f.Blocks {
		entryMark := ""
		if b.ID == f.Entry {
			entryMark = " (entry)"
		}
		fmt.Fprintf(w, "bb%d:%s\n", b.ID, entryMark)
		for _, instr := range b.Instrs {
			fmt.Fprintf(w, "    %s\n", formatInstr(instr))
		}
		fmt.Fprintf(w, "    %s\n", formatTerm(b.Term))
	}
}

func formatRow(cols []string, widths []int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		pad := widths[i] - runewidth.StringWidth(c)
		if pad < 0 {
			pad = 0
		}
		parts[i] = c + strings.Repeat(" ", pad)
	}
	return strings.Join(parts, "  ")
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if wv := runewidth.StringWidth(c); wv > widths[i] {
				widths[i] = wv
			}
		}
	}
	return widths
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
