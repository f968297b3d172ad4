// Package observability provides formatted output utilities for the
// CLI's verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxChangesToShow is the number of key changes displayed in full
	maxChangesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMetrics outputs the improvement metrics for an optimization run.
func (p *Printer) PrintMetrics(metrics types.ImprovementMetrics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills match:         %3d%%\n", metrics.SkillsMatch))
	sb.WriteString(fmt.Sprintf("ATS compatibility:    %3d%%\n", metrics.ATSCompatibility))
	sb.WriteString(fmt.Sprintf("Keyword optimization: %3d%%", metrics.KeywordOptimization))
	p.printBox("IMPROVEMENT METRICS", sb.String())
}

// PrintKeyChanges outputs the changelog of an optimization run.
func (p *Printer) PrintKeyChanges(changes []string) {
	if len(changes) == 0 {
		p.printBox("KEY CHANGES", "No detectable improvements")
		return
	}

	var sb strings.Builder
	count := min(len(changes), maxChangesToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s", changes[i]))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(changes) > maxChangesToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(changes)-maxChangesToShow))
	}
	p.printBox("KEY CHANGES", sb.String())
}

// PrintResult outputs the full result bundle: metrics, changes, and the
// optimized resume text.
func (p *Printer) PrintResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}
	p.PrintMetrics(result.Improvements)
	p.PrintKeyChanges(result.KeyChanges)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, result.OptimizedContent)
}
