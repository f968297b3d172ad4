package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

func TestPrintMetrics(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMetrics(types.ImprovementMetrics{
		SkillsMatch:         67,
		ATSCompatibility:    92,
		KeywordOptimization: 45,
	})

	out := buf.String()
	assert.Contains(t, out, "IMPROVEMENT METRICS")
	assert.Contains(t, out, "Skills match:")
	assert.Contains(t, out, "67%")
	assert.Contains(t, out, "ATS compatibility:")
	assert.Contains(t, out, "92%")
	assert.Contains(t, out, "Keyword optimization:")
	assert.Contains(t, out, "45%")
}

func TestPrintKeyChanges_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	changes := []string{"one", "two", "three", "four", "five", "six", "seven"}
	printer.PrintKeyChanges(changes)

	out := buf.String()
	assert.Contains(t, out, "• five")
	assert.NotContains(t, out, "• six")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintKeyChanges_Empty(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKeyChanges(nil)

	assert.Contains(t, buf.String(), "No detectable improvements")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResult(&types.OptimizationResult{
		OptimizedContent: "Optimized resume body",
		Improvements:     types.ImprovementMetrics{SkillsMatch: 100, ATSCompatibility: 90, KeywordOptimization: 80},
		KeyChanges:       []string{"Added relevant skills: go"},
	})

	out := buf.String()
	assert.Contains(t, out, "KEY CHANGES")
	assert.True(t, strings.HasSuffix(out, "Optimized resume body\n"))
}

func TestPrintResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}
