// Package pipeline orchestrates one optimize request: extraction,
// segmentation-driven rewriting, scoring, and change reporting. Every
// run is stateless and independent; nothing is shared across requests.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/orozcop9/TailorMyResume-AI/internal/extraction"
	"github.com/orozcop9/TailorMyResume-AI/internal/reporting"
	"github.com/orozcop9/TailorMyResume-AI/internal/rewriting"
	"github.com/orozcop9/TailorMyResume-AI/internal/scoring"
	"github.com/orozcop9/TailorMyResume-AI/internal/skills"
	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

// Pipeline wires the pipeline stages around a rewrite strategy.
type Pipeline struct {
	extract   func(types.RawDocument) (string, error)
	extractor *skills.Extractor
	strategy  rewriting.Strategy
	reporter  *reporting.Reporter
}

// New creates a Pipeline. The strategy is required; nil skill extractor
// and reporter use defaults.
func New(strategy rewriting.Strategy, extractor *skills.Extractor, reporter *reporting.Reporter) *Pipeline {
	if extractor == nil {
		extractor = skills.NewExtractor(nil, nil)
	}
	if reporter == nil {
		reporter = reporting.New(extractor)
	}
	return &Pipeline{
		extract:   extraction.Extract,
		extractor: extractor,
		strategy:  strategy,
		reporter:  reporter,
	}
}

// Run executes the full pipeline for one request. All failures abort
// the run; a partial result is never returned. Cancellation is checked
// cooperatively before each stage.
func (p *Pipeline) Run(ctx context.Context, raw types.RawDocument, jobDescription string) (*types.OptimizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := p.extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extraction: %w", err)
	}
	text = extraction.NormalizeText(text)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	optimized, err := p.strategy.Optimize(ctx, text, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobSkills := p.extractor.ExtractSkills(jobDescription)
	jobKeywords := p.extractor.ExtractKeywords(jobDescription)
	optimizedSkills := p.extractor.ExtractSkills(optimized)

	// The response reports only the optimized ("after") metrics; the
	// original text feeds the change reporter's deltas.
	metrics := types.ImprovementMetrics{
		SkillsMatch:         scoring.SkillMatch(optimizedSkills, jobSkills),
		ATSCompatibility:    scoring.ATSScore(optimized),
		KeywordOptimization: scoring.KeywordMatch(optimized, jobKeywords),
	}

	keyChanges := p.reporter.Diff(text, optimized, jobDescription)

	log.Printf("[pipeline] optimize complete: skills=%d ats=%d keywords=%d changes=%d",
		metrics.SkillsMatch, metrics.ATSCompatibility, metrics.KeywordOptimization, len(keyChanges))

	return &types.OptimizationResult{
		OriginalContent:  text,
		OptimizedContent: optimized,
		Improvements:     metrics,
		KeyChanges:       keyChanges,
	}, nil
}
