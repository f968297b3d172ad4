package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orozcop9/TailorMyResume-AI/internal/rewriting"
	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

type stubStrategy struct {
	result string
	err    error

	gotOriginal string
	gotJob      string
}

func (s *stubStrategy) Optimize(_ context.Context, original, jobDescription string) (string, error) {
	s.gotOriginal = original
	s.gotJob = jobDescription
	return s.result, s.err
}

func stubExtract(text string, err error) func(types.RawDocument) (string, error) {
	return func(types.RawDocument) (string, error) { return text, err }
}

func TestRun_HappyPath(t *testing.T) {
	strategy := &stubStrategy{result: "Skills\nreact, typescript, aws"}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("Skills\nreact", nil)

	result, err := p.Run(context.Background(), types.RawDocument{MediaType: types.MediaPDF}, "React, TypeScript, and AWS")
	require.NoError(t, err)

	assert.Equal(t, "Skills\nreact", result.OriginalContent)
	assert.Equal(t, "Skills\nreact, typescript, aws", result.OptimizedContent)
	assert.Equal(t, 100, result.Improvements.SkillsMatch)
	assert.GreaterOrEqual(t, result.Improvements.ATSCompatibility, 85)
	assert.Equal(t, "Skills\nreact", strategy.gotOriginal, "strategy receives the normalized text")
}

func TestRun_NormalizesBeforeRewrite(t *testing.T) {
	strategy := &stubStrategy{result: "out"}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("line one\r\n\r\n\r\n\r\nline   two  ", nil)

	result, err := p.Run(context.Background(), types.RawDocument{}, "job")
	require.NoError(t, err)

	assert.Equal(t, "line one\n\nline two", result.OriginalContent)
	assert.Equal(t, "line one\n\nline two", strategy.gotOriginal)
}

func TestRun_ExtractionFailureAborts(t *testing.T) {
	strategy := &stubStrategy{result: "never reached"}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("", errors.New("bad bytes"))

	result, err := p.Run(context.Background(), types.RawDocument{}, "job")

	require.Error(t, err)
	assert.Nil(t, result, "no partial result on failure")
	assert.Empty(t, strategy.gotOriginal, "rewrite stage must not run")
}

func TestRun_RewriteFailureAborts(t *testing.T) {
	strategy := &stubStrategy{err: &rewriting.APICallError{Message: "provider unavailable"}}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("some resume", nil)

	result, err := p.Run(context.Background(), types.RawDocument{}, "job")

	require.Error(t, err)
	assert.Nil(t, result)

	var apiErr *rewriting.APICallError
	assert.ErrorAs(t, err, &apiErr, "cause is preserved for classification")
}

func TestRun_CancelledContext(t *testing.T) {
	strategy := &stubStrategy{result: "out"}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("some resume", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Run(ctx, types.RawDocument{}, "job")

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestRun_MetricsUseOptimizedText(t *testing.T) {
	// The original lacks the job skill; the optimized text has it. The
	// reported match must reflect the optimized text.
	strategy := &stubStrategy{result: "worked with terraform"}
	p := New(strategy, nil, nil)
	p.extract = stubExtract("worked with spreadsheets", nil)

	result, err := p.Run(context.Background(), types.RawDocument{}, "terraform")
	require.NoError(t, err)

	assert.Equal(t, 100, result.Improvements.SkillsMatch)
	assert.Equal(t, 100, result.Improvements.KeywordOptimization)
}
