package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_AddedSkills(t *testing.T) {
	reporter := New(nil)
	original := "worked with javascript"
	optimized := "worked with javascript, typescript and aws"

	changes := reporter.Diff(original, optimized, "nothing relevant here")

	require.NotEmpty(t, changes)
	assert.Equal(t, "Added relevant skills: aws, typescript", changes[0])
}

func TestDiff_StatementOrderIsFixed(t *testing.T) {
	reporter := New(nil)
	original := "worked with javascript on the storefront"
	optimized := "developed javascript and typescript checkout experiences"
	job := "typescript checkout experiences"

	changes := reporter.Diff(original, optimized, job)

	// Skills first, verbs second, keywords last.
	require.Len(t, changes, 3)
	assert.Contains(t, changes[0], "Added relevant skills:")
	assert.Equal(t, "Strengthened action verbs for greater impact", changes[1])
	assert.Contains(t, changes[2], "job-specific keywords")
}

func TestDiff_KeywordDeltaCount(t *testing.T) {
	reporter := New(nil)
	original := "maintained internal services"
	optimized := "maintained internal services for checkout and payments infrastructure"
	job := "checkout payments infrastructure"

	changes := reporter.Diff(original, optimized, job)

	require.NotEmpty(t, changes)
	assert.Contains(t, changes, "Added 3 job-specific keywords")
}

func TestDiff_NoDetectableImprovement(t *testing.T) {
	reporter := New(nil)
	text := "maintained internal services"

	changes := reporter.Diff(text, text, "unrelated job description")

	assert.Empty(t, changes)
}

func TestDiff_NoVerbStatementWhenCountsEqual(t *testing.T) {
	reporter := New(nil)
	original := "developed the api"
	optimized := "developed the api for merchants"

	changes := reporter.Diff(original, optimized, "")

	for _, change := range changes {
		assert.NotEqual(t, "Strengthened action verbs for greater impact", change)
	}
}
