package segmentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

const sampleResume = `Summary
Software engineer with five years of backend experience.

Experience
- Built payment services in Go
- Reduced deployment time by 40%

Education
BS in Computer Science, State University, 2014 - 2018

Skills
Go, PostgreSQL, Docker, Kubernetes, Terraform, Linux, Git`

func TestSegment_RecognizesCatalogHeadings(t *testing.T) {
	sections := New(nil).Segment(sampleResume)

	require.Len(t, sections, 4)
	assert.Equal(t, types.SectionSummary, sections[0].Type)
	assert.Equal(t, "Summary", sections[0].OriginalTitle)
	assert.Equal(t, types.SectionExperience, sections[1].Type)
	assert.Equal(t, types.SectionEducation, sections[2].Type)
	assert.Equal(t, types.SectionSkills, sections[3].Type)
	assert.Equal(t, "BS in Computer Science, State University, 2014 - 2018", sections[2].Content)
}

func TestSegment_HeadingSynonymsAndTrailingColon(t *testing.T) {
	text := "Work History:\n- Built things\n\nCore Competencies\ngo, sql, leadership"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 2)
	assert.Equal(t, types.SectionExperience, sections[0].Type)
	assert.Equal(t, "Work History:", sections[0].OriginalTitle)
	assert.Equal(t, types.SectionSkills, sections[1].Type)
}

func TestSegment_CustomHeadingBecomesOther(t *testing.T) {
	text := "Summary\nEngineer focused on reliability and developer tooling.\n\nCertifications\n- AWS Certified Developer"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 2)
	assert.Equal(t, types.SectionOther, sections[1].Type)
	assert.Equal(t, "Certifications", sections[1].OriginalTitle)
	assert.Equal(t, "- AWS Certified Developer", sections[1].Content)
}

func TestSegment_DiscardsContentBeforeFirstHeader(t *testing.T) {
	text := "jane doe\njane@example.com\n\nExperience\n- Did work"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionExperience, sections[0].Type)
	assert.NotContains(t, sections[0].Content, "jane@example.com")
}

func TestSegment_DuplicateTypesStaySeparate(t *testing.T) {
	text := "Experience\n- First job\n\nEducation\nenrolled 2011, graduated 2015\n\nExperience\n- Second job"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 3)
	assert.Equal(t, types.SectionExperience, sections[0].Type)
	assert.Equal(t, "- First job", sections[0].Content)
	assert.Equal(t, types.SectionExperience, sections[2].Type)
	assert.Equal(t, "- Second job", sections[2].Content)
}

func TestSegment_DropsTrailingEmptySection(t *testing.T) {
	text := "Experience\n- Shipped features\n\nEducation"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionExperience, sections[0].Type)
}

func TestSegment_ShortCapitalizedContentBecomesHeading(t *testing.T) {
	// Known heuristic limitation: a short capitalized colon-free line
	// inside a section is indistinguishable from a custom heading, so it
	// opens a new empty section instead of joining the body.
	text := "Experience\nShipped many features"
	sections := New(nil).Segment(text)

	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionExperience, sections[0].Type)
	assert.Empty(t, sections[0].Content)
}

func TestSegment_RoundTripPreservesNonBlankLines(t *testing.T) {
	sections := New(nil).Segment(sampleResume)
	rebuilt := Reassemble(sections)

	for _, line := range strings.Split(sampleResume, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		assert.Contains(t, rebuilt, line)
	}
}

func TestIsGenericHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"short capitalized", "Certifications", true},
		{"lowercase start", "certifications", false},
		{"contains colon", "Phone: 555-1234", false},
		{"bullet line", "- Certifications", false},
		{"too long", strings.Repeat("A", 51), false},
		{"exactly max length", strings.Repeat("A", 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isGenericHeading(tt.line))
		})
	}
}
