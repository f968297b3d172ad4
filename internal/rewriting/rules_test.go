package rewriting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orozcop9/TailorMyResume-AI/internal/skills"
	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

func newTestExtractor() *skills.Extractor {
	return skills.NewExtractor(nil, nil)
}

func TestOptimizeSection_EducationPassesThroughUnchanged(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:          types.SectionEducation,
		OriginalTitle: "Education",
		Content:       "BS in Computer Science, State University, 2014 - 2018",
	}

	got := strategy.OptimizeSection(section, skills.NewSet("go"), skills.NewSet("go", "backend"))

	assert.Equal(t, section.Content, got)
}

func TestOptimizeSection_OtherPassesThroughUnchanged(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:          types.SectionOther,
		OriginalTitle: "Certifications",
		Content:       "- AWS Certified Developer, issued 2023",
	}

	got := strategy.OptimizeSection(section, skills.NewSet("terraform"), skills.NewSet("terraform"))

	assert.Equal(t, section.Content, got)
}

func TestOptimizeSection_SkillsAddendum(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:          types.SectionSkills,
		OriginalTitle: "Skills",
		Content:       "React, JavaScript, HTML, CSS",
	}
	extractor := newTestExtractor()
	jobSkills := extractor.ExtractSkills("Looking for a React, TypeScript, and AWS engineer.")

	got := strategy.OptimizeSection(section, jobSkills, skills.NewSet())

	assert.True(t, strings.HasPrefix(got, section.Content), "declared skills must be preserved")
	assert.Contains(t, got, "Additional relevant skills: aws, typescript")
	assert.NotContains(t, strings.TrimPrefix(got, section.Content), "react")
}

func TestOptimizeSection_SkillsNoAdditionWhenCovered(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:    types.SectionSkills,
		Content: "React, TypeScript, AWS",
	}
	jobSkills := newTestExtractor().ExtractSkills("React, TypeScript, and AWS")

	got := strategy.OptimizeSection(section, jobSkills, skills.NewSet())

	assert.Equal(t, section.Content, got)
}

func TestOptimizeSection_SummaryAugmentationOnly(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	content := "Backend engineer who enjoys distributed systems."
	section := types.ResumeSection{Type: types.SectionSummary, Content: content}

	got := strategy.OptimizeSection(section, skills.NewSet(), skills.NewSet("kubernetes", "terraform", "golang", "observability"))

	assert.True(t, strings.HasPrefix(got, content), "existing sentences are never deleted or reordered")
	// At most three keywords are named.
	assert.Contains(t, got, "Experienced with golang, kubernetes, and observability.")
}

func TestOptimizeSection_SummaryUnchangedWhenKeywordsPresent(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	content := "Engineer working with kubernetes daily."
	section := types.ResumeSection{Type: types.SectionSummary, Content: content}

	got := strategy.OptimizeSection(section, skills.NewSet(), skills.NewSet("kubernetes"))

	assert.Equal(t, content, got)
}

func TestOptimizeSection_ExperienceVerbSubstitution(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:    types.SectionExperience,
		Content: "- Worked on the billing system\n- Was responsible for deployments\n- helped the platform team",
	}
	jobKeywords := skills.NewSet("billing", "deployments", "platform")

	got := strategy.OptimizeSection(section, skills.NewSet(), jobKeywords)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3, "substitutions must not alter line count")
	assert.Equal(t, "- Developed the billing system", lines[0])
	assert.Equal(t, "- Managed deployments", lines[1])
	assert.Equal(t, "- led the platform team", lines[2])
}

func TestOptimizeSection_ExperienceKeywordInjection(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	section := types.ResumeSection{
		Type:    types.SectionExperience,
		Content: "- Shipped the checkout flow",
	}
	jobKeywords := skills.NewSet("graphql")

	got := strategy.OptimizeSection(section, skills.NewSet(), jobKeywords)

	assert.Equal(t, "- Shipped the checkout flow, utilizing graphql", got)
}

func TestOptimizeSection_ExperienceNoInjectionWithMarkerWord(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	content := "- Shipped the checkout flow using internal tooling"
	section := types.ResumeSection{Type: types.SectionExperience, Content: content}

	got := strategy.OptimizeSection(section, skills.NewSet(), skills.NewSet("graphql"))

	assert.Equal(t, content, got)
}

func TestOptimizeSection_ExperienceHeaderLinesVerbatim(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	header := "Acme Corp | Senior Engineer | 2019 - 2023"
	section := types.ResumeSection{
		Type:    types.SectionExperience,
		Content: header + "\n- Worked on internal APIs",
	}

	got := strategy.OptimizeSection(section, skills.NewSet(), skills.NewSet("apis"))
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "- Developed internal APIs", lines[1])
}

func TestOptimize_EndToEndSkillMatchReachesFull(t *testing.T) {
	strategy := NewRuleStrategy(nil, nil, nil)
	extractor := newTestExtractor()
	job := "Looking for a React, TypeScript, and AWS engineer."
	resume := "Skills\nreact, JavaScript, HTML, CSS"

	optimized, err := strategy.Optimize(context.Background(), resume, job)
	require.NoError(t, err)

	jobSkills := extractor.ExtractSkills(job)
	optimizedSkills := extractor.ExtractSkills(optimized)
	assert.Equal(t, jobSkills.Sorted(), jobSkills.Intersect(optimizedSkills).Sorted(),
		"every job skill must be present after optimization")
	assert.Contains(t, optimized, "Skills\n")
	assert.Contains(t, optimized, "react, JavaScript, HTML, CSS")
}
