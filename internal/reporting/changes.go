// Package reporting produces the human-readable changelog for one
// optimize request by diffing the original and optimized resume text.
package reporting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/orozcop9/TailorMyResume-AI/internal/scoring"
	"github.com/orozcop9/TailorMyResume-AI/internal/skills"
)

// strongVerbRe counts strong action verbs for the before/after
// comparison.
var strongVerbRe = regexp.MustCompile(`(?i)\b(?:developed|led|managed|created|implemented|designed|delivered|launched|built|optimized|improved|increased|reduced|achieved|spearheaded|collaborated)\b`)

// Reporter diffs pre/post optimization text into improvement
// statements.
type Reporter struct {
	extractor *skills.Extractor
}

// New creates a Reporter. A nil extractor uses the default.
func New(extractor *skills.Extractor) *Reporter {
	if extractor == nil {
		extractor = skills.NewExtractor(nil, nil)
	}
	return &Reporter{extractor: extractor}
}

// Diff returns the ordered improvement statements: added skills first,
// then verb strengthening, then keyword injection. An empty list is
// valid when nothing detectably improved.
func (r *Reporter) Diff(original, optimized, jobDescription string) []string {
	changes := make([]string, 0, 3)

	originalSkills := r.extractor.ExtractSkills(original)
	optimizedSkills := r.extractor.ExtractSkills(optimized)
	if added := optimizedSkills.Diff(originalSkills); len(added) > 0 {
		changes = append(changes, "Added relevant skills: "+strings.Join(added.Sorted(), ", "))
	}

	if countStrongVerbs(optimized) > countStrongVerbs(original) {
		changes = append(changes, "Strengthened action verbs for greater impact")
	}

	jobKeywords := r.extractor.ExtractKeywords(jobDescription)
	before := scoring.KeywordHits(original, jobKeywords)
	after := scoring.KeywordHits(optimized, jobKeywords)
	if after > before {
		changes = append(changes, fmt.Sprintf("Added %d job-specific keywords", after-before))
	}

	return changes
}

func countStrongVerbs(text string) int {
	return len(strongVerbRe.FindAllString(text, -1))
}
