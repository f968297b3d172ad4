// Package scoring computes the three improvement metrics: skill match,
// keyword overlap, and an ATS-compatibility heuristic. All functions
// are deterministic and side-effect-free.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/orozcop9/TailorMyResume-AI/internal/skills"
)

// atsBaseScore is the starting point for the ATS heuristic.
const atsBaseScore = 85

var (
	tokenRe      = regexp.MustCompile(`[a-zA-Z0-9]+`)
	bulletLineRe = regexp.MustCompile(`(?m)^\s*[-•]`)
	sectionRe    = regexp.MustCompile(`(?i)\b(?:education|experience|skills)\b`)
	achieveRe    = regexp.MustCompile(`(?i)\b(?:increased|decreased|improved|reduced|achieved|delivered)\b`)
	quantifiedRe = regexp.MustCompile(`(?i)(?:\d+(?:\.\d+)?%|\$\d+|\b\d+\+?\s*(?:users|customers|clients|projects)\b)`)
)

// SkillMatch returns the percentage of job skills covered by the
// resume. An empty job set is a vacuous full match: 100.
func SkillMatch(resumeSkills, jobSkills skills.Set) int {
	if len(jobSkills) == 0 {
		return 100
	}
	matched := len(resumeSkills.Intersect(jobSkills))
	return int(math.Round(100 * float64(matched) / float64(len(jobSkills))))
}

// KeywordMatch returns the percentage of job keywords present as tokens
// in the content. The same empty-set guard as SkillMatch applies.
func KeywordMatch(content string, jobKeywords skills.Set) int {
	if len(jobKeywords) == 0 {
		return 100
	}
	contentTokens := tokenize(content)
	matched := 0
	for keyword := range jobKeywords {
		if contentTokens.Has(keyword) {
			matched++
		}
	}
	return int(math.Round(100 * float64(matched) / float64(len(jobKeywords))))
}

// KeywordHits counts how many job keywords appear as tokens in the
// content. Used by the change reporter to measure before/after deltas.
func KeywordHits(content string, jobKeywords skills.Set) int {
	contentTokens := tokenize(content)
	hits := 0
	for keyword := range jobKeywords {
		if contentTokens.Has(keyword) {
			hits++
		}
	}
	return hits
}

// ATSScore returns a coarse formatting heuristic, not an ATS emulation:
// base 85, +5 for core section words, +5 for a bullet line, +3 for an
// achievement verb, +2 for a quantified result, capped at 100.
func ATSScore(content string) int {
	score := atsBaseScore
	if sectionRe.MatchString(content) {
		score += 5
	}
	if bulletLineRe.MatchString(content) {
		score += 5
	}
	if achieveRe.MatchString(content) {
		score += 3
	}
	if quantifiedRe.MatchString(content) {
		score += 2
	}
	if score > 100 {
		score = 100
	}
	return score
}

func tokenize(content string) skills.Set {
	tokens := make(skills.Set)
	for _, token := range tokenRe.FindAllString(content, -1) {
		tokens.Add(strings.ToLower(token))
	}
	return tokens
}
