package rewriting

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/orozcop9/TailorMyResume-AI/internal/segmentation"
	"github.com/orozcop9/TailorMyResume-AI/internal/skills"
	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

// maxSummaryKeywords caps how many missing job keywords the summary
// clause may name.
const maxSummaryKeywords = 3

// VerbSubstitution maps a weak verb phrase to its stronger replacement.
// Replacement is whole-word and case-insensitive; the leading capital of
// the matched text is preserved.
type VerbSubstitution struct {
	Weak   string
	Strong string
}

// DefaultVerbTable returns the fixed weak-to-strong verb substitution
// table. Longer phrases come first so they win over their prefixes.
func DefaultVerbTable() []VerbSubstitution {
	return []VerbSubstitution{
		{Weak: "was responsible for", Strong: "managed"},
		{Weak: "were responsible for", Strong: "managed"},
		{Weak: "assisted with", Strong: "supported"},
		{Weak: "worked on", Strong: "developed"},
		{Weak: "worked with", Strong: "collaborated with"},
		{Weak: "helped", Strong: "led"},
		{Weak: "handled", Strong: "managed"},
		{Weak: "made", Strong: "created"},
	}
}

var (
	bulletPrefixRe = regexp.MustCompile(`^\s*[-•]`)
	actionTokenRe  = regexp.MustCompile(`(?i)\b[a-z]{3,}(?:ed|ing)\b`)
	markerWordRe   = regexp.MustCompile(`(?i)\b(?:utilizing|using)\b`)
	lineTokenRe    = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

// RuleStrategy is the deterministic rewriter: per-section transformation
// rules that strengthen verbs and inject missing skills and keywords
// without deleting or reordering existing content.
type RuleStrategy struct {
	segmenter *segmentation.Segmenter
	extractor *skills.Extractor
	verbSubs  []compiledSub
}

type compiledSub struct {
	re     *regexp.Regexp
	strong string
}

// NewRuleStrategy creates a RuleStrategy. Nil arguments use defaults.
func NewRuleStrategy(segmenter *segmentation.Segmenter, extractor *skills.Extractor, verbTable []VerbSubstitution) *RuleStrategy {
	if segmenter == nil {
		segmenter = segmentation.New(nil)
	}
	if extractor == nil {
		extractor = skills.NewExtractor(nil, nil)
	}
	if verbTable == nil {
		verbTable = DefaultVerbTable()
	}

	subs := make([]compiledSub, 0, len(verbTable))
	for _, sub := range verbTable {
		subs = append(subs, compiledSub{
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(sub.Weak) + `\b`),
			strong: sub.Strong,
		})
	}

	return &RuleStrategy{segmenter: segmenter, extractor: extractor, verbSubs: subs}
}

// Optimize segments the resume, rewrites each section according to its
// type, and reassembles the document in original order.
func (r *RuleStrategy) Optimize(_ context.Context, original, jobDescription string) (string, error) {
	jobSkills := r.extractor.ExtractSkills(jobDescription)
	jobKeywords := r.extractor.ExtractKeywords(jobDescription)

	sections := r.segmenter.Segment(original)
	rewritten := make([]types.ResumeSection, 0, len(sections))
	for _, section := range sections {
		section.Content = r.OptimizeSection(section, jobSkills, jobKeywords)
		rewritten = append(rewritten, section)
	}

	return segmentation.Reassemble(rewritten), nil
}

// OptimizeSection applies the type-specific rewrite rules to a single
// section and returns the new content. Education and other sections
// pass through unchanged: degrees and dates are never altered.
func (r *RuleStrategy) OptimizeSection(section types.ResumeSection, jobSkills, jobKeywords skills.Set) string {
	switch section.Type {
	case types.SectionSummary:
		return r.rewriteSummary(section.Content, jobKeywords)
	case types.SectionExperience:
		return r.rewriteExperience(section.Content, jobKeywords)
	case types.SectionSkills:
		return r.rewriteSkills(section.Content, jobSkills)
	default:
		return section.Content
	}
}

// rewriteSummary appends at most one short clause naming missing job
// keywords. Existing sentences are never deleted or reordered.
func (r *RuleStrategy) rewriteSummary(content string, jobKeywords skills.Set) string {
	present := tokensOf(content)
	missing := make([]string, 0, maxSummaryKeywords)
	for _, keyword := range jobKeywords.Sorted() {
		if present.Has(keyword) {
			continue
		}
		missing = append(missing, keyword)
		if len(missing) == maxSummaryKeywords {
			break
		}
	}

	if len(missing) == 0 {
		return content
	}
	return content + " Experienced with " + joinNaturally(missing) + "."
}

// rewriteExperience rewrites bullet and achievement lines in place.
// Lines that are neither (company and date headers) pass through
// verbatim, and the line count never changes.
func (r *RuleStrategy) rewriteExperience(content string, jobKeywords skills.Set) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !isAchievementLine(line) {
			continue
		}

		line = r.strengthenVerbs(line)

		// Inject one missing keyword unless the line already carries one
		// or already has a tooling clause.
		if !hasAnyKeyword(line, jobKeywords) && !markerWordRe.MatchString(line) {
			if keyword, ok := firstMissingKeyword(line, jobKeywords); ok {
				line = strings.TrimRight(line, " .") + ", utilizing " + keyword
			}
		}

		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// rewriteSkills appends a labeled addendum line naming job skills absent
// from the section. Declared skills are never removed.
func (r *RuleStrategy) rewriteSkills(content string, jobSkills skills.Set) string {
	sectionSkills := r.extractor.ExtractSkills(content)
	missing := jobSkills.Diff(sectionSkills)
	if len(missing) == 0 {
		return content
	}
	return content + "\nAdditional relevant skills: " + strings.Join(missing.Sorted(), ", ")
}

// strengthenVerbs applies the substitution table to one line, keeping
// the capitalization of the replaced phrase's first letter.
func (r *RuleStrategy) strengthenVerbs(line string) string {
	for _, sub := range r.verbSubs {
		line = sub.re.ReplaceAllStringFunc(line, func(match string) string {
			if len(match) > 0 && unicode.IsUpper([]rune(match)[0]) {
				return capitalize(sub.strong)
			}
			return sub.strong
		})
	}
	return line
}

// isAchievementLine reports whether an experience line is a rewrite
// candidate: it starts with a bullet marker or contains a past-tense or
// gerund verb token.
func isAchievementLine(line string) bool {
	return bulletPrefixRe.MatchString(line) || actionTokenRe.MatchString(line)
}

func hasAnyKeyword(line string, jobKeywords skills.Set) bool {
	for token := range tokensOf(line) {
		if jobKeywords.Has(token) {
			return true
		}
	}
	return false
}

func firstMissingKeyword(line string, jobKeywords skills.Set) (string, bool) {
	present := tokensOf(line)
	for _, keyword := range jobKeywords.Sorted() {
		if !present.Has(keyword) {
			return keyword, true
		}
	}
	return "", false
}

func tokensOf(text string) skills.Set {
	tokens := make(skills.Set)
	for _, token := range lineTokenRe.FindAllString(text, -1) {
		tokens.Add(strings.ToLower(token))
	}
	return tokens
}

func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
