// Package segmentation splits raw resume text into labeled, ordered
// sections using heading-pattern recognition. The scan is a single
// forward pass over the lines; no backtracking.
package segmentation

import (
	"strings"
	"unicode"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

// maxGenericHeadingLen bounds the generic-heading heuristic. Short
// capitalized colon-free lines under this length are treated as custom
// headings; the heuristic can misclassify short sentences, which is a
// known limitation.
const maxGenericHeadingLen = 50

// HeadingCatalog maps section types to their recognized heading
// synonyms. Synonyms are matched case-insensitively against the whole
// line, ignoring a trailing colon.
type HeadingCatalog struct {
	entries []catalogEntry
}

type catalogEntry struct {
	sectionType types.SectionType
	synonyms    map[string]struct{}
}

// DefaultHeadingCatalog returns the built-in heading synonym catalog.
func DefaultHeadingCatalog() *HeadingCatalog {
	c := &HeadingCatalog{}
	c.add(types.SectionSummary,
		"summary", "professional summary", "profile", "professional profile",
		"objective", "career objective", "about", "about me")
	c.add(types.SectionExperience,
		"experience", "work experience", "work history", "employment",
		"employment history", "professional experience", "career history",
		"relevant experience")
	c.add(types.SectionEducation,
		"education", "academic background", "academic history",
		"education and training", "qualifications")
	c.add(types.SectionSkills,
		"skills", "technical skills", "core competencies", "competencies",
		"technologies", "skill set", "areas of expertise", "expertise")
	return c
}

func (c *HeadingCatalog) add(sectionType types.SectionType, synonyms ...string) {
	set := make(map[string]struct{}, len(synonyms))
	for _, s := range synonyms {
		set[s] = struct{}{}
	}
	c.entries = append(c.entries, catalogEntry{sectionType: sectionType, synonyms: set})
}

// Match reports the section type whose synonym list contains the line.
// The first matching type wins.
func (c *HeadingCatalog) Match(line string) (types.SectionType, bool) {
	normalized := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	normalized = strings.TrimSpace(normalized)
	for _, entry := range c.entries {
		if _, ok := entry.synonyms[normalized]; ok {
			return entry.sectionType, true
		}
	}
	return "", false
}

// Segmenter splits resume text into sections using a heading catalog.
type Segmenter struct {
	catalog *HeadingCatalog
}

// New creates a Segmenter. A nil catalog uses the default.
func New(catalog *HeadingCatalog) *Segmenter {
	if catalog == nil {
		catalog = DefaultHeadingCatalog()
	}
	return &Segmenter{catalog: catalog}
}

// Segment scans the text top to bottom and returns the ordered section
// sequence. Content before the first recognized header is discarded.
// Duplicate headers of the same type produce separate sections; nothing
// is merged. The last open section is emitted only if it accumulated
// content.
func (s *Segmenter) Segment(text string) []types.ResumeSection {
	var sections []types.ResumeSection
	var current *types.ResumeSection
	var body []string

	flush := func(requireContent bool) {
		if current == nil {
			return
		}
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if requireContent && content == "" {
			current, body = nil, nil
			return
		}
		current.Content = content
		sections = append(sections, *current)
		current, body = nil, nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if sectionType, ok := s.catalog.Match(line); ok {
			flush(false)
			current = &types.ResumeSection{Type: sectionType, OriginalTitle: line}
			continue
		}

		if isGenericHeading(line) {
			flush(false)
			current = &types.ResumeSection{Type: types.SectionOther, OriginalTitle: line}
			continue
		}

		if current != nil {
			body = append(body, rawLine)
		}
	}

	flush(true)
	return sections
}

// Reassemble joins sections back into a full document: title, newline,
// content, with a blank line between sections. This is the inverse of
// Segment for documents that begin with a recognized heading.
func Reassemble(sections []types.ResumeSection) string {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, section.OriginalTitle+"\n"+section.Content)
	}
	return strings.Join(parts, "\n\n")
}

// isGenericHeading reports whether a line looks like a custom section
// heading: short, starts with an uppercase letter, and contains no
// colon.
func isGenericHeading(line string) bool {
	if len(line) > maxGenericHeadingLen || strings.Contains(line, ":") {
		return false
	}
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0])
}
