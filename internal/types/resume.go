// Package types defines the shared domain types for the resume
// optimization pipeline. All values are request-scoped; nothing here is
// persisted or shared between requests.
package types

// SectionType classifies a resume section for rewriting dispatch.
type SectionType string

// Section type constants
const (
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionOther      SectionType = "other"
)

// ResumeSection is one labeled block of a segmented resume. Order of
// appearance in the source document is preserved and significant for
// reassembly.
type ResumeSection struct {
	Type SectionType `json:"type"`
	// OriginalTitle is the verbatim heading text, preserved for output
	// fidelity.
	OriginalTitle string `json:"original_title"`
	// Content is the body lines joined with newlines, trimmed.
	Content string `json:"content"`
}

// MediaType identifies a supported upload format.
type MediaType string

// Supported media types
const (
	MediaPDF  MediaType = "application/pdf"
	MediaDOCX MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// RawDocument is an uploaded resume before text extraction. It is
// ephemeral: created per request and discarded once the text is out.
type RawDocument struct {
	Data      []byte
	MediaType MediaType
}

// ImprovementMetrics holds the three normalized percentage scores
// computed for the optimized resume. Recomputed fresh each request,
// never persisted.
type ImprovementMetrics struct {
	SkillsMatch         int `json:"skillsMatch"`
	ATSCompatibility    int `json:"atsCompatibility"`
	KeywordOptimization int `json:"keywordOptimization"`
}

// OptimizationResult is the complete output bundle for one optimize
// request.
type OptimizationResult struct {
	OriginalContent  string             `json:"originalContent"`
	OptimizedContent string             `json:"optimizedContent"`
	Improvements     ImprovementMetrics `json:"improvements"`
	KeyChanges       []string           `json:"keyChanges"`
}
