package skills

import (
	"regexp"
	"strings"
)

// minKeywordLen is the exclusive lower bound on keyword token length.
const minKeywordLen = 2

var (
	tokenRe   = regexp.MustCompile(`[a-zA-Z0-9]+`)
	numericRe = regexp.MustCompile(`^[0-9]+$`)
)

// defaultStopWords is the fixed stop-word list used for keyword
// extraction.
var defaultStopWords = NewSet(
	"the", "and", "for", "are", "but", "not", "you", "your", "our", "their",
	"they", "them", "was", "were", "will", "with", "that", "this", "these",
	"those", "have", "has", "had", "his", "her", "its", "can", "could",
	"should", "would", "may", "might", "must", "shall", "been", "being",
	"able", "about", "above", "after", "again", "all", "also", "any",
	"because", "before", "below", "between", "both", "down", "during",
	"each", "few", "from", "further", "here", "how", "into", "just", "more",
	"most", "once", "only", "other", "out", "over", "own", "same", "some",
	"such", "than", "then", "there", "through", "too", "under", "until",
	"very", "what", "when", "where", "which", "while", "who", "whom", "why",
	"within", "without", "yours",
)

// Extractor extracts skill and keyword sets from text. Both operations
// are pure: the same input always yields the same output.
type Extractor struct {
	catalog   *Catalog
	stopWords Set
}

// NewExtractor creates an Extractor. Nil arguments use the defaults.
func NewExtractor(catalog *Catalog, stopWords Set) *Extractor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if stopWords == nil {
		stopWords = defaultStopWords
	}
	return &Extractor{catalog: catalog, stopWords: stopWords}
}

// ExtractSkills returns the set of catalog skills recognized in the
// text, lower-cased and deduplicated across groups.
func (e *Extractor) ExtractSkills(text string) Set {
	found := make(Set)
	for _, matcher := range e.catalog.matchers {
		if matcher.re.MatchString(text) {
			found.Add(matcher.canonical)
		}
	}
	return found
}

// ExtractKeywords returns the significant word tokens of the text:
// lower-cased, longer than two characters, not purely numeric, and not
// stop words.
func (e *Extractor) ExtractKeywords(text string) Set {
	keywords := make(Set)
	for _, token := range tokenRe.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if len(token) <= minKeywordLen {
			continue
		}
		if numericRe.MatchString(token) {
			continue
		}
		if e.stopWords.Has(token) {
			continue
		}
		keywords.Add(token)
	}
	return keywords
}
