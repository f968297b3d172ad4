// Package skills recognizes technical and soft skills and significant
// keywords in free text. Matching is driven by a declarative catalog of
// per-category skill entries compiled once at construction time.
package skills

import (
	"regexp"
	"strings"
	"unicode"
)

// Entry declares one recognizable skill: a canonical lower-cased token
// and the surface forms that map to it.
type Entry struct {
	Canonical string
	Synonyms  []string
}

// Group is a named category of skill entries.
type Group struct {
	Name    string
	Entries []Entry
}

// Catalog is the full ordered set of skill groups with compiled
// matchers. A skill matching multiple groups is still counted once; the
// extracted result has set semantics.
type Catalog struct {
	groups   []Group
	matchers []skillMatcher
}

type skillMatcher struct {
	canonical string
	re        *regexp.Regexp
}

// skill is shorthand for an Entry whose canonical form is its only
// surface form.
func skill(canonical string, synonyms ...string) Entry {
	return Entry{Canonical: canonical, Synonyms: append([]string{canonical}, synonyms...)}
}

// DefaultCatalog returns the built-in skill catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Group{
		{Name: "languages", Entries: []Entry{
			skill("javascript", "js"),
			skill("typescript", "ts"),
			skill("python"),
			skill("java"),
			skill("go", "golang"),
			skill("c++"),
			skill("c#"),
			skill("ruby"),
			skill("php"),
			skill("swift"),
			skill("kotlin"),
			skill("rust"),
			skill("scala"),
		}},
		{Name: "frameworks", Entries: []Entry{
			skill("react", "react.js", "reactjs"),
			skill("angular", "angularjs"),
			skill("vue", "vue.js", "vuejs"),
			skill("node.js", "nodejs", "node"),
			skill("express"),
			skill("django"),
			skill("flask"),
			skill("spring"),
			skill("rails", "ruby on rails"),
			skill(".net", "dotnet"),
			skill("laravel"),
			skill("next.js", "nextjs"),
		}},
		{Name: "cloud", Entries: []Entry{
			skill("aws", "amazon web services"),
			skill("azure"),
			skill("gcp", "google cloud"),
			skill("docker"),
			skill("kubernetes", "k8s"),
			skill("terraform"),
			skill("jenkins"),
			skill("ci/cd", "cicd"),
			skill("git"),
			skill("linux"),
		}},
		{Name: "datastores", Entries: []Entry{
			skill("sql"),
			skill("mysql"),
			skill("postgresql", "postgres"),
			skill("mongodb", "mongo"),
			skill("redis"),
			skill("elasticsearch"),
			skill("oracle"),
			skill("dynamodb"),
			skill("kafka"),
		}},
		{Name: "markup", Entries: []Entry{
			skill("html", "html5"),
			skill("css", "css3"),
			skill("sass", "scss"),
			skill("tailwind", "tailwindcss"),
			skill("bootstrap"),
			skill("graphql"),
			skill("rest", "restful"),
		}},
		{Name: "soft", Entries: []Entry{
			skill("leadership"),
			skill("communication"),
			skill("teamwork", "team player"),
			skill("problem solving", "problem-solving"),
			skill("collaboration"),
			skill("mentoring", "mentorship"),
			skill("time management"),
			skill("adaptability"),
		}},
		{Name: "methodology", Entries: []Entry{
			skill("agile"),
			skill("scrum"),
			skill("kanban"),
			skill("tdd", "test-driven development"),
			skill("devops"),
			skill("microservices"),
		}},
		{Name: "business", Entries: []Entry{
			skill("project management"),
			skill("product management"),
			skill("stakeholder management"),
			skill("data analysis"),
			skill("reporting"),
			skill("budgeting"),
			skill("strategy"),
		}},
	})
}

// NewCatalog compiles the group entries into word-boundary matchers.
func NewCatalog(groups []Group) *Catalog {
	c := &Catalog{groups: groups}
	for _, group := range groups {
		for _, entry := range group.Entries {
			c.matchers = append(c.matchers, skillMatcher{
				canonical: entry.Canonical,
				re:        compileSynonyms(entry.Synonyms),
			})
		}
	}
	return c
}

// compileSynonyms builds a case-insensitive alternation over the
// surface forms. Word-boundary anchors are applied only where the
// synonym starts or ends with a word character, so tokens like "c++"
// and ".net" still match.
func compileSynonyms(synonyms []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(synonyms))
	for _, synonym := range synonyms {
		escaped := regexp.QuoteMeta(synonym)
		runes := []rune(synonym)
		if isWordRune(runes[0]) {
			escaped = `\b` + escaped
		}
		if isWordRune(runes[len(runes)-1]) {
			escaped += `\b`
		}
		alternatives = append(alternatives, escaped)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
