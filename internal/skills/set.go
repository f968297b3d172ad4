package skills

import "sort"

// Set is a set of lower-cased canonical tokens. Membership is boolean;
// there is no frequency weighting.
type Set map[string]struct{}

// NewSet builds a Set from the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the token is in the set.
func (s Set) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Add inserts a token.
func (s Set) Add(token string) {
	s[token] = struct{}{}
}

// Intersect returns the tokens present in both sets.
func (s Set) Intersect(other Set) Set {
	result := make(Set)
	for token := range s {
		if other.Has(token) {
			result.Add(token)
		}
	}
	return result
}

// Diff returns the tokens in s that are absent from other.
func (s Set) Diff(other Set) Set {
	result := make(Set)
	for token := range s {
		if !other.Has(token) {
			result.Add(token)
		}
	}
	return result
}

// Sorted returns the tokens in lexical order.
func (s Set) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
