// Package search holds the pure parts of catalog search: term extraction,
// per-item relevance scoring and result ranking. Nothing here touches storage.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTermLength is the shortest token kept as a term; shorter tokens are noise.
const minTermLength = 3

var captionStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "is": {}, "in": {}, "on": {}, "at": {},
	"of": {}, "for": {}, "with": {}, "this": {}, "that": {}, "there": {}, "here": {},
	"it": {}, "are": {}, "be": {}, "to": {}, "from": {}, "by": {},
}

// TermSet is an ordered set of lowercase search terms.
type TermSet []string

func (t TermSet) Empty() bool {
	return len(t) == 0
}

// ExtractQueryTerms turns a free-text query into terms. Tokens of two runes or
// fewer are dropped; if that leaves nothing, the whole lowercased query becomes
// the single term so short queries like "TV" still match.
func ExtractQueryTerms(raw string) TermSet {
	lowered := strings.ToLower(raw)
	terms := newTermBuilder()
	for _, token := range strings.Fields(lowered) {
		if utf8.RuneCountInString(token) >= minTermLength {
			terms.add(token)
		}
	}

	if len(terms.out) == 0 {
		if trimmed := strings.TrimSpace(lowered); trimmed != "" {
			return TermSet{trimmed}
		}
	}

	return terms.out
}

// ExtractCaptionTerms turns an image caption into terms: punctuation is
// stripped, then short tokens and stop-words are removed.
func ExtractCaptionTerms(description string) TermSet {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}

		return -1
	}, strings.ToLower(description))

	terms := newTermBuilder()
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) < minTermLength {
			continue
		}
		if _, stop := captionStopWords[token]; stop {
			continue
		}
		terms.add(token)
	}

	return terms.out
}

type termBuilder struct {
	seen map[string]struct{}
	out  TermSet
}

func newTermBuilder() *termBuilder {
	return &termBuilder{seen: make(map[string]struct{})}
}

func (b *termBuilder) add(term string) {
	if _, ok := b.seen[term]; ok {
		return
	}
	b.seen[term] = struct{}{}
	b.out = append(b.out, term)
}
