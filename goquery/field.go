package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Field locates a metadata value in a DOM subtree.
// Selectors are tried in order; the first one matching a node with
// non-empty text wins. Absence is not an error: lookups return empty values.
type Field []string

// First returns the text of the first non-empty node matched by the field.
func (f Field) First(sel *goquery.Selection) string {
	for _, selector := range f {
		var value string
		sel.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			value = nodeText(s)
			return value == ""
		})
		if value != "" {
			return value
		}
	}
	return ""
}

// All returns the text of every non-empty node matched by the first
// selector that matches anything, in document order.
func (f Field) All(sel *goquery.Selection) []string {
	for _, selector := range f {
		var values []string
		sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if v := nodeText(s); v != "" {
				values = append(values, v)
			}
		})
		if len(values) > 0 {
			return values
		}
	}
	return nil
}

// Ranks is an ordered list of heading matchers used to find the title of
// a structural element. Earlier entries take precedence.
type Ranks []goquery.Matcher

// NewRanks compiles heading selectors in order of precedence.
func NewRanks(selectors ...string) (Ranks, error) {
	ranks := make(Ranks, 0, len(selectors))
	for _, s := range selectors {
		m, err := cascadia.Compile(s)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, m)
	}
	return ranks, nil
}

// MustRanks is like NewRanks but panics if a selector cannot be compiled.
func MustRanks(selectors ...string) Ranks {
	ranks, err := NewRanks(selectors...)
	if err != nil {
		panic(err)
	}
	return ranks
}

// Heading returns the text of the first non-empty heading inside sel,
// trying each rank in turn. Returns an empty string if none is found.
func (r Ranks) Heading(sel *goquery.Selection) string {
	for _, m := range r {
		var title string
		sel.FindMatcher(m).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			title = nodeText(s)
			return title == ""
		})
		if title != "" {
			return title
		}
	}
	return ""
}

// nodeText returns the text of the first node in s with runs of
// whitespace collapsed to single spaces.
func nodeText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.First().Text()), " ")
}
