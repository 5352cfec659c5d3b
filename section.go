package rfc

import (
	"strconv"
	"strings"
	"unicode"
)

// OutlineEntry is a heading in a document's outline.
type OutlineEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline returns the section titles of a document in order, with
// subsections at level 2. Anchors are URL-safe and duplicates get numeric
// suffixes.
func (d *Document) Outline() []OutlineEntry {
	if len(d.Sections) == 0 {
		return nil
	}

	entries := make([]OutlineEntry, 0, len(d.Sections))
	anchorCounts := make(map[string]int)

	add := func(level int, title string) {
		baseAnchor := generateAnchor(title)

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		entries = append(entries, OutlineEntry{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	for _, s := range d.Sections {
		add(1, s.Title)
		for _, sub := range s.Subsections {
			add(2, sub.Title)
		}
	}

	return entries
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	return strings.TrimSuffix(result, "-")
}
