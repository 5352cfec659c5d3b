package rfc

import "strings"

// PlaceholderTitle returns the title used when none can be found in the source.
func PlaceholderTitle(number string) string {
	return "RFC " + number
}

// Normalize returns a copy of doc that satisfies the document invariants:
// number, source URL and format come from the caller; metadata strings are
// trimmed and the title falls back to PlaceholderTitle; authors and sections
// are never nil; untitled sections and subsections are discarded and an
// empty subsection list is collapsed to nil.
func Normalize(number, sourceURL string, format Format, doc Document) *Document {
	m := doc.Metadata
	out := &Document{
		Metadata: Metadata{
			Number:    number,
			Title:     strings.TrimSpace(m.Title),
			Authors:   make([]string, 0, len(m.Authors)),
			Date:      strings.TrimSpace(m.Date),
			Status:    strings.TrimSpace(m.Status),
			Abstract:  strings.TrimSpace(m.Abstract),
			SourceURL: sourceURL,
		},
		Sections: make([]Section, 0, len(doc.Sections)),
		FullText: doc.FullText,
		Format:   format,
	}
	if out.Metadata.Title == "" {
		out.Metadata.Title = PlaceholderTitle(number)
	}

	for _, a := range m.Authors {
		if a = strings.TrimSpace(a); a != "" {
			out.Metadata.Authors = append(out.Metadata.Authors, a)
		}
	}

	for _, s := range doc.Sections {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			continue
		}
		section := Section{Title: title, Content: s.Content}
		for _, sub := range s.Subsections {
			subTitle := strings.TrimSpace(sub.Title)
			if subTitle == "" {
				continue
			}
			section.Subsections = append(section.Subsections, Subsection{Title: subTitle, Content: sub.Content})
		}
		out.Sections = append(out.Sections, section)
	}

	return out
}
