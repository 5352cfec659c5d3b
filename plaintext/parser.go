// Package plaintext parses RFCs published as plain text into rfc.Document
// values using line patterns and labeled fields.
package plaintext

import (
	"errors"
	"regexp"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Parser implements rfc.Parser at compile time.
var _ rfc.Parser = (*Parser)(nil)

// sectionRe matches numbered section headings such as "1. Introduction",
// "3.2. Framing" or "3.2 Framing" starting in the first column. At least
// one dot is required, so a line opening with a bare number ("1999 was")
// is body text.
var sectionRe = regexp.MustCompile(`^(?:\d+\.)+\d*[ \t]+(\S.*)$`)

// Parser extracts metadata and sections from RFC plain text.
type Parser struct {
	Title    Field
	Authors  Field
	Date     Field
	Status   Field
	Abstract Field
}

// NewParser creates a Parser with the standard RFC field labels.
func NewParser() *Parser {
	return &Parser{
		Title:    Field{Label: Label("Title", "Internet-Draft"), Terminator: BlankLine},
		Authors:  Field{Label: Label("Author", "Authors"), Terminator: BlankLine},
		Date:     Field{Label: Label("Date", "Published"), Terminator: LineBreak},
		Status:   Field{Label: Label("Status of this Memo", "Category"), Terminator: BlankLine},
		Abstract: Field{Label: Heading("Abstract"), Terminator: BlankLine},
	}
}

// Format returns rfc.FormatText.
func (p *Parser) Format() rfc.Format {
	return rfc.FormatText
}

// Parse builds a document from plain text. FullText is the unmodified
// content. Returns a *rfc.ParseError only for blank content.
func (p *Parser) Parse(number, sourceURL, content string) (*rfc.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &rfc.ParseError{Format: rfc.FormatText, Err: errors.New("empty text input")}
	}

	return rfc.Normalize(number, sourceURL, rfc.FormatText, rfc.Document{
		Metadata: rfc.Metadata{
			Title:    p.Title.Value(content),
			Authors:  p.Authors.Lines(content),
			Date:     p.Date.Value(content),
			Status:   p.Status.Value(content),
			Abstract: p.Abstract.Value(content),
		},
		Sections: Sections(content),
		FullText: content,
	}), nil
}

// Sections splits text into sections at numbered heading lines. Lines
// between headings, blank ones included, become the content of the
// preceding section. Text before the first heading is ignored, and a
// heading followed directly by another heading is dropped.
func Sections(text string) []rfc.Section {
	var sections []rfc.Section
	var title string
	var body []string

	flush := func() {
		if title != "" && len(body) > 0 {
			sections = append(sections, rfc.Section{
				Title:   title,
				Content: strings.Join(body, "\n"),
			})
		}
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			flush()
			title = strings.TrimSpace(m[1])
			body = nil
			continue
		}
		if title != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
