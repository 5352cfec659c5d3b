// Package goquery parses RFCs published as HTML into rfc.Document values
// using CSS selectors over the parsed DOM.
package goquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	rfc "github.com/mjpitz/mcp-rfc"
	"golang.org/x/net/html"
)

// Ensure Parser implements rfc.Parser at compile time.
var _ rfc.Parser = (*Parser)(nil)

// Default heading precedence for sections and their subsections.
var (
	SectionRanks    = MustRanks("h2", "h3", "h4")
	SubsectionRanks = MustRanks("h3", "h4", "h5")
)

// Parser extracts metadata and the section tree from RFC HTML.
// The zero value is not usable; create one with NewParser and adjust
// fields before the first call to Parse.
type Parser struct {
	Title    Field
	Authors  Field
	Date     Field
	Status   Field
	Abstract Field

	// Sections matches structural elements at any depth.
	Sections goquery.Matcher

	SectionRanks    Ranks
	SubsectionRanks Ranks
}

// NewParser creates a Parser configured for RFC Editor HTML
// (xml2rfc v3 output and the older htmlized pages).
func NewParser() *Parser {
	return &Parser{
		Title:           Field{"h1"},
		Authors:         Field{".author-name"},
		Date:            Field{".pubdate", "time.published", "dd.published"},
		Status:          Field{".status", "dd.category"},
		Abstract:        Field{".abstract", "#section-abstract > p", "section#abstract > p"},
		Sections:        cascadia.MustCompile("section"),
		SectionRanks:    SectionRanks,
		SubsectionRanks: SubsectionRanks,
	}
}

// Format returns rfc.FormatHTML.
func (p *Parser) Format() rfc.Format {
	return rfc.FormatHTML
}

// Parse builds a document from HTML content. Missing metadata is left
// empty. A *rfc.ParseError is returned for blank input, a body without
// text, or any failure while navigating the tree.
func (p *Parser) Parse(number, sourceURL, content string) (doc *rfc.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, parseError(fmt.Errorf("%v", r))
		}
	}()

	if strings.TrimSpace(content) == "" {
		return nil, parseError(errors.New("empty HTML input"))
	}

	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, parseError(err)
	}
	d := goquery.NewDocumentFromNode(root)

	fullText := strings.TrimSpace(textContent(d.Find("body").Nodes))
	if fullText == "" {
		return nil, parseError(errors.New("document body has no text"))
	}

	sections, err := p.sections(d.Selection)
	if err != nil {
		return nil, parseError(err)
	}

	return rfc.Normalize(number, sourceURL, rfc.FormatHTML, rfc.Document{
		Metadata: rfc.Metadata{
			Title:    p.Title.First(d.Selection),
			Authors:  p.Authors.All(d.Selection),
			Date:     p.Date.First(d.Selection),
			Status:   p.Status.First(d.Selection),
			Abstract: strings.Join(p.Abstract.All(d.Selection), "\n\n"),
		},
		Sections: sections,
		FullText: fullText,
	}), nil
}

// sections returns every structural element that has a heading, in
// document order. Nested structural elements are reported both as
// sections of their own and as subsections of each enclosing section.
func (p *Parser) sections(root *goquery.Selection) ([]rfc.Section, error) {
	var sections []rfc.Section
	var err error

	root.FindMatcher(p.Sections).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := p.SectionRanks.Heading(s)
		if title == "" {
			return true
		}

		section := rfc.Section{Title: title}
		if section.Content, err = s.Html(); err != nil {
			return false
		}

		s.FindMatcher(p.Sections).EachWithBreak(func(_ int, sub *goquery.Selection) bool {
			subTitle := p.SubsectionRanks.Heading(sub)
			if subTitle == "" {
				return true
			}
			var content string
			if content, err = sub.Html(); err != nil {
				return false
			}
			section.Subsections = append(section.Subsections, rfc.Subsection{Title: subTitle, Content: content})
			return true
		})
		if err != nil {
			return false
		}

		sections = append(sections, section)
		return true
	})

	return sections, err
}

// textContent concatenates the text nodes below nodes, skipping scripts
// and styles.
func textContent(nodes []*html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return buf.String()
}

func parseError(err error) *rfc.ParseError {
	return &rfc.ParseError{Format: rfc.FormatHTML, Err: err}
}
