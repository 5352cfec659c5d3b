// Package htmltomarkdown converts RFC HTML to Markdown and renders
// documents as Markdown files.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Converter implements rfc.Converter at compile time.
var _ rfc.Converter = (*Converter)(nil)

// Selectors for xml2rfc navigation markup.
const (
	// DefaultDrop matches the paragraph anchors ("¶") xml2rfc appends to
	// every block.
	DefaultDrop = "a.pilcrow"

	// DefaultUnwrap matches in-page links whose text should be kept without
	// the link: heading self-references, section numbers and
	// cross-references to other sections of the same document.
	DefaultUnwrap = `a.selfRef, a.section-number, a.section-name, a.xref[href^="#"],` +
		` h1 a[href^="#"], h2 a[href^="#"], h3 a[href^="#"],` +
		` h4 a[href^="#"], h5 a[href^="#"], h6 a[href^="#"]`
)

// Converter converts RFC Editor HTML to Markdown. Navigation markup is
// stripped before conversion so headings come out as plain text and
// paragraphs carry no anchor links.
type Converter struct {
	// Drop removes matching elements with their content.
	Drop string
	// Unwrap replaces matching elements with their content.
	Unwrap string

	conv *converter.Converter
}

// NewConverter creates a Converter for xml2rfc output.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		Drop:   DefaultDrop,
		Unwrap: DefaultUnwrap,
		conv:   conv,
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", rfc.Errorf(rfc.EINVALID, "empty HTML input")
	}

	cleaned, err := c.clean(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// clean drops and unwraps navigation markup, returning the body markup.
func (c *Converter) clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	if c.Drop != "" {
		doc.Find(c.Drop).Remove()
	}
	if c.Unwrap != "" {
		doc.Find(c.Unwrap).Each(func(_ int, a *goquery.Selection) {
			if kids := a.Contents(); kids.Length() > 0 {
				kids.Unwrap()
				return
			}
			a.Remove()
		})
	}

	return doc.Find("body").Html()
}
