package htmltomarkdown

import (
	"fmt"
	"strconv"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Renderer implements rfc.Renderer at compile time.
var _ rfc.Renderer = (*Renderer)(nil)

// Renderer renders documents as Markdown with YAML front matter.
// HTML section content is converted; text section content is fenced
// verbatim so the original layout survives.
type Renderer struct {
	conv rfc.Converter
}

// NewRenderer creates a Renderer that converts HTML content with conv.
func NewRenderer(conv rfc.Converter) *Renderer {
	return &Renderer{conv: conv}
}

// Extension returns "md".
func (r *Renderer) Extension() string {
	return "md"
}

// Render returns doc as a Markdown document.
func (r *Renderer) Render(doc *rfc.Document) ([]byte, error) {
	var b strings.Builder
	writeFrontMatter(&b, doc)

	b.WriteString("# ")
	b.WriteString(doc.Metadata.Title)
	b.WriteString("\n")

	if doc.Metadata.Abstract != "" {
		b.WriteString("\n## Abstract\n\n")
		b.WriteString(doc.Metadata.Abstract)
		b.WriteString("\n")
	}

	var err error
	switch doc.Format {
	case rfc.FormatHTML:
		err = r.writeHTMLSections(&b, doc.Sections)
	default:
		writeTextSections(&b, doc.Sections)
	}
	if err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

// writeHTMLSections converts each outermost section. Converted markup
// already carries its own headings and nested sections, so sections that
// were reported as a subsection of an earlier one are skipped.
func (r *Renderer) writeHTMLSections(b *strings.Builder, sections []rfc.Section) error {
	nested := make(map[string]bool)
	for _, s := range sections {
		if nested[s.Content] {
			continue
		}
		for _, sub := range s.Subsections {
			nested[sub.Content] = true
		}

		if strings.TrimSpace(s.Content) == "" {
			fmt.Fprintf(b, "\n## %s\n", s.Title)
			continue
		}
		md, err := r.conv.Convert(s.Content)
		if err != nil {
			return fmt.Errorf("convert section %q: %w", s.Title, err)
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(md))
		b.WriteString("\n")
	}
	return nil
}

func writeTextSections(b *strings.Builder, sections []rfc.Section) {
	for _, s := range sections {
		fmt.Fprintf(b, "\n## %s\n", s.Title)
		body := strings.Trim(s.Content, "\n")
		if strings.TrimSpace(body) == "" {
			continue
		}
		b.WriteString("\n```text\n")
		b.WriteString(body)
		b.WriteString("\n```\n")
	}
}

func writeFrontMatter(b *strings.Builder, doc *rfc.Document) {
	m := doc.Metadata
	b.WriteString("---\n")
	b.WriteString("rfc: " + strconv.Quote(m.Number) + "\n")
	b.WriteString("title: " + strconv.Quote(m.Title) + "\n")
	if len(m.Authors) > 0 {
		b.WriteString("authors:\n")
		for _, a := range m.Authors {
			b.WriteString("  - " + strconv.Quote(a) + "\n")
		}
	}
	if m.Date != "" {
		b.WriteString("date: " + strconv.Quote(m.Date) + "\n")
	}
	if m.Status != "" {
		b.WriteString("status: " + strconv.Quote(m.Status) + "\n")
	}
	b.WriteString("source: " + strconv.Quote(m.SourceURL) + "\n")
	b.WriteString("format: " + strconv.Quote(string(doc.Format)) + "\n")
	b.WriteString("---\n\n")
}
