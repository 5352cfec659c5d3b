// Package etree renders documents as XML using github.com/beevik/etree.
package etree

import (
	"github.com/beevik/etree"
	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Renderer implements rfc.Renderer at compile time.
var _ rfc.Renderer = (*Renderer)(nil)

// Renderer renders documents as XML. The layout loosely follows xml2rfc:
// metadata under <front>, sections under <middle> and the full text
// under <back>.
type Renderer struct {
	// Indent is the number of spaces used to indent nested elements.
	// Zero writes the document on a single line.
	Indent int

	// OmitFullText drops the <back> element.
	OmitFullText bool
}

// NewRenderer creates a Renderer with two-space indentation.
func NewRenderer() *Renderer {
	return &Renderer{Indent: 2}
}

// Extension returns "xml".
func (r *Renderer) Extension() string {
	return "xml"
}

// Render returns doc as an XML document.
func (r *Renderer) Render(doc *rfc.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("rfc")
	root.CreateAttr("number", doc.Metadata.Number)
	root.CreateAttr("format", string(doc.Format))
	root.CreateAttr("source", doc.Metadata.SourceURL)

	front := root.CreateElement("front")
	front.CreateElement("title").SetText(doc.Metadata.Title)
	for _, a := range doc.Metadata.Authors {
		front.CreateElement("author").CreateAttr("fullname", a)
	}
	setOptional(front, "date", doc.Metadata.Date)
	setOptional(front, "status", doc.Metadata.Status)
	setOptional(front, "abstract", doc.Metadata.Abstract)

	middle := root.CreateElement("middle")
	for _, s := range doc.Sections {
		el := middle.CreateElement("section")
		el.CreateAttr("title", s.Title)
		el.CreateElement("content").SetText(s.Content)
		for _, sub := range s.Subsections {
			subEl := el.CreateElement("section")
			subEl.CreateAttr("title", sub.Title)
			subEl.CreateElement("content").SetText(sub.Content)
		}
	}

	if !r.OmitFullText {
		root.CreateElement("back").CreateElement("fulltext").SetText(doc.FullText)
	}

	if r.Indent > 0 {
		x.Indent(r.Indent)
	}
	return x.WriteToBytes()
}

func setOptional(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}
