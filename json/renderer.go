// Package json renders documents as JSON.
package json

import (
	"encoding/json"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Renderer implements rfc.Renderer at compile time.
var _ rfc.Renderer = (*Renderer)(nil)

// Renderer renders documents using their JSON field tags.
type Renderer struct {
	// Indent is prepended per nesting level. Empty writes compact JSON.
	Indent string
}

// NewRenderer creates a Renderer that indents with two spaces.
func NewRenderer() *Renderer {
	return &Renderer{Indent: "  "}
}

// Extension returns "json".
func (r *Renderer) Extension() string {
	return "json"
}

// Render returns doc as JSON followed by a newline.
func (r *Renderer) Render(doc *rfc.Document) ([]byte, error) {
	var out []byte
	var err error
	if r.Indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", r.Indent)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
