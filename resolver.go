package rfc

import (
	"context"
	"fmt"
)

// Resolver retrieves documents by RFC number.
type Resolver interface {
	// Resolve returns the document for number.
	// Returns EINVALID for a blank number and a *RetrievalError when no
	// format variant could be fetched and parsed.
	Resolve(ctx context.Context, number string) (*Document, error)
}

// Source maps a document number to the URL of each format variant.
// Templates contain a single %s verb for the number.
type Source struct {
	HTMLURL string
	TextURL string
}

// DefaultSource points at the RFC Editor.
var DefaultSource = Source{
	HTMLURL: "https://www.rfc-editor.org/rfc/rfc%s.html",
	TextURL: "https://www.rfc-editor.org/rfc/rfc%s.txt",
}

// URL returns the URL of the given format variant of number.
// Returns an empty string for an unknown format or unset template.
func (s Source) URL(format Format, number string) string {
	var tmpl string
	switch format {
	case FormatHTML:
		tmpl = s.HTMLURL
	case FormatText:
		tmpl = s.TextURL
	}
	if tmpl == "" {
		return ""
	}
	return fmt.Sprintf(tmpl, number)
}
