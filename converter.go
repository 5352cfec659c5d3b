package rfc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a section's content,
	// into Markdown.
	Convert(html string) (string, error)
}
