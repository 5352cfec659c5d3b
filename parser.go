package rfc

// Parser turns fetched content into a Document.
// Missing optional fields never cause an error; they are left empty.
type Parser interface {
	// Parse builds a document for the given number from content that was
	// fetched from sourceURL. A *ParseError is returned when the content
	// cannot be navigated as a document of the parser's format.
	Parse(number, sourceURL, content string) (*Document, error)

	// Format returns the format this parser understands.
	Format() Format
}
