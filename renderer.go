package rfc

// Renderer serializes a document for output.
type Renderer interface {
	// Render returns the serialized document.
	Render(doc *Document) ([]byte, error)

	// Extension returns the file extension for rendered output, without a dot.
	Extension() string
}

// DocumentWriter persists rendered documents.
type DocumentWriter interface {
	WriteDocument(doc *Document, r Renderer) (path string, err error)
}
