package mock

import rfc "github.com/mjpitz/mcp-rfc"

var _ rfc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of rfc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(doc *rfc.Document, r rfc.Renderer) (string, error)
}

func (w *DocumentWriter) WriteDocument(doc *rfc.Document, r rfc.Renderer) (string, error) {
	return w.WriteDocumentFn(doc, r)
}
