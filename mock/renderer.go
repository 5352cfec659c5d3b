package mock

import rfc "github.com/mjpitz/mcp-rfc"

var _ rfc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of rfc.Renderer.
type Renderer struct {
	RenderFn    func(doc *rfc.Document) ([]byte, error)
	ExtensionFn func() string
}

func (r *Renderer) Render(doc *rfc.Document) ([]byte, error) {
	return r.RenderFn(doc)
}

func (r *Renderer) Extension() string {
	return r.ExtensionFn()
}
