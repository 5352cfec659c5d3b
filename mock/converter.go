package mock

import rfc "github.com/mjpitz/mcp-rfc"

var _ rfc.Converter = (*Converter)(nil)

// Converter is a mock implementation of rfc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
