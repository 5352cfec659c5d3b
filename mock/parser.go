package mock

import rfc "github.com/mjpitz/mcp-rfc"

var _ rfc.Parser = (*Parser)(nil)

// Parser is a mock implementation of rfc.Parser.
type Parser struct {
	ParseFn  func(number, sourceURL, content string) (*rfc.Document, error)
	FormatFn func() rfc.Format
}

func (p *Parser) Parse(number, sourceURL, content string) (*rfc.Document, error) {
	return p.ParseFn(number, sourceURL, content)
}

func (p *Parser) Format() rfc.Format {
	return p.FormatFn()
}
