// Package retrieve resolves RFC numbers to documents by fetching and
// parsing each available format variant in order of preference.
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure Resolver implements rfc.Resolver at compile time.
var _ rfc.Resolver = (*Resolver)(nil)

// Resolver tries each parser's format in turn, fetching the variant's URL
// from Source and parsing it. Each variant is attempted exactly once; the
// first one that yields a document wins.
type Resolver struct {
	fetcher rfc.Fetcher
	source  rfc.Source
	parsers []rfc.Parser
}

// NewResolver creates a Resolver. Parsers are tried in the order given,
// normally HTML first and text second.
func NewResolver(fetcher rfc.Fetcher, source rfc.Source, parsers ...rfc.Parser) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		source:  source,
		parsers: parsers,
	}
}

// Resolve returns the document for number. When every variant fails, the
// returned *rfc.RetrievalError wraps the cause of the last attempt.
func (r *Resolver) Resolve(ctx context.Context, number string) (*rfc.Document, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, rfc.Errorf(rfc.EINVALID, "rfc number required")
	}
	if len(r.parsers) == 0 {
		return nil, rfc.Errorf(rfc.EINTERNAL, "no parsers configured")
	}

	var last rfc.Result
	for _, p := range r.parsers {
		last = r.Attempt(ctx, p, number)
		if last.OK() {
			return last.Document, nil
		}
	}

	return nil, &rfc.RetrievalError{
		Number: number,
		Format: last.Format,
		Err:    last.Err,
	}
}

// Attempt fetches the variant of number handled by p and parses it.
// Fetch failures are reported as *rfc.TransportError and everything that
// goes wrong while parsing, panics included, as *rfc.ParseError.
func (r *Resolver) Attempt(ctx context.Context, p rfc.Parser, number string) (res rfc.Result) {
	res.Format = p.Format()
	res.URL = r.source.URL(res.Format, number)
	if res.URL == "" {
		res.Err = rfc.Errorf(rfc.EINVALID, "no URL configured for %s format", res.Format)
		return res
	}

	body, err := r.fetcher.Fetch(ctx, res.URL)
	if err != nil {
		res.Err = &rfc.TransportError{URL: res.URL, Err: err}
		return res
	}

	defer func() {
		if v := recover(); v != nil {
			res.Document = nil
			res.Err = &rfc.ParseError{Format: res.Format, Err: fmt.Errorf("%v", v)}
		}
	}()

	doc, err := p.Parse(number, res.URL, body)
	if err != nil {
		var pe *rfc.ParseError
		if !errors.As(err, &pe) {
			err = &rfc.ParseError{Format: res.Format, Err: err}
		}
		res.Err = err
		return res
	}
	if doc == nil {
		res.Err = &rfc.ParseError{Format: res.Format, Err: errors.New("parser returned no document")}
		return res
	}

	res.Document = doc
	return res
}
