package mock

import (
	"context"

	rfc "github.com/mjpitz/mcp-rfc"
)

var _ rfc.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of rfc.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, number string) (*rfc.Document, error)
}

func (r *Resolver) Resolve(ctx context.Context, number string) (*rfc.Document, error) {
	return r.ResolveFn(ctx, number)
}
