package mock

import (
	"context"

	rfc "github.com/mjpitz/mcp-rfc"
)

var _ rfc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rfc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
