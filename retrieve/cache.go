package retrieve

import (
	"context"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
	"golang.org/x/sync/singleflight"
)

// Ensure CachingResolver implements rfc.Resolver at compile time.
var _ rfc.Resolver = (*CachingResolver)(nil)

// CachingResolver looks documents up in a cache before resolving them and
// populates the cache afterwards. Concurrent requests for the same number
// share a single retrieval. Cache failures never fail a request.
type CachingResolver struct {
	next  rfc.Resolver
	cache rfc.DocumentCache
	group singleflight.Group
}

// NewCachingResolver creates a CachingResolver in front of next.
func NewCachingResolver(next rfc.Resolver, cache rfc.DocumentCache) *CachingResolver {
	return &CachingResolver{next: next, cache: cache}
}

// Resolve returns the cached document for number, resolving and storing
// it on a miss. When two writers race, the document stored first is
// returned to both.
func (r *CachingResolver) Resolve(ctx context.Context, number string) (*rfc.Document, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, rfc.Errorf(rfc.EINVALID, "rfc number required")
	}

	// The shared retrieval outlives any single caller; each caller stops
	// waiting when its own context is done.
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(number, func() (any, error) {
		if doc, err := r.cache.FindDocument(shared, number); err == nil {
			return doc, nil
		}

		doc, err := r.next.Resolve(shared, number)
		if err != nil {
			return nil, err
		}

		if stored, err := r.cache.CreateDocument(shared, doc); err == nil {
			return stored, nil
		}
		return doc, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*rfc.Document), nil
	}
}
