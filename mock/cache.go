package mock

import (
	"context"

	rfc "github.com/mjpitz/mcp-rfc"
)

var _ rfc.DocumentCache = (*DocumentCache)(nil)

// DocumentCache is a mock implementation of rfc.DocumentCache.
type DocumentCache struct {
	FindDocumentFn   func(ctx context.Context, number string) (*rfc.Document, error)
	CreateDocumentFn func(ctx context.Context, doc *rfc.Document) (*rfc.Document, error)
}

func (c *DocumentCache) FindDocument(ctx context.Context, number string) (*rfc.Document, error) {
	return c.FindDocumentFn(ctx, number)
}

func (c *DocumentCache) CreateDocument(ctx context.Context, doc *rfc.Document) (*rfc.Document, error) {
	return c.CreateDocumentFn(ctx, doc)
}
