package mock

import (
	"context"

	rfc "github.com/mjpitz/mcp-rfc"
)

var _ rfc.DocumentIndex = (*DocumentIndex)(nil)

// DocumentIndex is a mock implementation of rfc.DocumentIndex.
type DocumentIndex struct {
	FindDocumentsFn  func(ctx context.Context, filter rfc.CachedDocumentFilter) ([]*rfc.CachedDocument, error)
	DeleteDocumentFn func(ctx context.Context, number string) error
}

func (i *DocumentIndex) FindDocuments(ctx context.Context, filter rfc.CachedDocumentFilter) ([]*rfc.CachedDocument, error) {
	return i.FindDocumentsFn(ctx, filter)
}

func (i *DocumentIndex) DeleteDocument(ctx context.Context, number string) error {
	return i.DeleteDocumentFn(ctx, number)
}
