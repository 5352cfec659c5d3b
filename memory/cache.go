// Package memory provides an in-process rfc.DocumentCache.
package memory

import (
	"context"
	"sync"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure DocumentCache implements rfc.DocumentCache at compile time.
var _ rfc.DocumentCache = (*DocumentCache)(nil)

// DocumentCache keeps documents in a map guarded by a read/write mutex.
// Stored documents are shared with callers and must not be modified.
type DocumentCache struct {
	mu   sync.RWMutex
	docs map[string]*rfc.Document
}

// NewDocumentCache creates an empty DocumentCache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{docs: make(map[string]*rfc.Document)}
}

// FindDocument returns the cached document for number.
func (c *DocumentCache) FindDocument(_ context.Context, number string) (*rfc.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[number]
	if !ok {
		return nil, rfc.Errorf(rfc.ENOTFOUND, "rfc %s not cached", number)
	}
	return doc, nil
}

// CreateDocument stores doc unless its number is already cached and
// returns whichever document ends up stored.
func (c *DocumentCache) CreateDocument(_ context.Context, doc *rfc.Document) (*rfc.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.docs[doc.Metadata.Number]; ok {
		return existing, nil
	}
	c.docs[doc.Metadata.Number] = doc
	return doc, nil
}

// Len returns the number of cached documents.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
