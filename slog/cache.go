package slog

import (
	"context"
	"log/slog"
	"time"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure LoggingDocumentCache implements rfc.DocumentCache.
var _ rfc.DocumentCache = (*LoggingDocumentCache)(nil)

// LoggingDocumentCache wraps a DocumentCache with debug logging.
type LoggingDocumentCache struct {
	next   rfc.DocumentCache
	logger *slog.Logger
}

// NewLoggingDocumentCache creates a new LoggingDocumentCache.
func NewLoggingDocumentCache(next rfc.DocumentCache, logger *slog.Logger) *LoggingDocumentCache {
	return &LoggingDocumentCache{next: next, logger: logger}
}

// FindDocument delegates to the wrapped cache and logs hits and misses.
func (c *LoggingDocumentCache) FindDocument(ctx context.Context, number string) (doc *rfc.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"number", number,
			"hit", err == nil,
			"duration", time.Since(begin),
		}
		if err != nil && rfc.ErrorCode(err) != rfc.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Info("cache lookup", attrs...)
	}(time.Now())
	return c.next.FindDocument(ctx, number)
}

// CreateDocument delegates to the wrapped cache and logs the store.
func (c *LoggingDocumentCache) CreateDocument(ctx context.Context, doc *rfc.Document) (stored *rfc.Document, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache store",
			"number", doc.Metadata.Number,
			"format", doc.Format,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CreateDocument(ctx, doc)
}
