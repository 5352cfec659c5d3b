package slog

import (
	"context"
	"log/slog"
	"time"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure LoggingResolver implements rfc.Resolver.
var _ rfc.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   rfc.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next rfc.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs which format won.
func (r *LoggingResolver) Resolve(ctx context.Context, number string) (doc *rfc.Document, err error) {
	defer func(begin time.Time) {
		var format rfc.Format
		if doc != nil {
			format = doc.Format
		}
		r.logger.Info("resolve",
			"number", number,
			"format", format,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, number)
}
