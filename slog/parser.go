package slog

import (
	"log/slog"
	"time"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Ensure LoggingParser implements rfc.Parser.
var _ rfc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   rfc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next rfc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs how many sections it found.
func (p *LoggingParser) Parse(number, sourceURL, content string) (doc *rfc.Document, err error) {
	defer func(begin time.Time) {
		sections := 0
		if doc != nil {
			sections = len(doc.Sections)
		}
		p.logger.Info("parse",
			"number", number,
			"format", p.next.Format(),
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(number, sourceURL, content)
}

// Format delegates to the wrapped parser.
func (p *LoggingParser) Format() rfc.Format {
	return p.next.Format()
}
