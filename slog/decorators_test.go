package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	rfc "github.com/mjpitz/mcp-rfc"
	"github.com/mjpitz/mcp-rfc/mock"
	rfcslog "github.com/mjpitz/mcp-rfc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textParser(parseFn func(number, sourceURL, content string) (*rfc.Document, error)) *mock.Parser {
	return &mock.Parser{
		ParseFn:  parseFn,
		FormatFn: func() rfc.Format { return rfc.FormatText },
	}
}

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs format and section count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := textParser(func(number, sourceURL, content string) (*rfc.Document, error) {
			return &rfc.Document{Sections: []rfc.Section{{Title: "Introduction"}, {Title: "Terminology"}}}, nil
		})

		parser := rfcslog.NewLoggingParser(inner, logger)
		doc, err := parser.Parse("2616", "https://example.com/rfc2616.txt", "text")

		require.NoError(t, err)
		assert.Len(t, doc.Sections, 2)
		assert.Equal(t, rfc.FormatText, parser.Format())
		output := buf.String()
		assert.Contains(t, output, "msg=parse")
		assert.Contains(t, output, "number=2616")
		assert.Contains(t, output, "format=text")
		assert.Contains(t, output, "sections=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := textParser(func(number, sourceURL, content string) (*rfc.Document, error) {
			return nil, errors.New("empty input")
		})

		_, err := rfcslog.NewLoggingParser(inner, logger).Parse("1", "u", "")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sections=0")
		assert.Contains(t, output, "err=\"empty input\"")
	})
}

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs winning format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				return &rfc.Document{Format: rfc.FormatHTML}, nil
			},
		}

		_, err := rfcslog.NewLoggingResolver(inner, logger).Resolve(context.Background(), "9110")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=resolve")
		assert.Contains(t, output, "number=9110")
		assert.Contains(t, output, "format=html")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs retrieval failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				return nil, &rfc.RetrievalError{Number: number, Format: rfc.FormatText, Err: errors.New("down")}
			},
		}

		_, err := rfcslog.NewLoggingResolver(inner, logger).Resolve(context.Background(), "9110")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "retrieval failed")
	})
}

func TestLoggingDocumentCache(t *testing.T) {
	t.Parallel()

	t.Run("logs miss without error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentCache{
			FindDocumentFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				return nil, rfc.Errorf(rfc.ENOTFOUND, "not cached")
			},
		}

		_, err := rfcslog.NewLoggingDocumentCache(inner, logger).FindDocument(context.Background(), "1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "cache lookup")
		assert.Contains(t, output, "hit=false")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs unexpected lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentCache{
			FindDocumentFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				return nil, errors.New("database is locked")
			},
		}

		_, _ = rfcslog.NewLoggingDocumentCache(inner, logger).FindDocument(context.Background(), "1")

		assert.Contains(t, buf.String(), "err=\"database is locked\"")
	})

	t.Run("logs store", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentCache{
			CreateDocumentFn: func(ctx context.Context, doc *rfc.Document) (*rfc.Document, error) {
				return doc, nil
			},
		}
		doc := &rfc.Document{Metadata: rfc.Metadata{Number: "7"}, Format: rfc.FormatText}

		stored, err := rfcslog.NewLoggingDocumentCache(inner, logger).CreateDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Same(t, doc, stored)
		output := buf.String()
		assert.Contains(t, output, "cache store")
		assert.Contains(t, output, "number=7")
		assert.Contains(t, output, "format=text")
	})
}
