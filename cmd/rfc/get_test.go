package main_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	rfc "github.com/mjpitz/mcp-rfc"
	main "github.com/mjpitz/mcp-rfc/cmd/rfc"
	"github.com/mjpitz/mcp-rfc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberRenderer() *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(doc *rfc.Document) ([]byte, error) {
			return []byte(doc.Metadata.Number + "\n"), nil
		},
		ExtensionFn: func() string { return "txt" },
	}
}

func docFor(number string) *rfc.Document {
	return &rfc.Document{
		Metadata: rfc.Metadata{Number: number, Title: "RFC " + number, SourceURL: "https://example.com/rfc" + number},
		Format:   rfc.FormatHTML,
	}
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes documents in request order", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				// Earlier numbers finish last.
				if number == "1" {
					time.Sleep(20 * time.Millisecond)
				}
				return docFor(number), nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Resolver:  resolver,
			Renderers: map[string]rfc.Renderer{"json": numberRenderer()},
		}

		cmd := &main.GetCmd{Numbers: []string{"RFC1", "0002", "rfc 3"}, Format: "json", Concurrency: 3}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "1\n2\n3\n", stdout.String())
	})

	t.Run("limits concurrency", func(t *testing.T) {
		t.Parallel()

		var active, peak int32
		resolver := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				n := atomic.AddInt32(&active, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&active, -1)
				return docFor(number), nil
			},
		}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Resolver:  resolver,
			Renderers: map[string]rfc.Renderer{"json": numberRenderer()},
		}

		cmd := &main.GetCmd{Numbers: []string{"1", "2", "3", "4", "5", "6"}, Format: "json", Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	})

	t.Run("continues past failed numbers", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				if number == "2" {
					return nil, &rfc.RetrievalError{Number: number, Format: rfc.FormatText, Err: errors.New("down")}
				}
				return docFor(number), nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Resolver:  resolver,
			Renderers: map[string]rfc.Renderer{"json": numberRenderer()},
		}

		cmd := &main.GetCmd{Numbers: []string{"1", "2", "3"}, Format: "json", Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 3")
		assert.Equal(t, "1\n3\n", stdout.String())
		assert.Contains(t, stderr.String(), "rfc 2: retrieval failed (last tried text): down")
	})

	t.Run("rejects invalid numbers before retrieving", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				t.Fatal("unexpected resolve")
				return nil, nil
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Resolver:  resolver,
			Renderers: map[string]rfc.Renderer{"json": numberRenderer()},
		}

		err := (&main.GetCmd{Numbers: []string{"1", "draft-foo"}, Format: "json"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, rfc.EINVALID, rfc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "draft-foo")
	})

	t.Run("uses document writer when configured", func(t *testing.T) {
		t.Parallel()

		var written []string
		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(doc *rfc.Document, r rfc.Renderer) (string, error) {
				written = append(written, doc.Metadata.Number)
				return "/out/rfc" + doc.Metadata.Number + "." + r.Extension(), nil
			},
		}
		resolver := &mock.Resolver{
			ResolveFn: func(ctx context.Context, number string) (*rfc.Document, error) {
				return docFor(number), nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Resolver:  resolver,
			Writer:    writer,
			Renderers: map[string]rfc.Renderer{"json": numberRenderer()},
		}

		require.NoError(t, (&main.GetCmd{Numbers: []string{"7"}, Format: "json"}).Run(deps))

		assert.Equal(t, []string{"7"}, written)
		assert.Contains(t, stdout.String(), "Wrote /out/rfc7.txt (html, 0 sections)")
	})
}
