// Package fs writes rendered documents to the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
)

// FileName returns the name a document is written under,
// e.g. rfc2616.md for RFC 2616 rendered as Markdown.
func FileName(number, ext string) string {
	return "rfc" + number + "." + strings.TrimPrefix(ext, ".")
}

// Ensure Writer implements rfc.DocumentWriter at compile time.
var _ rfc.DocumentWriter = (*Writer)(nil)

// Writer writes rendered documents into a directory. Each file is written
// to a temporary file first and renamed into place, so readers never see
// a partial document.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument renders doc with r and writes the result, returning the
// path of the written file.
func (w *Writer) WriteDocument(doc *rfc.Document, r rfc.Renderer) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	content, err := r.Render(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, FileName(doc.Metadata.Number, r.Extension()))

	tmp, err := os.CreateTemp(w.baseDir, ".rfc-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
