package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	rfc "github.com/mjpitz/mcp-rfc"
)

// Compile-time interface verification.
var (
	_ rfc.DocumentCache = (*DocumentCache)(nil)
	_ rfc.DocumentIndex = (*DocumentCache)(nil)
)

// DocumentCache implements rfc.DocumentCache using SQLite.
// Documents are stored whole as JSON alongside a few indexed columns.
type DocumentCache struct {
	db *DB
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(db *DB) *DocumentCache {
	return &DocumentCache{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// FindDocument retrieves a cached document by number.
func (c *DocumentCache) FindDocument(ctx context.Context, number string) (*rfc.Document, error) {
	var body string
	err := c.db.QueryRowContext(ctx, `
		SELECT body
		FROM documents
		WHERE number = ?
	`, number).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, rfc.Errorf(rfc.ENOTFOUND, "rfc %s not cached", number)
	}
	if err != nil {
		return nil, err
	}

	var doc rfc.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rfc %s: %w", number, err)
	}
	return &doc, nil
}

// CreateDocument stores doc unless its number is already cached and
// returns the stored document.
func (c *DocumentCache) CreateDocument(ctx context.Context, doc *rfc.Document) (*rfc.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rfc %s: %w", doc.Metadata.Number, err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO documents (number, format, source_url, title, body, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (number) DO NOTHING
	`, doc.Metadata.Number, string(doc.Format), doc.Metadata.SourceURL, doc.Metadata.Title,
		string(body), hashContent(doc.FullText), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return c.FindDocument(ctx, doc.Metadata.Number)
}

// FindDocuments lists cache entries matching the filter, most recent first.
func (c *DocumentCache) FindDocuments(ctx context.Context, filter rfc.CachedDocumentFilter) ([]*rfc.CachedDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT number, title, format, source_url, content_hash, created_at FROM documents WHERE 1=1")

	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}

	query.WriteString(" ORDER BY created_at DESC, number ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := c.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*rfc.CachedDocument
	for rows.Next() {
		var e rfc.CachedDocument
		var format, createdAt string

		if err := rows.Scan(&e.Number, &e.Title, &format, &e.SourceURL, &e.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		e.Format = rfc.Format(format)

		if e.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
			return nil, err
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// DeleteDocument removes a cached document.
func (c *DocumentCache) DeleteDocument(ctx context.Context, number string) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM documents WHERE number = ?", number)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return rfc.Errorf(rfc.ENOTFOUND, "rfc %s not cached", number)
	}

	return nil
}
