package rfc

import (
	"context"
	"time"
)

// Document is the canonical representation of a retrieved RFC,
// regardless of the format it was parsed from.
type Document struct {
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
	FullText string    `json:"fullText"`
	Format   Format    `json:"format"`
}

// Metadata describes a document. Only Number, Title and SourceURL are
// guaranteed to be non-empty.
type Metadata struct {
	Number    string   `json:"number"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Date      string   `json:"date"`
	Status    string   `json:"status"`
	Abstract  string   `json:"abstract"`
	SourceURL string   `json:"sourceUrl"`
}

// Section is a titled top-level division of a document.
// Content is serialized inner markup for HTML documents and the raw
// line-joined body for text documents.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// Subsections is nil when none were found. Text documents never have subsections.
	Subsections []Subsection `json:"subsections,omitempty"`
}

// Subsection is a titled division nested one level below a Section.
type Subsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Metadata.Number == "" {
		return Errorf(EINVALID, "document number required")
	}
	if d.Metadata.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	for i, s := range d.Sections {
		if s.Title == "" {
			return Errorf(EINVALID, "section %d has no title", i)
		}
	}
	return nil
}

// DocumentCache stores resolved documents keyed by number.
// Documents are immutable once published, so entries are never invalidated.
type DocumentCache interface {
	// FindDocument retrieves a cached document by number.
	// Returns ENOTFOUND if the document is not cached.
	FindDocument(ctx context.Context, number string) (*Document, error)

	// CreateDocument stores a document unless one with the same number
	// already exists. The first writer wins: the stored document is
	// returned in either case.
	CreateDocument(ctx context.Context, doc *Document) (*Document, error)
}

// CachedDocument summarizes a cache entry.
type CachedDocument struct {
	Number      string    `json:"number"`
	Title       string    `json:"title"`
	Format      Format    `json:"format"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CachedDocumentFilter represents a filter for listing cache entries.
type CachedDocumentFilter struct {
	Format *Format `json:"format"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentIndex lists and removes entries of a persistent cache.
type DocumentIndex interface {
	// FindDocuments lists cache entries matching the filter, most recent first.
	FindDocuments(ctx context.Context, filter CachedDocumentFilter) ([]*CachedDocument, error)

	// DeleteDocument removes a cached document.
	// Returns ENOTFOUND if the document is not cached.
	DeleteDocument(ctx context.Context, number string) error
}
