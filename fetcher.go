package rfc

import "context"

// Fetcher retrieves raw document content from URLs.
type Fetcher interface {
	// Fetch returns the body found at url.
	// Returns ENOTFOUND if the server reports that the document does not exist.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
