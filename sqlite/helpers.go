package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseCreatedAt parses the created_at column of a cached document.
// Rows are always written in UTC with second precision.
func parseCreatedAt(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at %q: %w", value, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET to a cache listing query.
// SQLite only accepts OFFSET after a LIMIT, so an offset without a limit
// uses LIMIT -1 (no limit).
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
