package rfc

import (
	"strings"
)

// ParseNumber extracts the RFC number from user input such as "2616",
// "RFC 2616" or "rfc2616". Leading zeros are removed.
func ParseNumber(s string) (string, error) {
	n := strings.TrimSpace(s)
	if len(n) >= 3 && strings.EqualFold(n[:3], "rfc") {
		n = strings.TrimSpace(n[3:])
		n = strings.TrimPrefix(n, "-")
	}
	if n == "" {
		return "", Errorf(EINVALID, "rfc number required")
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", Errorf(EINVALID, "invalid rfc number %q", s)
		}
	}
	n = strings.TrimLeft(n, "0")
	if n == "" {
		return "", Errorf(EINVALID, "invalid rfc number %q", s)
	}
	return n, nil
}
