package main

import (
	"fmt"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Run executes the cached command.
func (c *CachedCmd) Run(deps *Dependencies) error {
	if deps.Index == nil {
		err := rfc.Errorf(rfc.EINVALID, "no persistent cache configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	filter := rfc.CachedDocumentFilter{Limit: c.Limit}
	switch f := rfc.Format(c.Format); f {
	case "":
	case rfc.FormatHTML, rfc.FormatText:
		filter.Format = &f
	default:
		err := rfc.Errorf(rfc.EINVALID, "unknown format %q", c.Format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	entries, err := deps.Index.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached documents. Use 'rfc get' to retrieve one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%-6s  %-4s  %s  %s  %s\n",
			e.Number, e.Format, e.CreatedAt.Format("2006-01-02"), e.ContentHash, e.Title)
	}

	return nil
}
