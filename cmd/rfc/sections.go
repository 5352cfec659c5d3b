package main

import (
	"fmt"
	"strings"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	number, err := rfc.ParseNumber(c.Number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	doc, err := deps.Resolver.Resolve(deps.Ctx, number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", doc.Metadata.Title, doc.Format)

	outline := doc.Outline()
	if len(outline) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found.")
		return nil
	}

	for _, e := range outline {
		indent := strings.Repeat("  ", e.Level)
		if c.Anchors {
			fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", indent, e.Title, e.Anchor)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s%s\n", indent, e.Title)
	}

	return nil
}
