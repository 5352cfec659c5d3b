package main

import (
	"fmt"

	rfc "github.com/mjpitz/mcp-rfc"
	"golang.org/x/sync/errgroup"
)

// Run executes the get command. Documents are retrieved concurrently and
// written in the order requested. A failed number is reported on stderr
// without stopping the others.
func (c *GetCmd) Run(deps *Dependencies) error {
	renderer, ok := deps.Renderers[c.Format]
	if !ok {
		return rfc.Errorf(rfc.EINVALID, "unsupported format %q", c.Format)
	}

	numbers := make([]string, len(c.Numbers))
	for i, s := range c.Numbers {
		n, err := rfc.ParseNumber(s)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
			return err
		}
		numbers[i] = n
	}

	docs := make([]*rfc.Document, len(numbers))
	errs := make([]error, len(numbers))

	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, n := range numbers {
		g.Go(func() error {
			docs[i], errs[i] = deps.Resolver.Resolve(deps.Ctx, n)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, doc := range docs {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(errs[i]))
			continue
		}
		if err := c.write(deps, doc, renderer); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: rfc %s: %s\n", numbers[i], rfc.ErrorMessage(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(numbers))
	}
	return nil
}

func (c *GetCmd) write(deps *Dependencies, doc *rfc.Document, r rfc.Renderer) error {
	if deps.Writer != nil {
		path, err := deps.Writer.WriteDocument(doc, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%s, %d sections)\n", path, doc.Format, len(doc.Sections))
		return nil
	}

	out, err := r.Render(doc)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}
