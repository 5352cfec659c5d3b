package main

import (
	"fmt"

	rfc "github.com/mjpitz/mcp-rfc"
)

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	if deps.Index == nil {
		err := rfc.Errorf(rfc.EINVALID, "no persistent cache configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
		return err
	}

	for _, s := range c.Numbers {
		number, err := rfc.ParseNumber(s)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
			return err
		}

		if err := deps.Index.DeleteDocument(deps.Ctx, number); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Removed RFC %s from cache\n", number)
	}

	return nil
}
