package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/subscan"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	creators, err := deps.Creators.FindCreators(deps.Ctx, subscan.CreatorFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subscan.ErrorMessage(err))
		return err
	}

	if len(creators) == 0 {
		fmt.Fprintf(deps.Stderr, "error: nothing to export. Use 'subscan scan' to scan a newsletter.\n")
		return subscan.Errorf(subscan.ENOTFOUND, "no creators to export")
	}

	var w io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := deps.Exporter.Export(w, creators); err != nil {
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Exported %d creators to %s\n", len(creators), c.Out)
	}

	return nil
}
