package main

import (
	"fmt"

	"github.com/fwojciec/subscan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	creators, err := deps.Creators.FindCreators(deps.Ctx, subscan.CreatorFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subscan.ErrorMessage(err))
		return err
	}

	if len(creators) == 0 {
		fmt.Fprintln(deps.Stdout, "No creators found. Use 'subscan scan' to scan a newsletter.")
		return nil
	}

	for _, cr := range creators {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", cr.ID, cr.Name, cr.Category, cr.SiteURL)
	}

	return nil
}
