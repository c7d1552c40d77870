package main

import (
	"fmt"

	"github.com/fwojciec/subscan"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return subscan.Errorf(subscan.EINVALID, "use --force to confirm deletion")
	}

	creators, err := deps.Creators.FindCreators(deps.Ctx, subscan.CreatorFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subscan.ErrorMessage(err))
		return err
	}

	if len(creators) == 0 {
		fmt.Fprintf(deps.Stderr, "error: creator %q not found. Use 'subscan list' to see scanned creators.\n", c.Name)
		return subscan.Errorf(subscan.ENOTFOUND, "creator %q not found", c.Name)
	}

	creator := creators[0]
	if err := deps.Creators.DeleteCreator(deps.Ctx, creator.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted creator %q\n", creator.Name)
	return nil
}
