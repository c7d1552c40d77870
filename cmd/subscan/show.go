package main

import (
	"fmt"

	"github.com/fwojciec/subscan"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
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
	fmt.Fprintf(deps.Stdout, "Name:     %s\n", creator.Name)
	fmt.Fprintf(deps.Stdout, "Site:     %s\n", creator.SiteURL)
	fmt.Fprintf(deps.Stdout, "Feed:     %s\n", creator.FeedURL)
	fmt.Fprintf(deps.Stdout, "Category: %s\n", creator.Category)
	if creator.Description != "" {
		fmt.Fprintf(deps.Stdout, "About:    %s\n", creator.Description)
	}
	if creator.ProfileImageURL != "" {
		fmt.Fprintf(deps.Stdout, "Image:    %s\n", creator.ProfileImageURL)
	}

	articles, err := deps.Articles.FindArticlesByCreator(deps.Ctx, creator.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subscan.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "- %s\n", a.Title)
		if c.Full && a.Content != "" {
			fmt.Fprintln(deps.Stdout, a.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
