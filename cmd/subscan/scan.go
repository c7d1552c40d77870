package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/extract"
	"github.com/fwojciec/subscan/fs"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	progress := func(p extract.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.SiteURL, subscan.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, p.SiteURL)
	}

	results, err := deps.Batch.ExtractAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	scanned := 0
	for _, result := range results {
		if result == nil {
			continue
		}
		scanned++

		fmt.Fprintf(deps.Stdout, "%s  %s  %d posts", result.Author, result.Category, result.TotalPosts)
		if result.Synthesized {
			fmt.Fprint(deps.Stdout, " (placeholder)")
		}
		fmt.Fprintln(deps.Stdout)

		if c.Save {
			if err := c.save(deps, result); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", result.SiteURL, subscan.ErrorMessage(err))
				return err
			}
		}

		if c.Out != "" {
			if err := c.export(deps, result); err != nil {
				fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", result.SiteURL, err)
				return err
			}
		}
	}

	if scanned == 0 {
		return subscan.Errorf(subscan.EUNAVAILABLE, "no newsletters could be scanned")
	}

	return nil
}

// save upserts the creator: a previous scan of the same site is replaced.
func (c *ScanCmd) save(deps *Dependencies, result *subscan.ExtractionResult) error {
	existing, err := deps.Creators.FindCreators(deps.Ctx, subscan.CreatorFilter{SiteURL: &result.SiteURL})
	if err != nil {
		return err
	}
	for _, prev := range existing {
		if err := deps.Creators.DeleteCreator(deps.Ctx, prev.ID); err != nil {
			return err
		}
	}

	creator := &subscan.Creator{
		Name:            result.Author,
		SiteURL:         result.SiteURL,
		FeedURL:         result.FeedURL,
		Category:        result.Category,
		Description:     result.Description,
		ProfileImageURL: result.ProfileImageURL,
	}
	if err := deps.Creators.CreateCreator(deps.Ctx, creator); err != nil {
		return err
	}

	// Placeholder posts describe nothing real; keep them out of storage.
	if result.Synthesized {
		return nil
	}

	return deps.Articles.CreateArticles(deps.Ctx, creator.ID, result.Articles)
}

// export writes the result under Out, one directory per site host.
func (c *ScanCmd) export(deps *Dependencies, result *subscan.ExtractionResult) error {
	store := fs.NewResultStore(c.Out, dirNameFor(result.SiteURL))

	if err := store.Save(deps.Ctx, result); err != nil {
		if aerr := store.Abort(); aerr != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not clean up partial output: %v\n", aerr)
		}
		return err
	}

	return store.Commit()
}

// dirNameFor derives an output directory name from a site URL.
func dirNameFor(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return "newsletter"
	}
	return strings.ReplaceAll(u.Host, ".", "-")
}
