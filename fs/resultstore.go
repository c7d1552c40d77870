// Package fs provides file-based storage for extraction results.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/subscan"
)

// Ensure ResultStore implements subscan.ResultStore at compile time.
var _ subscan.ResultStore = (*ResultStore)(nil)

// ResultStore writes extraction results to a directory with atomic update
// semantics: files go to a temporary directory and are renamed into place
// on Commit, so a crashed run never leaves a half-written result behind.
type ResultStore struct {
	baseDir string
	name    string
}

// NewResultStore creates a new ResultStore. baseDir is the parent
// directory, name is the output directory name. Files are saved to
// baseDir/name.tmp and moved to baseDir/name on Commit.
func NewResultStore(baseDir, name string) *ResultStore {
	return &ResultStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ResultStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ResultStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the result as result.json plus one markdown file per
// article under articles/.
func (s *ResultStore) Save(ctx context.Context, result *subscan.ExtractionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), "result.json"), data, 0644); err != nil {
		return err
	}

	if len(result.Articles) == 0 {
		return nil
	}

	articlesDir := filepath.Join(s.tempDir(), "articles")
	if err := os.MkdirAll(articlesDir, 0755); err != nil {
		return err
	}

	for i, article := range result.Articles {
		path := filepath.Join(articlesDir, articleFileName(i, article.Title))
		if err := os.WriteFile(path, []byte(FormatArticle(article)), 0644); err != nil {
			return err
		}
	}

	return nil
}

// Commit atomically replaces the final directory with the pending one.
func (s *ResultStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards pending changes.
func (s *ResultStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FormatArticle formats one article with YAML frontmatter.
func FormatArticle(a subscan.Article) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(a.Title)
	if a.URL != "" {
		b.WriteString("\nsource: ")
		b.WriteString(a.URL)
	}
	if a.PublishedAt != "" {
		b.WriteString("\npublished: ")
		b.WriteString(a.PublishedAt)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(a.Content)
	return b.String()
}

// articleFileName builds a stable, filesystem-safe name like
// "01-my-post-title.md". The position prefix keeps feed order under ls.
func articleFileName(position int, title string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, title)
	slug = strings.Trim(slug, "-")

	const maxSlug = 60
	if len(slug) > maxSlug {
		slug = slug[:maxSlug]
	}
	if slug == "" {
		slug = "article"
	}

	return fmt.Sprintf("%02d-%s.md", position+1, slug)
}
