package cli

import (
	"fmt"
	"path/filepath"

	"github.com/adrianmcphee/chapterpages/internal/utils"
)

// InitOptions captures options for scaffolding a new site
type InitOptions struct {
	Dir    string // site directory name
	Domain string // canonical site domain, e.g. https://example.com
	Book   string // slug of the first book
	Title  string // title of the first book; defaults to the slug
	Author string
}

// Init scaffolds a new site at the given directory: a site.toml, plus a data
// directory for the first book seeded with a sample meta.json and chapter
// token file.
func Init(opts InitOptions) error {
	if opts.Dir == "" {
		opts.Dir = "my-site"
	}
	if opts.Domain == "" {
		opts.Domain = "https://example.com"
	}
	if opts.Book == "" {
		opts.Book = "my-book"
	}
	if opts.Title == "" {
		opts.Title = opts.Book
	}
	if opts.Author == "" {
		opts.Author = "Anonymous"
	}

	root := opts.Dir

	if err := utils.CreateDirAll(root); err != nil {
		return err
	}

	// Write site.toml
	siteToml := []byte(fmt.Sprintf(`[site]
domain = "%s"
books = ["%s"]

[build]
data-dir = "data"
chapters-dir = "chapters"
max-paragraphs = 3
`, opts.Domain, opts.Book))
	if err := utils.WriteFile(filepath.Join(root, "site.toml"), siteToml); err != nil {
		return err
	}

	// Seed the first book's data directory
	dataDir := filepath.Join(root, opts.Book, "data")
	if err := utils.CreateDirAll(dataDir); err != nil {
		return err
	}

	meta := []byte(fmt.Sprintf(`{
  "title": "%s",
  "author": "%s",
  "chapters": [
    {"id": 1, "title": "Introduction", "chapterNum": 1}
  ]
}
`, opts.Title, opts.Author))
	if err := utils.WriteFile(filepath.Join(dataDir, "meta.json"), meta); err != nil {
		return err
	}

	sample := []byte(`[
  {"w": "Welcome", "p": ""},
  {"w": "to", "p": ""},
  {"w": "your", "p": ""},
  {"w": "new", "p": ""},
  {"w": "book.", "p": "paragraph"}
]
`)
	if err := utils.WriteFile(filepath.Join(dataDir, "ch01.json"), sample); err != nil {
		return err
	}

	// Keep generated pages out of version control
	gitignore := []byte(fmt.Sprintf("%s/chapters/\n.chapter-urls.txt\n", opts.Book))
	_ = utils.WriteFile(filepath.Join(root, ".gitignore"), gitignore)

	return nil
}
