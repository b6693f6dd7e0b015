package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/adrianmcphee/chapterpages/internal/config"
	"github.com/adrianmcphee/chapterpages/internal/extract"
	"github.com/adrianmcphee/chapterpages/internal/loader"
	"github.com/adrianmcphee/chapterpages/internal/models"
	"github.com/adrianmcphee/chapterpages/internal/renderer"
	"github.com/adrianmcphee/chapterpages/internal/utils"
)

// Summary reports what a generation run produced.
type Summary struct {
	Pages   int
	Skipped int
	URLs    []string
}

// Generator runs the batch transform: for every configured book, load its
// chapter metadata, extract an excerpt from each chapter's token file, render
// a landing page, and write the output tree plus a URL manifest.
type Generator struct {
	rootDir  string
	config   *config.Config
	loader   *loader.Loader
	renderer *renderer.PageRenderer
	verbose  bool
}

// New creates a generator rooted at the site directory
func New(rootDir string, cfg *config.Config) (*Generator, error) {
	r, err := renderer.NewPageRenderer()
	if err != nil {
		return nil, err
	}
	return &Generator{
		rootDir:  rootDir,
		config:   cfg,
		loader:   loader.NewLoader(rootDir, cfg),
		renderer: r,
	}, nil
}

// SetVerbose enables per-page progress output
func (g *Generator) SetVerbose(v bool) {
	g.verbose = v
}

// Run generates landing pages for every configured book. A missing or
// unparsable meta.json aborts the run; a missing chapter token file or an
// empty excerpt only skips that chapter.
func (g *Generator) Run() (*Summary, error) {
	summary := &Summary{}

	for _, bookSlug := range g.config.Site.Books {
		if err := g.generateBook(bookSlug, summary); err != nil {
			return nil, err
		}
	}

	if err := g.writeManifest(summary.URLs); err != nil {
		return nil, err
	}

	return summary, nil
}

func (g *Generator) generateBook(bookSlug string, summary *Summary) error {
	meta, err := g.loader.LoadMeta(bookSlug)
	if err != nil {
		return fmt.Errorf("failed to load book '%s': %w", bookSlug, err)
	}

	// Reserved titles are dropped before navigation is computed, so prev/next
	// always point at generated siblings.
	chapters := make([]models.ChapterMeta, 0, len(meta.Chapters))
	for _, ch := range meta.Chapters {
		if g.config.Excluded(ch.Title) {
			continue
		}
		chapters = append(chapters, ch)
	}

	chaptersDir := filepath.Join(g.rootDir, bookSlug, g.config.Build.ChaptersDir)
	if err := utils.CreateDirAll(chaptersDir); err != nil {
		return err
	}

	for i := range chapters {
		ch := chapters[i]

		tokens, err := g.loader.LoadTokens(bookSlug, ch.ID)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("  Skipping %s: no data file", ch.Title)
			} else {
				log.Printf("  Skipping %s: %v", ch.Title, err)
			}
			summary.Skipped++
			continue
		}

		paragraphs := extract.Paragraphs(tokens, g.config.Build.MaxParagraphs)
		if len(paragraphs) == 0 {
			log.Printf("  Skipping %s: no paragraphs extracted", ch.Title)
			summary.Skipped++
			continue
		}

		page := &renderer.Page{
			Book:       *meta,
			Chapter:    ch,
			Paragraphs: paragraphs,
			BookSlug:   bookSlug,
			Domain:     g.config.Site.Domain,
			AuthorURL:  g.config.Site.AuthorURL,
		}
		if i > 0 {
			page.Prev = &chapters[i-1]
		}
		if i < len(chapters)-1 {
			page.Next = &chapters[i+1]
		}

		html, err := g.renderer.Render(page)
		if err != nil {
			return fmt.Errorf("failed to render chapter '%s': %w", ch.Title, err)
		}

		slug := renderer.ChapterSlug(&ch)
		outPath := filepath.Join(chaptersDir, slug, "index.html")
		if err := utils.WriteFile(outPath, []byte(html)); err != nil {
			return err
		}

		url := fmt.Sprintf("%s/%s/%s/%s/", g.config.Site.Domain, bookSlug, g.config.Build.ChaptersDir, slug)
		summary.URLs = append(summary.URLs, url)
		summary.Pages++

		if g.verbose {
			fmt.Printf("  Generated: %s/%s/%s/\n", bookSlug, g.config.Build.ChaptersDir, slug)
		}
	}

	return nil
}

// writeManifest writes the generated page URLs, one per line, for downstream
// sitemap assembly.
func (g *Generator) writeManifest(urls []string) error {
	path := filepath.Join(g.rootDir, g.config.Build.Manifest)
	var b strings.Builder
	for _, url := range urls {
		b.WriteString(url)
		b.WriteString("\n")
	}
	return utils.WriteFile(path, []byte(b.String()))
}

// Clean removes the generated chapter directories and the URL manifest.
// It returns the number of removed page files.
func Clean(rootDir string, cfg *config.Config) (int, error) {
	removed := 0
	for _, bookSlug := range cfg.Site.Books {
		chaptersDir := filepath.Join(rootDir, bookSlug, cfg.Build.ChaptersDir)
		if !utils.DirExists(chaptersDir) {
			continue
		}
		removed += countFiles(chaptersDir)
		if err := utils.RemoveAll(chaptersDir); err != nil {
			return removed, err
		}
	}

	manifest := filepath.Join(rootDir, cfg.Build.Manifest)
	if utils.FileExists(manifest) {
		if err := utils.RemoveAll(manifest); err != nil {
			return removed, err
		}
	}

	return removed, nil
}

func countFiles(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
