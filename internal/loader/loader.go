package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrianmcphee/chapterpages/internal/config"
	"github.com/adrianmcphee/chapterpages/internal/models"
)

// Loader reads book metadata and chapter token files from the site tree.
// Each book lives under rootDir/<book-slug>/<data-dir>/.
type Loader struct {
	rootDir string
	config  *config.Config
}

// NewLoader creates a loader rooted at the site directory
func NewLoader(rootDir string, cfg *config.Config) *Loader {
	return &Loader{
		rootDir: rootDir,
		config:  cfg,
	}
}

// DataDir returns the data directory for a book
func (l *Loader) DataDir(bookSlug string) string {
	return filepath.Join(l.rootDir, bookSlug, l.config.Build.DataDir)
}

// TokenPath returns the token file path for a chapter. Chapter files are
// keyed on the chapter id with a fixed zero-padded naming convention.
func (l *Loader) TokenPath(bookSlug string, chapterID int) string {
	return filepath.Join(l.DataDir(bookSlug), fmt.Sprintf("ch%02d.json", chapterID))
}

// LoadMeta loads a book's meta.json. A missing or unparsable metadata file
// is an error; no chapter list can be derived without it.
func (l *Loader) LoadMeta(bookSlug string) (*models.BookMeta, error) {
	path := filepath.Join(l.DataDir(bookSlug), "meta.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	var meta models.BookMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	return &meta, nil
}

// LoadTokens loads a chapter's token file. A missing file surfaces as an
// error wrapping fs.ErrNotExist so callers can skip the chapter.
func (l *Loader) LoadTokens(bookSlug string, chapterID int) ([]models.Token, error) {
	path := l.TokenPath(bookSlug, chapterID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	var tokens []models.Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	return tokens, nil
}
