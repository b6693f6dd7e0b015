package models

import "fmt"

// ChapterMeta describes one chapter in a book's meta.json. The optional
// fields each toggle a fragment of the generated page: ChapterNum prefixes
// the display title with "Chapter N:", Part renders the part label line,
// and Slug overrides the slug derived from the title.
type ChapterMeta struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	ChapterNum int    `json:"chapterNum,omitempty"`
	Part       string `json:"part,omitempty"`
	Slug       string `json:"slug,omitempty"`
}

// DisplayTitle returns the chapter title prefixed with its number when one
// is assigned, e.g. "Chapter 3: The Cost of Complexity".
func (c *ChapterMeta) DisplayTitle() string {
	if c.ChapterNum > 0 {
		return fmt.Sprintf("Chapter %d: %s", c.ChapterNum, c.Title)
	}
	return c.Title
}

// NavLabel returns the short label used for prev/next navigation links.
func (c *ChapterMeta) NavLabel() string {
	if c.ChapterNum > 0 {
		return fmt.Sprintf("Chapter %d", c.ChapterNum)
	}
	return c.Title
}

// BookMeta is the per-book metadata record loaded from data/meta.json.
type BookMeta struct {
	Title     string        `json:"title"`
	Author    string        `json:"author"`
	AuthorURL string        `json:"authorUrl,omitempty"`
	Chapters  []ChapterMeta `json:"chapters"`
}
