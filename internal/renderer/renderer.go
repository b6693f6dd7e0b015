package renderer

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/adrianmcphee/chapterpages/internal/models"
)

//go:embed templates/page.hbs
var templateFS embed.FS

// descriptionMaxLen caps the meta description length; longer first paragraphs
// are truncated at a word boundary with a trailing ellipsis.
const descriptionMaxLen = 155

var (
	spaceRun       = regexp.MustCompile(`\s+`)
	nonSlugChars   = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	repeatHyphens  = regexp.MustCompile(`-+`)
)

// Page holds everything needed to render one chapter landing page.
// Prev and Next are the neighboring chapters after exclusion filtering;
// either may be nil, in which case an empty nav placeholder is rendered.
type Page struct {
	Book       models.BookMeta
	Chapter    models.ChapterMeta
	Paragraphs []string
	Prev       *models.ChapterMeta
	Next       *models.ChapterMeta
	BookSlug   string
	Domain     string
	AuthorURL  string
}

// PageRenderer renders chapter landing pages from the embedded Handlebars template
type PageRenderer struct {
	tpl *raymond.Template
}

// NewPageRenderer parses the embedded page template
func NewPageRenderer() (*PageRenderer, error) {
	data, err := templateFS.ReadFile("templates/page.hbs")
	if err != nil {
		return nil, fmt.Errorf("failed to read page.hbs: %w", err)
	}

	tpl, err := raymond.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &PageRenderer{tpl: tpl}, nil
}

// Render produces the complete HTML document for a chapter landing page.
func (r *PageRenderer) Render(p *Page) (string, error) {
	displayTitle := p.Chapter.DisplayTitle()
	slug := ChapterSlug(&p.Chapter)
	canonical := fmt.Sprintf("%s/%s/chapters/%s/", p.Domain, p.BookSlug, slug)

	authorURL := p.Book.AuthorURL
	if authorURL == "" {
		authorURL = p.AuthorURL
	}

	ld, err := r.jsonLD(p, displayTitle, canonical)
	if err != nil {
		return "", err
	}

	data := map[string]interface{}{
		"language":      "en",
		"page_title":    fmt.Sprintf("%s — %s by %s", displayTitle, p.Book.Title, p.Book.Author),
		"description":   Description(p.Paragraphs),
		"author":        p.Book.Author,
		"author_url":    authorURL,
		"canonical":     canonical,
		"og_image":      fmt.Sprintf("%s/%s/og-image.png", p.Domain, p.BookSlug),
		"book_title":    p.Book.Title,
		"book_url":      fmt.Sprintf("/%s/", p.BookSlug),
		"display_title": displayTitle,
		"part":          raymond.SafeString(partLine(&p.Chapter)),
		"excerpt":       raymond.SafeString(excerptHTML(p.Paragraphs)),
		"reader_url":    fmt.Sprintf("/%s/?ch=%d", p.BookSlug, p.Chapter.ID),
		"nav":           raymond.SafeString(navHTML(p.Prev, p.Next)),
		"json_ld":       raymond.SafeString(ld),
		"year":          time.Now().Year(),
	}

	result, err := r.tpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("failed to render page template: %w", err)
	}
	return result, nil
}

// jsonLD builds the structured data block: a Chapter belonging to a Book
// authored by a Person.
func (r *PageRenderer) jsonLD(p *Page, displayTitle, canonical string) (string, error) {
	author := map[string]interface{}{
		"@type": "Person",
		"name":  p.Book.Author,
	}
	authorURL := p.Book.AuthorURL
	if authorURL == "" {
		authorURL = p.AuthorURL
	}
	if authorURL != "" {
		author["url"] = authorURL
	}

	ld := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Chapter",
		"name":     displayTitle,
		"isPartOf": map[string]interface{}{
			"@type":  "Book",
			"name":   p.Book.Title,
			"author": author,
			"url":    fmt.Sprintf("%s/%s/", p.Domain, p.BookSlug),
		},
		"url":      canonical,
		"position": p.Chapter.ID,
	}

	out, err := json.MarshalIndent(ld, "  ", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal structured data: %w", err)
	}
	return string(out), nil
}

// Slugify converts a title to a URL slug: lowercase, characters outside
// word/space/hyphen stripped, space and underscore runs collapsed to a
// single hyphen, repeated hyphens collapsed, edges trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	s = repeatHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ChapterSlug returns the chapter's explicit slug when set, otherwise a
// slug derived from its title.
func ChapterSlug(ch *models.ChapterMeta) string {
	if ch.Slug != "" {
		return ch.Slug
	}
	return Slugify(ch.Title)
}

// Description derives the meta description from the first paragraph,
// whitespace-collapsed and truncated word-boundary-safe.
func Description(paragraphs []string) string {
	if len(paragraphs) == 0 {
		return ""
	}
	text := strings.TrimSpace(spaceRun.ReplaceAllString(paragraphs[0], " "))

	runes := []rune(text)
	if len(runes) <= descriptionMaxLen {
		return text
	}
	cut := string(runes[:descriptionMaxLen-3])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// excerptHTML renders the excerpt paragraphs as escaped <p> blocks.
func excerptHTML(paragraphs []string) string {
	var buf strings.Builder
	for i, p := range paragraphs {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "<p>%s</p>", htmlEscape(p))
	}
	return buf.String()
}

// partLine renders the part label line, or nothing when the chapter has no part.
func partLine(ch *models.ChapterMeta) string {
	if ch.Part == "" {
		return ""
	}
	return fmt.Sprintf("\n  <p class=\"part\">%s</p>", htmlEscape(ch.Part))
}

// navHTML renders the prev/next navigation row. A missing neighbor becomes an
// empty span so the remaining link keeps its position.
func navHTML(prev, next *models.ChapterMeta) string {
	var buf strings.Builder
	buf.WriteString(`<div class="nav">`)

	if prev != nil {
		fmt.Fprintf(&buf, `<a href="../%s/">&larr; %s</a>`, ChapterSlug(prev), htmlEscape(prev.NavLabel()))
	} else {
		buf.WriteString(`<span></span>`)
	}

	if next != nil {
		fmt.Fprintf(&buf, `<a href="../%s/">%s &rarr;</a>`, ChapterSlug(next), htmlEscape(next.NavLabel()))
	} else {
		buf.WriteString(`<span></span>`)
	}

	buf.WriteString(`</div>`)
	return buf.String()
}

// htmlEscape is a minimal HTML escaper for titles
func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
