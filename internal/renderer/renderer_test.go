package renderer

import (
	"strings"
	"testing"

	"github.com/adrianmcphee/chapterpages/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"The, Cost: of Complexity!": "the-cost-of-complexity",
		"Hello, World!":             "hello-world",
		"  Trim -- me  ":            "trim-me",
		"Snake_case title":          "snake-case-title",
		"Café au lait!":             "café-au-lait",
	}
	for in, want := range cases {
		got := Slugify(in)
		assert.Equal(t, want, got)
	}
}

func TestChapterSlug(t *testing.T) {
	withSlug := &models.ChapterMeta{Title: "Some Title", Slug: "custom-slug"}
	assert.Equal(t, "custom-slug", ChapterSlug(withSlug))

	derived := &models.ChapterMeta{Title: "Some Title"}
	assert.Equal(t, "some-title", ChapterSlug(derived))
}

func TestDescriptionShort(t *testing.T) {
	got := Description([]string{"A short  first\nparagraph."})
	assert.Equal(t, "A short first paragraph.", got)
}

func TestDescriptionEmpty(t *testing.T) {
	assert.Equal(t, "", Description(nil))
}

func TestDescriptionTruncates(t *testing.T) {
	long := strings.Repeat("seventeen letters ", 20)
	got := Description([]string{long})

	assert.LessOrEqual(t, len([]rune(got)), 155)
	assert.True(t, strings.HasSuffix(got, "..."))
	// word-boundary safe: no partial word right before the ellipsis
	body := strings.TrimSuffix(got, "...")
	assert.True(t, strings.HasSuffix(body, "letters") || strings.HasSuffix(body, "seventeen"))
}

func TestNavHTMLPlaceholders(t *testing.T) {
	got := navHTML(nil, nil)
	assert.Equal(t, `<div class="nav"><span></span><span></span></div>`, got)
}

func TestNavHTMLLinks(t *testing.T) {
	prev := &models.ChapterMeta{Title: "First Steps", ChapterNum: 1}
	next := &models.ChapterMeta{Title: "Going Deeper"}

	got := navHTML(prev, next)
	assert.Contains(t, got, `<a href="../first-steps/">&larr; Chapter 1</a>`)
	assert.Contains(t, got, `<a href="../going-deeper/">Going Deeper &rarr;</a>`)
}

func TestHtmlEscape(t *testing.T) {
	in := `Tom & Jerry " <>`
	got := htmlEscape(in)
	assert.Equal(t, "Tom &amp; Jerry &quot; &lt;&gt;", got)
}

func testPage() *Page {
	return &Page{
		Book: models.BookMeta{
			Title:     "Illusions of Work",
			Author:    "Adrian McPhee",
			AuthorURL: "https://www.linkedin.com/in/adrianmcphee/",
		},
		Chapter: models.ChapterMeta{
			ID:         2,
			Title:      "The Cost of Complexity",
			ChapterNum: 2,
			Part:       "Part I",
		},
		Paragraphs: []string{"Work is hard.", "Really hard."},
		Prev:       &models.ChapterMeta{Title: "Getting Started", ChapterNum: 1},
		Next:       &models.ChapterMeta{Title: "Letting Go", ChapterNum: 3},
		BookSlug:   "illusions-of-work",
		Domain:     "https://simpleisadvanced.com",
	}
}

func TestRenderPage(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	html, err := r.Render(testPage())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Chapter 2: The Cost of Complexity — Illusions of Work by Adrian McPhee</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://simpleisadvanced.com/illusions-of-work/chapters/the-cost-of-complexity/">`)
	assert.Contains(t, html, `<meta property="og:image" content="https://simpleisadvanced.com/illusions-of-work/og-image.png">`)
	assert.Contains(t, html, `<meta name="description" content="Work is hard.">`)

	// excerpt paragraphs as separate blocks
	assert.Contains(t, html, "<p>Work is hard.</p>")
	assert.Contains(t, html, "<p>Really hard.</p>")

	// part label and CTA
	assert.Contains(t, html, `<p class="part">Part I</p>`)
	assert.Contains(t, html, `<a href="/illusions-of-work/?ch=2">Read this chapter</a>`)

	// bidirectional navigation by sibling slug
	assert.Contains(t, html, `<a href="../getting-started/">&larr; Chapter 1</a>`)
	assert.Contains(t, html, `<a href="../letting-go/">Chapter 3 &rarr;</a>`)

	// structured data
	assert.Contains(t, html, `"@type": "Chapter"`)
	assert.Contains(t, html, `"@type": "Book"`)
	assert.Contains(t, html, `"@type": "Person"`)
	assert.Contains(t, html, `"position": 2`)
}

func TestRenderPageWithoutOptionalFields(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	p := testPage()
	p.Chapter.ChapterNum = 0
	p.Chapter.Part = ""
	p.Prev = nil
	p.Next = nil
	p.Book.AuthorURL = ""

	html, err := r.Render(p)
	require.NoError(t, err)

	// title without chapter number prefix
	assert.Contains(t, html, "<title>The Cost of Complexity — Illusions of Work by Adrian McPhee</title>")
	assert.NotContains(t, html, `class="part"`)
	assert.Contains(t, html, `<div class="nav"><span></span><span></span></div>`)
	assert.NotContains(t, html, "Contact")
}

func TestRenderPageEscapesMetadata(t *testing.T) {
	r, err := NewPageRenderer()
	require.NoError(t, err)

	p := testPage()
	p.Book.Author = `Tom & "Jerry"`
	p.Paragraphs = []string{`He said <hello> & left.`}

	html, err := r.Render(p)
	require.NoError(t, err)

	assert.Contains(t, html, "Tom &amp;")
	assert.Contains(t, html, "<p>He said &lt;hello&gt; &amp; left.</p>")
	assert.NotContains(t, html, "<hello>")
}
