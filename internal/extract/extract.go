package extract

import (
	"regexp"
	"strings"

	"github.com/adrianmcphee/chapterpages/internal/models"
)

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	hyphenBreak = regexp.MustCompile(`-\s+(\w)`)
)

// Paragraphs walks a chapter's token stream in a single forward pass and
// returns up to limit excerpt paragraphs in reading order. Every returned
// paragraph is non-empty, trimmed, and contains no doubled spaces.
//
// Heading policy: a run terminated by a heading boundary is discarded
// entirely, including the heading token itself, so no heading word can
// surface in the excerpt. Accumulation resumes fresh after the heading.
//
// A trailing run with no closing paragraph boundary is discarded as well;
// an unterminated paragraph may end mid-sentence.
func Paragraphs(tokens []models.Token, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var paragraphs []string
	var current []string

	for _, tok := range tokens {
		current = append(current, tok.Text)

		switch tok.Boundary {
		case models.BoundaryHeading:
			current = current[:0]
		case models.BoundaryParagraph:
			if text := normalize(current); text != "" {
				paragraphs = append(paragraphs, text)
			}
			current = current[:0]
			if len(paragraphs) >= limit {
				return paragraphs[:limit]
			}
		}
	}

	return paragraphs
}

// normalize joins a token run into a paragraph string: whitespace collapsed
// to single spaces, surrounding whitespace trimmed, and hyphenation broken
// across tokens ("soft- ware") rejoined into a single word.
func normalize(run []string) string {
	text := strings.Join(run, " ")
	text = strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
	return hyphenBreak.ReplaceAllString(text, "-$1")
}
