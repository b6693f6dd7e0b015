package models

// Boundary marks a token as the last word of a logical block. The empty
// string means the token sits inside a block; "heading" and "paragraph"
// terminate the current run.
type Boundary string

const (
	BoundaryNone      Boundary = ""
	BoundaryHeading   Boundary = "heading"
	BoundaryParagraph Boundary = "paragraph"
)

// Token is one word of chapter text plus an optional block boundary marker.
// The JSON field names match the reader's chapter data files: {"w": ..., "p": ...}.
type Token struct {
	Text     string   `json:"w"`
	Boundary Boundary `json:"p"`
}
