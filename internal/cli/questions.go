package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FillInitOptionsInteractive prompts the user to confirm or override defaults.
// If stdin is not interactive, it will keep the provided defaults.
func FillInitOptionsInteractive(opts *InitOptions) {
	reader := bufio.NewReader(os.Stdin)

	// Dir (directory)
	fmt.Printf("Site directory [%s]: ", opts.Dir)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Dir = strings.TrimSpace(s)
	}

	// Domain
	fmt.Printf("Site domain [%s]: ", opts.Domain)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Domain = strings.TrimSpace(s)
	}

	// Book slug
	fmt.Printf("First book slug [%s]: ", opts.Book)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Book = strings.TrimSpace(s)
	}

	// Title
	defTitle := opts.Title
	if defTitle == "" {
		defTitle = opts.Book
	}
	fmt.Printf("Book title [%s]: ", defTitle)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Title = strings.TrimSpace(s)
	} else if opts.Title == "" {
		opts.Title = defTitle
	}

	// Author
	fmt.Printf("Author [%s]: ", opts.Author)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Author = strings.TrimSpace(s)
	}
}
