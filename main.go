package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrianmcphee/chapterpages/internal/cli"
	"github.com/adrianmcphee/chapterpages/internal/config"
	"github.com/adrianmcphee/chapterpages/internal/generator"
)

func main() {
	// Define subcommands
	buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
	buildSiteDir := buildCmd.String("site-dir", ".", "Site directory containing site.toml and book data")
	buildConfig := buildCmd.String("config", "site.toml", "Config file name relative to the site directory")
	buildVerbose := buildCmd.Bool("verbose", false, "Enable verbose output")

	cleanCmd := flag.NewFlagSet("clean", flag.ExitOnError)
	cleanSiteDir := cleanCmd.String("site-dir", ".", "Site directory containing site.toml and book data")
	cleanConfig := cleanCmd.String("config", "site.toml", "Config file name relative to the site directory")

	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	initDir := initCmd.String("dir", "", "Site directory name (or pass as positional)")
	initDomain := initCmd.String("domain", "https://example.com", "Canonical site domain")
	initBook := initCmd.String("book", "my-book", "Slug of the first book")
	initTitle := initCmd.String("title", "", "Title of the first book (defaults to slug)")
	initAuthor := initCmd.String("author", "", "Book author")
	initYes := initCmd.Bool("yes", false, "Skip interactive prompts and use provided/default values")

	if len(os.Args) < 2 {
		fmt.Println("Usage: chapterpages [command]")
		fmt.Println("Commands:")
		fmt.Println("  build      Generate chapter landing pages")
		fmt.Println("  clean      Remove generated pages and the URL manifest")
		fmt.Println("  init       Scaffold a new site")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		buildCmd.Parse(os.Args[2:])
		handleBuild(*buildSiteDir, *buildConfig, *buildVerbose)

	case "clean":
		cleanCmd.Parse(os.Args[2:])
		handleClean(*cleanSiteDir, *cleanConfig)

	case "init":
		initCmd.Parse(os.Args[2:])
		handleInit(initCmd, *initDir, *initDomain, *initBook, *initTitle, *initAuthor, *initYes)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func handleBuild(siteDir, configName string, verbose bool) {
	cfg := loadConfig(siteDir, configName)

	if len(cfg.Site.Books) == 0 {
		log.Fatalf("No books configured; add a [site] books list to %s", configName)
	}

	g, err := generator.New(siteDir, cfg)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}
	g.SetVerbose(verbose)

	fmt.Printf("Generating chapter pages for %d book(s)...\n", len(cfg.Site.Books))

	summary, err := g.Run()
	if err != nil {
		log.Fatalf("Failed to generate pages: %v", err)
	}

	fmt.Printf("\nGenerated %d chapter pages (%d skipped).\n", summary.Pages, summary.Skipped)
	fmt.Printf("Chapter URLs written to %s\n", cfg.Build.Manifest)
}

func handleClean(siteDir, configName string) {
	cfg := loadConfig(siteDir, configName)

	removed, err := generator.Clean(siteDir, cfg)
	if err != nil {
		log.Fatalf("Failed to clean: %v", err)
	}
	if removed == 0 {
		fmt.Println("Nothing to clean.")
		return
	}
	fmt.Printf("Removed %d generated page(s).\n", removed)
}

func handleInit(initCmd *flag.FlagSet, dir, domain, book, title, author string, yes bool) {
	// Determine dir: prefer positional arg if present, then --dir, else default
	if dir == "" {
		if initCmd.NArg() >= 1 {
			dir = initCmd.Arg(0)
		} else {
			dir = "my-site"
		}
	}

	fmt.Printf("Initializing new site: %s\n", dir)

	opts := cli.InitOptions{
		Dir:    dir,
		Domain: domain,
		Book:   book,
		Title:  title,
		Author: author,
	}

	if !yes {
		cli.FillInitOptionsInteractive(&opts)
	}

	if err := cli.Init(opts); err != nil {
		log.Fatalf("Failed to initialize site: %v", err)
	}

	fmt.Printf("\nSuccessfully created site in '%s'\n", opts.Dir)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", opts.Dir)
	fmt.Println("  chapterpages build     # generate chapter landing pages")
}

func loadConfig(siteDir, configName string) *config.Config {
	cfg, err := config.LoadFromFile(filepath.Join(siteDir, configName))
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
	}
	return cfg
}
