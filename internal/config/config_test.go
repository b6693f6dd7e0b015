package config

import (
    "os"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadFromString(t *testing.T) {
    toml := `
[site]
domain = "https://simpleisadvanced.com"
books = ["illusions-of-work", "ai-illusions-in-the-boardroom"]
author-url = "https://www.linkedin.com/in/adrianmcphee/"

[build]
data-dir = "data"
max-paragraphs = 4
`

    cfg, err := LoadFromString(toml)
    require.NoError(t, err)

    assert.Equal(t, "https://simpleisadvanced.com", cfg.Site.Domain)
    assert.Equal(t, []string{"illusions-of-work", "ai-illusions-in-the-boardroom"}, cfg.Site.Books)
    assert.Equal(t, 4, cfg.Build.MaxParagraphs)

    // Unset keys keep their defaults
    assert.Equal(t, "chapters", cfg.Build.ChaptersDir)
    assert.Equal(t, ".chapter-urls.txt", cfg.Build.Manifest)
}

func TestDefaults(t *testing.T) {
    cfg := NewDefaultConfig()

    assert.Equal(t, 3, cfg.Build.MaxParagraphs)
    assert.Equal(t, "data", cfg.Build.DataDir)
    assert.True(t, cfg.Excluded("About the Author"))
    assert.False(t, cfg.Excluded("Chapter One"))
}

func TestLoadFromStringInvalid(t *testing.T) {
    _, err := LoadFromString("[site\ndomain =")
    require.Error(t, err)
}

func TestUpdateFromEnv(t *testing.T) {
    // set and ensure cleanup
    _ = os.Setenv("CHAPTERPAGES_SITE__DOMAIN", "https://env.example.com")
    _ = os.Setenv("CHAPTERPAGES_BUILD__MAX-PARAGRAPHS", "5")
    t.Cleanup(func(){
        _ = os.Unsetenv("CHAPTERPAGES_SITE__DOMAIN")
        _ = os.Unsetenv("CHAPTERPAGES_BUILD__MAX-PARAGRAPHS")
    })

    cfg := NewDefaultConfig()
    cfg.UpdateFromEnv()

    assert.Equal(t, "https://env.example.com", cfg.Site.Domain)
    assert.Equal(t, 5, cfg.Build.MaxParagraphs)
}

func TestSetBooksList(t *testing.T) {
    cfg := NewDefaultConfig()
    cfg.Set("site.books", "one, two,three")
    assert.Equal(t, []string{"one", "two", "three"}, cfg.Site.Books)
}
