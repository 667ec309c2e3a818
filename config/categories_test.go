package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogParse(t *testing.T) {
	c := DefaultCatalog()
	err := c.Parse(`
[board]
default_category = "GALLERY"

[[board.categories]]
key = "NOTICE"
title = "공지"

[[board.categories]]
key = "GALLERY"
title = "갤러리"
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := c.Default(); got != "GALLERY" {
		t.Errorf("Default() = %q, want GALLERY", got)
	}
	if got := c.Title("NOTICE"); got != "공지" {
		t.Errorf("Title(NOTICE) = %q, want 공지", got)
	}
	if got := len(c.Categories()); got != 2 {
		t.Errorf("len(Categories()) = %d, want 2", got)
	}
}

func TestCatalogParseRejectsEmpty(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Parse("[board]\ndefault_category = \"NOTICE\"\n"); err == nil {
		t.Fatal("Parse() error = nil, want error for a catalog without categories")
	}
	// a failed parse keeps the previous catalog
	if got := c.Resolve("GALLERY"); got != "GALLERY" {
		t.Errorf("Resolve(GALLERY) = %q after failed parse, want GALLERY", got)
	}
}

func TestCatalogUnknownDefaultFallsBackToFirst(t *testing.T) {
	c := DefaultCatalog()
	err := c.Parse(`
[board]
default_category = "MISSING"

[[board.categories]]
key = "FREE"
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := c.Default(); got != "FREE" {
		t.Errorf("Default() = %q, want FREE", got)
	}
	if got := c.Title("FREE"); got != DefaultBoardTitle {
		t.Errorf("Title(FREE) = %q, want %q", got, DefaultBoardTitle)
	}
}

func TestCatalogResolve(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		in, want string
	}{
		{"NOTICE", "NOTICE"},
		{"GALLERY", "GALLERY"},
		{"gallery", "NOTICE"},
		{"", "NOTICE"},
		{"<script>", "NOTICE"},
	}
	for _, tt := range tests {
		if got := c.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalogTitle(t *testing.T) {
	c := DefaultCatalog()
	if got := c.Title("GALLERY"); got != "갤러리" {
		t.Errorf("Title(GALLERY) = %q, want 갤러리", got)
	}
	if got := c.Title("UNKNOWN"); got != DefaultBoardTitle {
		t.Errorf("Title(UNKNOWN) = %q, want %q", got, DefaultBoardTitle)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	c, err := LoadCatalog(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := c.Default(); got != "NOTICE" {
		t.Errorf("Default() = %q, want NOTICE", got)
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.toml")
	data := "[board]\n[[board.categories]]\nkey = \"QNA\"\ntitle = \"질문\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := c.Resolve("NOTICE"); got != "QNA" {
		t.Errorf("Resolve(NOTICE) = %q, want QNA", got)
	}
}
