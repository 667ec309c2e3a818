package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

// DefaultBoardTitle is shown for categories that have no title of their own.
const DefaultBoardTitle = "게시판"

type Category struct {
	Key   string `mapstructure:"key" json:"key"`
	Title string `mapstructure:"title" json:"title"`
}

// Catalog is the fixed set of board categories. It is safe for concurrent
// use and may be swapped underneath readers by Watch.
type Catalog struct {
	mu         sync.RWMutex
	defaultKey string
	categories []Category
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		defaultKey: "NOTICE",
		categories: []Category{
			{Key: "NOTICE", Title: "게시판"},
			{Key: "GALLERY", Title: "갤러리"},
		},
	}
}

// LoadCatalog reads the category file. A missing file yields the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	c := DefaultCatalog()
	if err := c.Reload(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info().Str("file", path).Msg("category file not found, using built-in categories")
			return c, nil
		}
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Reload(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.Parse(string(b))
}

// Parse replaces the catalog with the [board] section of a TOML document.
func (c *Catalog) Parse(data string) error {
	m := map[string]interface{}{}
	if _, err := toml.Decode(data, &m); err != nil {
		return fmt.Errorf("failed to decode category file: %w", err)
	}

	var board struct {
		DefaultCategory string     `mapstructure:"default_category"`
		Categories      []Category `mapstructure:"categories"`
	}
	if err := mapstructure.Decode(m["board"], &board); err != nil {
		return fmt.Errorf("failed to decode board configuration items: %w", err)
	}
	if len(board.Categories) == 0 {
		return errors.New("category file declares no categories")
	}

	for _, cat := range board.Categories {
		if cat.Key == "" {
			return errors.New("category without key")
		}
	}

	def := board.DefaultCategory
	if def == "" || !containsKey(board.Categories, def) {
		def = board.Categories[0].Key
	}

	c.mu.Lock()
	c.defaultKey = def
	c.categories = board.Categories
	c.mu.Unlock()
	return nil
}

func containsKey(cats []Category, key string) bool {
	for _, cat := range cats {
		if cat.Key == key {
			return true
		}
	}
	return false
}

func (c *Catalog) Categories() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultKey
}

// Resolve returns key when it names a known category, the default otherwise.
func (c *Catalog) Resolve(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if containsKey(c.categories, key) {
		return key
	}
	return c.defaultKey
}

func (c *Catalog) Title(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.categories {
		if cat.Key == key && cat.Title != "" {
			return cat.Title
		}
	}
	return DefaultBoardTitle
}

// Watch reloads the catalog whenever the file changes. The returned func
// stops the watcher.
func (c *Catalog) Watch(path string) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to build category watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch category directory: %w", err)
	}

	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != target || !e.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if err := c.Reload(path); err != nil {
					log.Error().Err(err).Str("file", path).Msg("failed to reload categories")
					continue
				}
				log.Info().Str("file", path).Msg("categories reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("category watcher error")
			}
		}
	}()

	return w.Close, nil
}
