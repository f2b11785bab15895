// Package catalog holds the fixed list of product categories and the URL
// links the storefront uses for them.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCategories []byte

type Category struct {
	Name string `yaml:"name" json:"name"`
	Link string `yaml:"link" json:"link"`
}

type file struct {
	Categories []Category `yaml:"categories"`
}

// Catalog is read-only after Load.
type Catalog struct {
	categories []Category
	byLink     map[string]Category
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCategories)
}

// Load reads a catalog file, falling back to the embedded one when path is
// empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	c := &Catalog{byLink: make(map[string]Category, len(f.Categories))}
	names := map[string]struct{}{}
	for i, cat := range f.Categories {
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Link = strings.ToLower(strings.TrimSpace(cat.Link))
		if cat.Name == "" || cat.Link == "" {
			return nil, fmt.Errorf("category #%d needs name and link", i+1)
		}
		if _, dup := c.byLink[cat.Link]; dup {
			return nil, fmt.Errorf("duplicate category link %q", cat.Link)
		}
		if _, dup := names[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category name %q", cat.Name)
		}
		names[cat.Name] = struct{}{}
		c.byLink[cat.Link] = cat
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// All returns the categories in file order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByLink resolves a storefront link (case-insensitive) to its category.
func (c *Catalog) ByLink(link string) (Category, bool) {
	cat, ok := c.byLink[strings.ToLower(strings.TrimSpace(link))]
	return cat, ok
}
