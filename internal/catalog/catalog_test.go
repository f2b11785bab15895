package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(c.All()) == 0 {
		t.Fatalf("default catalog is empty")
	}
	cat, ok := c.ByLink(" Home-Kitchen ")
	if !ok || cat.Name != "Home & Kitchen" {
		t.Fatalf("ByLink = %+v, %v", cat, ok)
	}
	if _, ok := c.ByLink("spaceships"); ok {
		t.Fatalf("unknown link resolved")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	data := []byte("categories:\n  - name: Garden\n    link: GARDEN\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if all := c.All(); len(all) != 1 || all[0].Link != "garden" {
		t.Fatalf("unexpected categories %+v", all)
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	bad := map[string]string{
		"empty":          "categories: []\n",
		"missing link":   "categories:\n  - name: A\n",
		"duplicate link": "categories:\n  - {name: A, link: a}\n  - {name: B, link: A}\n",
		"duplicate name": "categories:\n  - {name: A, link: a}\n  - {name: A, link: b}\n",
		"not yaml":       "categories: [",
	}
	for name, src := range bad {
		if _, err := Parse([]byte(src)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
