// Package content holds the static tables behind every informational page.
package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the full set of site content, one table per domain.
type Catalog struct {
	Stats        []Stat          `yaml:"stats" json:"stats"`
	Benefits     []Feature       `yaml:"benefits" json:"benefits"`
	Comparison   []ComparisonRow `yaml:"comparison" json:"comparison"`
	FAQs         []FAQ           `yaml:"faqs" json:"faqs"`
	Installation Installation    `yaml:"installation" json:"installation"`
	Software     Software        `yaml:"software" json:"software"`
	Community    Community       `yaml:"community" json:"community"`
	Why          Why             `yaml:"why" json:"why"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the cross-table invariants of the catalog.
func (c *Catalog) Validate() error {
	for _, row := range c.Comparison {
		for _, v := range []Verdict{row.Ubuntu.Verdict, row.Mac.Verdict, row.Windows.Verdict} {
			switch v {
			case VerdictGood, VerdictPartial, VerdictBad:
			default:
				return fmt.Errorf("comparison %q: invalid verdict %q", row.Feature, v)
			}
		}
	}

	seen := make(map[string]bool)
	for _, cat := range c.Software.Categories {
		if seen[cat.ID] {
			return fmt.Errorf("duplicate software category %q", cat.ID)
		}
		seen[cat.ID] = true
	}
	if len(c.Software.Categories) > 0 && !seen[c.Software.DefaultCategory] {
		return fmt.Errorf("default software category %q not found", c.Software.DefaultCategory)
	}

	recommended := 0
	for _, m := range c.Installation.Methods {
		if m.Recommended {
			recommended++
		}
	}
	if recommended > 1 {
		return fmt.Errorf("%d installation methods marked recommended, want at most 1", recommended)
	}
	return nil
}

// SoftwareCategory returns the category with the given id. Unknown or empty
// ids fall back to the default category.
func (c *Catalog) SoftwareCategory(id string) Category {
	var fallback Category
	for _, cat := range c.Software.Categories {
		if cat.ID == id {
			return cat
		}
		if cat.ID == c.Software.DefaultCategory {
			fallback = cat
		}
	}
	return fallback
}

// SearchSoftware returns apps whose name, description or Windows
// equivalent contains query, case-insensitively.
func (c *Catalog) SearchSoftware(query string) []SoftwareApp {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []SoftwareApp
	for _, cat := range c.Software.Categories {
		for _, app := range cat.Apps {
			if q == "" ||
				strings.Contains(strings.ToLower(app.Name), q) ||
				strings.Contains(strings.ToLower(app.Description), q) ||
				strings.Contains(strings.ToLower(app.WindowsEquivalent), q) {
				out = append(out, app)
			}
		}
	}
	return out
}

// RecommendedMethod returns the installation method flagged recommended.
func (c *Catalog) RecommendedMethod() (Method, bool) {
	for _, m := range c.Installation.Methods {
		if m.Recommended {
			return m, true
		}
	}
	return Method{}, false
}
