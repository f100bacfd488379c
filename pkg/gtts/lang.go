package gtts

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

//go:embed langs.yaml
var langsYAML []byte

// Catalog maps IETF language tags to display names. A Catalog is never
// modified after construction.
type Catalog map[string]string

var defaultCatalog = sync.OnceValues(func() (Catalog, error) {
	return ParseCatalog(langsYAML)
})

// DefaultCatalog returns the built-in catalog of documented languages.
func DefaultCatalog() Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog parses a YAML mapping of tag to name.
func ParseCatalog(data []byte) (Catalog, error) {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("gtts: parse catalog: %w", err)
	}
	return NewCatalog(m)
}

// NewCatalog copies m into a Catalog. Empty tags are rejected.
func NewCatalog(m map[string]string) (Catalog, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("gtts: catalog is empty")
	}
	c := make(Catalog, len(m))
	for tag, name := range m {
		if tag == "" {
			return nil, fmt.Errorf("gtts: catalog has an empty tag")
		}
		c[tag] = name
	}
	return c, nil
}

// Has reports whether tag is in the catalog.
func (c Catalog) Has(tag string) bool {
	_, ok := c[tag]
	return ok
}

// Name returns the display name of tag.
func (c Catalog) Name(tag string) string {
	return c[tag]
}

// Tags returns all tags sorted.
func (c Catalog) Tags() []string {
	return slices.Sorted(maps.Keys(c))
}

// Suggest returns the catalog tag closest to tag, for hinting after a
// failed lookup. It reports false when tag is not a well-formed language
// tag or nothing in the catalog is a plausible match.
func (c Catalog) Suggest(tag string) (string, bool) {
	want, err := language.Parse(tag)
	if err != nil {
		return "", false
	}

	var (
		keys      []string
		supported []language.Tag
	)
	for _, k := range c.Tags() {
		t, err := language.Parse(k)
		if err != nil {
			continue
		}
		keys = append(keys, k)
		supported = append(supported, t)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, idx, conf := language.NewMatcher(supported).Match(want)
	if conf == language.No {
		return "", false
	}
	return keys[idx], true
}
