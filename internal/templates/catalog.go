// Package templates loads the built-in site template catalog and theme presets.
package templates

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"vitrin/api/internal/section"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Definition is an immutable template blueprint. Lookups hand out copies.
type Definition struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Sector      string         `json:"sector,omitempty"`
	ThemeID     string         `json:"theme"`
	Sections    []section.Spec `json:"sections"`
}

func (d Definition) clone() Definition {
	d.Sections = section.CloneSpecs(d.Sections)
	return d
}

// Summary is the listing view of a definition.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Sector       string `json:"sector,omitempty"`
	ThemeID      string `json:"theme"`
	SectionCount int    `json:"sectionCount"`
}

type Catalog struct {
	defs   map[string]Definition
	order  []string
	themes map[string]section.Theme
}

type rawCatalog struct {
	Themes []struct {
		ID     string            `yaml:"id"`
		Values map[string]string `yaml:"values"`
	} `yaml:"themes"`
	Templates []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Sector      string `yaml:"sector"`
		Theme       string `yaml:"theme"`
		Sections    []struct {
			Type         string         `yaml:"type"`
			Required     bool           `yaml:"required"`
			DefaultProps map[string]any `yaml:"defaultProps"`
		} `yaml:"sections"`
	} `yaml:"templates"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(builtinCatalog)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a YAML catalog. Section props start from the per-type
// defaults and the template's own defaultProps are layered on top.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}
	c := &Catalog{
		defs:   make(map[string]Definition, len(raw.Templates)),
		themes: make(map[string]section.Theme, len(raw.Themes)),
	}
	for _, th := range raw.Themes {
		if th.ID == "" {
			return nil, fmt.Errorf("parse template catalog: theme without id")
		}
		c.themes[th.ID] = section.Theme(th.Values)
	}
	for _, t := range raw.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("parse template catalog: template without id")
		}
		if _, dup := c.defs[t.ID]; dup {
			return nil, fmt.Errorf("parse template catalog: duplicate template %q", t.ID)
		}
		if _, ok := c.themes[t.Theme]; t.Theme != "" && !ok {
			return nil, fmt.Errorf("parse template catalog: template %q references unknown theme %q", t.ID, t.Theme)
		}
		def := Definition{ID: t.ID, Name: t.Name, Description: t.Description, Sector: t.Sector, ThemeID: t.Theme}
		for _, s := range t.Sections {
			if !section.KnownType(s.Type) {
				return nil, fmt.Errorf("parse template catalog: template %q uses unknown section %q", t.ID, s.Type)
			}
			props, _ := section.Defaults(s.Type)
			overrides, err := section.NormalizeProps(s.DefaultProps)
			if err != nil {
				return nil, fmt.Errorf("parse template catalog: template %q: %w", t.ID, err)
			}
			for k, v := range overrides {
				props[k] = v
			}
			def.Sections = append(def.Sections, section.Spec{Type: s.Type, DefaultProps: props, Required: s.Required})
		}
		c.defs[t.ID] = def
		c.order = append(c.order, t.ID)
	}
	return c, nil
}

// Lookup returns a private copy of the definition.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	def, ok := c.defs[id]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Theme returns a copy of the named theme preset.
func (c *Catalog) Theme(id string) (section.Theme, bool) {
	th, ok := c.themes[id]
	if !ok {
		return nil, false
	}
	return th.Clone(), true
}

// List returns summaries in catalog order.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, id := range c.order {
		d := c.defs[id]
		out = append(out, Summary{
			ID:           d.ID,
			Name:         d.Name,
			Description:  d.Description,
			Sector:       d.Sector,
			ThemeID:      d.ThemeID,
			SectionCount: len(d.Sections),
		})
	}
	return out
}

// ThemeIDs lists theme preset ids in lexical order.
func (c *Catalog) ThemeIDs() []string {
	out := make([]string, 0, len(c.themes))
	for id := range c.themes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
