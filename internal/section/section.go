// Package section defines the section document model: placed instances,
// template specs, styles and themes, plus the per-type defaults and renderer
// descriptors every other package agrees on.
package section

import (
	"encoding/json"
	"fmt"
)

// Props is a section's content. Values follow JSON shapes: string, float64,
// bool, map[string]any, []any.
type Props map[string]any

// Style maps visual option keys to enum-like values.
type Style map[string]string

// Theme is the flat document theme (colors, fonts, radius).
type Theme map[string]string

// SectorField is stamped on template-applied sections for the editor UI.
const SectorField = "_sector"

type Instance struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Props  Props  `json:"props"`
	Style  Style  `json:"style,omitempty"`
	Locked bool   `json:"locked,omitempty"`
}

// Spec is one entry of a template definition.
type Spec struct {
	Type         string `json:"type" yaml:"type"`
	DefaultProps Props  `json:"defaultProps" yaml:"defaultProps"`
	Required     bool   `json:"required,omitempty" yaml:"required"`
}

// Clone deep-copies p. A nil Props stays nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = CloneValue(v)
	}
	return out
}

// String returns the string stored at key or "".
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// List returns the list stored at key, or nil if the key holds anything else.
func (p Props) List(key string) []any {
	l, _ := p[key].([]any)
	return l
}

func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (t Theme) Clone() Theme {
	if t == nil {
		return nil
	}
	out := make(Theme, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (i Instance) Clone() Instance {
	i.Props = i.Props.Clone()
	i.Style = i.Style.Clone()
	return i
}

func (s Spec) Clone() Spec {
	s.DefaultProps = s.DefaultProps.Clone()
	return s
}

func CloneInstances(in []Instance) []Instance {
	if in == nil {
		return nil
	}
	out := make([]Instance, len(in))
	for i, inst := range in {
		out[i] = inst.Clone()
	}
	return out
}

func CloneSpecs(in []Spec) []Spec {
	if in == nil {
		return nil
	}
	out := make([]Spec, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

// CloneValue deep-copies JSON-shaped values keeping their concrete types.
// Other values are returned as-is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = CloneValue(item)
		}
		return out
	case Props:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item).(map[string]any)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, item := range t {
			out[k] = item
		}
		return out
	default:
		return v
	}
}

// NormalizeProps rewrites decoded values (YAML ints, typed maps) into the JSON
// shapes used everywhere else so documents compare and persist consistently.
func NormalizeProps(p map[string]any) (Props, error) {
	if p == nil {
		return Props{}, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("normalize props: %w", err)
	}
	out := Props{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("normalize props: %w", err)
	}
	return out, nil
}

// IsScalar reports whether v is a non-empty string or a number, the only
// values carried across template switches.
func IsScalar(v any) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	}
	return false
}
