// Package compat drops or substitutes template sections whose content model
// does not fit the project's sector.
package compat

import (
	"sort"
	"strings"

	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
)

// Transform maps a section's props into the replacement type's shape. It
// receives a private copy and may return it modified.
type Transform func(props section.Props) section.Props

type Replacement struct {
	Type      string
	Transform Transform
}

// Rule lists the sectors a section type is meaningful for and what to use
// instead elsewhere. A nil Replacement drops the section.
type Rule struct {
	Allowed     []string
	Replacement *Replacement
}

// Filter applies rules to specs in order.
type Filter struct {
	rules map[string]Rule
}

func NewFilter(rules map[string]Rule) *Filter {
	cp := make(map[string]Rule, len(rules))
	for typ, r := range rules {
		cp[typ] = r
	}
	return &Filter{rules: cp}
}

// Default uses the built-in rule table.
func Default() *Filter {
	return NewFilter(defaultRules)
}

// Rule returns the rule registered for typ.
func (f *Filter) Rule(typ string) (Rule, bool) {
	r, ok := f.rules[typ]
	return r, ok
}

// Types lists the section types that carry a rule.
func (f *Filter) Types() []string {
	out := make([]string, 0, len(f.rules))
	for typ := range f.rules {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

// Apply returns new specs for sectorKey. An empty sector returns copies of
// specs unchanged. The input is never modified.
func (f *Filter) Apply(specs []section.Spec, sectorKey string) []section.Spec {
	if strings.TrimSpace(sectorKey) == "" {
		return section.CloneSpecs(specs)
	}
	canonical := sector.Canonical(sectorKey)
	out := make([]section.Spec, 0, len(specs))
	for _, spec := range specs {
		rule, ok := f.rules[spec.Type]
		if !ok || rule.allows(canonical) {
			out = append(out, spec.Clone())
			continue
		}
		if rule.Replacement == nil {
			continue
		}
		out = append(out, rule.Replacement.apply(spec))
	}
	return out
}

// Allows reports whether typ is meaningful for sectorKey.
func (f *Filter) Allows(typ, sectorKey string) bool {
	rule, ok := f.rules[typ]
	if !ok || strings.TrimSpace(sectorKey) == "" {
		return true
	}
	return rule.allows(sector.Canonical(sectorKey))
}

func (r Rule) allows(canonical string) bool {
	for _, a := range r.Allowed {
		a = sector.Normalize(a)
		if a == "" {
			continue
		}
		if strings.Contains(canonical, a) || strings.Contains(a, canonical) {
			return true
		}
	}
	return false
}

func (r Replacement) apply(spec section.Spec) section.Spec {
	props := spec.DefaultProps.Clone()
	if r.Transform != nil {
		props = r.Transform(props)
	}
	if props == nil {
		props = section.Props{}
	}
	return section.Spec{Type: r.Type, DefaultProps: props, Required: spec.Required}
}
