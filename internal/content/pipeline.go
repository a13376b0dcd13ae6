// Package content turns abstract template section specs into filled specs for
// one project: sector filtering, per-kind mapping and label rewriting.
package content

import (
	"vitrin/api/internal/compat"
	"vitrin/api/internal/mapper"
	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
)

type Pipeline struct {
	mappers *mapper.Registry
	filter  *compat.Filter
}

func NewPipeline(mappers *mapper.Registry, filter *compat.Filter) *Pipeline {
	if mappers == nil {
		mappers = mapper.Default()
	}
	if filter == nil {
		filter = compat.Default()
	}
	return &Pipeline{mappers: mappers, filter: filter}
}

// DefaultPipeline wires the built-in mappers and compatibility rules.
func DefaultPipeline() *Pipeline {
	return NewPipeline(nil, nil)
}

// MapSections returns new specs with props filled for data. specs is not
// modified and shares nothing with the result.
func (p *Pipeline) MapSections(specs []section.Spec, data project.Data) []section.Spec {
	filtered := p.filter.Apply(specs, data.Sector)
	in := mapper.NewInput(data)
	out := make([]section.Spec, 0, len(filtered))
	for _, spec := range filtered {
		props, _ := p.mappers.Apply(spec.Type, spec.DefaultProps, in)
		if props == nil {
			props = section.Props{}
		}
		props = RewriteLabels(props, in)
		out = append(out, section.Spec{Type: spec.Type, DefaultProps: props, Required: spec.Required})
	}
	return out
}
