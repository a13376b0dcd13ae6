// Package mapper fills section props from business data and sector profiles.
// Mappers are pure: they read props and input and return overrides, which the
// registry merges onto a copy of the props for keys the section already has.
package mapper

import (
	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
)

// Input is everything a mapper may read besides the section's own props.
type Input struct {
	Data       project.Data
	Sector     string
	Profile    sector.Profile
	HasProfile bool
}

// NewInput resolves the sector of data once for a whole template.
func NewInput(data project.Data) Input {
	profile, ok := sector.Resolve(data.Sector)
	return Input{
		Data:       data,
		Sector:     sector.Canonical(data.Sector),
		Profile:    profile,
		HasProfile: ok,
	}
}

// Func returns overrides for props. It must not modify props.
type Func func(props section.Props, in Input) section.Props

type entry struct {
	fn      Func
	sectors []string
}

type Registry struct {
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register binds fn to each type. A non-empty sectors list restricts fn to
// those canonical sector keys.
func (r *Registry) Register(types []string, fn Func, sectors ...string) {
	for _, typ := range types {
		r.entries[typ] = entry{fn: fn, sectors: append([]string(nil), sectors...)}
	}
}

func (r *Registry) Has(typ string) bool {
	_, ok := r.entries[typ]
	return ok
}

// Apply runs the mapper for typ and merges its overrides onto a copy of props.
// applied is false when no mapper exists or the sector gate is closed; props
// are then returned as an untouched copy.
func (r *Registry) Apply(typ string, props section.Props, in Input) (out section.Props, applied bool) {
	e, ok := r.entries[typ]
	if !ok || !e.allows(in.Sector) {
		return props.Clone(), false
	}
	return MergeIfPresent(props, e.fn(props, in)), true
}

func (e entry) allows(sectorKey string) bool {
	if len(e.sectors) == 0 {
		return true
	}
	for _, s := range e.sectors {
		if s == sectorKey {
			return true
		}
	}
	return false
}

// MergeIfPresent returns a deep copy of base with each override applied only
// when base already has that key.
func MergeIfPresent(base, overrides section.Props) section.Props {
	out := base.Clone()
	if out == nil {
		out = section.Props{}
	}
	for k, v := range overrides {
		if _, ok := base[k]; ok {
			out[k] = section.CloneValue(v)
		}
	}
	return out
}

// Default registers one mapper per section kind against every type of that kind.
func Default() *Registry {
	r := NewRegistry()
	r.Register(section.TypesOf(section.KindHero), Hero)
	r.Register(section.TypesOf(section.KindServices), Services)
	r.Register(section.TypesOf(section.KindAbout), About)
	r.Register(section.TypesOf(section.KindContact), Contact)
	r.Register(section.TypesOf(section.KindCTA), CTA)
	r.Register(section.TypesOf(section.KindTeam), Team)
	r.Register(section.TypesOf(section.KindTestimonials), Testimonials)
	r.Register(section.TypesOf(section.KindAppointment), Appointment)
	r.Register(section.TypesOf(section.KindFAQ), FAQ)
	r.Register(section.TypesOf(section.KindMenu), Menu)
	r.Register(section.TypesOf(section.KindStats), Stats)
	return r
}
