package section

import "sort"

// Kind groups section types that share a content shape and mapper.
type Kind string

const (
	KindHero         Kind = "hero"
	KindServices     Kind = "services"
	KindAbout        Kind = "about"
	KindContact      Kind = "contact"
	KindCTA          Kind = "cta"
	KindTeam         Kind = "team"
	KindTestimonials Kind = "testimonials"
	KindAppointment  Kind = "appointment"
	KindFAQ          Kind = "faq"
	KindMenu         Kind = "menu"
	KindStats        Kind = "stats"
	KindGallery      Kind = "gallery"
	KindFooter       Kind = "footer"
	KindOther        Kind = "other"
)

// FooterType is synthesized after template application when contact data exists.
const FooterType = "SiteFooter"

// Renderer describes how the editor presents a section type.
type Renderer struct {
	Type   string   `json:"type"`
	Kind   Kind     `json:"kind"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

type Registry struct {
	renderers map[string]Renderer
}

func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, rd := range renderers {
		r.renderers[rd.Type] = rd
	}
	return r
}

// DefaultRegistry covers every type in the default props table.
func DefaultRegistry() *Registry {
	out := make([]Renderer, 0, len(catalog))
	for typ, entry := range catalog {
		out = append(out, Renderer{Type: typ, Kind: entry.kind, Label: entry.label, Fields: fieldNames(entry.props)})
	}
	return NewRegistry(out...)
}

// Lookup returns ok=false for unknown types; callers show a placeholder.
func (r *Registry) Lookup(typ string) (Renderer, bool) {
	rd, ok := r.renderers[typ]
	return rd, ok
}

func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.renderers))
	for typ := range r.renderers {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

// KindOf returns the kind of typ, KindOther when unknown.
func KindOf(typ string) Kind {
	if entry, ok := catalog[typ]; ok {
		return entry.kind
	}
	return KindOther
}

// TypesOf lists the known types of kind in lexical order.
func TypesOf(kind Kind) []string {
	var out []string
	for typ, entry := range catalog {
		if entry.kind == kind {
			out = append(out, typ)
		}
	}
	sort.Strings(out)
	return out
}

func fieldNames(p Props) []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
