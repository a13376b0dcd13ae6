package editor

import (
	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
)

// BuildSections turns mapped specs into instances. Scalar props of a previous
// section of the same type carry over; arrays and objects come from the spec.
// A footer is appended when contact data exists and no spec provides one.
func BuildSections(specs []section.Spec, previous []section.Instance, data project.Data, inj Injector, newID func() string) []section.Instance {
	if inj == nil {
		inj = nopInjector{}
	}
	prior := make(map[string]section.Props, len(previous))
	for _, s := range previous {
		if _, seen := prior[s.Type]; !seen {
			prior[s.Type] = s.Props
		}
	}
	sectorKey := sector.Canonical(data.Sector)

	out := make([]section.Instance, 0, len(specs)+1)
	for _, spec := range specs {
		props := spec.DefaultProps.Clone()
		if props == nil {
			props = section.Props{}
		}
		if old, ok := prior[spec.Type]; ok {
			carryScalars(props, old)
		}
		inj.Inject(spec.Type, props, data)
		props[section.SectorField] = sectorKey
		out = append(out, section.Instance{ID: newID(), Type: spec.Type, Props: props, Locked: spec.Required})
	}

	if contact := data.Contact(); !contact.Empty() && !hasType(out, section.FooterType) {
		props, _ := section.Defaults(section.FooterType)
		props["businessName"] = data.BusinessName()
		props["phone"] = contact.Phone
		props["email"] = contact.Email
		props["address"] = contact.Address
		if desc := data.Generated("pages.home.hero.subtitle"); desc != "" {
			props["description"] = desc
		}
		props[section.SectorField] = sectorKey
		out = append(out, section.Instance{ID: newID(), Type: section.FooterType, Props: props})
	}
	return out
}

func carryScalars(dst, src section.Props) {
	for k, v := range src {
		if section.IsScalar(v) {
			dst[k] = v
		}
	}
}

func hasType(list []section.Instance, typ string) bool {
	for _, s := range list {
		if s.Type == typ {
			return true
		}
	}
	return false
}
