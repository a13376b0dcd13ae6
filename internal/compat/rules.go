package compat

import "vitrin/api/internal/section"

var (
	foodSectors   = []string{"restaurant", "cafe", "bakery"}
	careSectors   = []string{"beauty_salon", "spa", "clinic", "dentist"}
	dentalSectors = []string{"dentist", "clinic"}
)

var defaultRules = map[string]Rule{
	"DentalServices": {
		Allowed:     dentalSectors,
		Replacement: &Replacement{Type: "ServicesGrid", Transform: toServicesGrid("services", "title")},
	},
	"DentalBooking": {
		Allowed:     []string{"dentist"},
		Replacement: &Replacement{Type: "AppointmentBooking", Transform: toAppointment},
	},
	"DentalTips": {
		Allowed: []string{"dentist"},
	},
	"HeroDental": {
		Allowed:     dentalSectors,
		Replacement: &Replacement{Type: "HeroCentered", Transform: toHero},
	},
	"HeroCafe": {
		Allowed:     foodSectors,
		Replacement: &Replacement{Type: "HeroCentered", Transform: toHero},
	},
	"HeroRestaurant": {
		Allowed:     foodSectors,
		Replacement: &Replacement{Type: "HeroCentered", Transform: toHero},
	},
	"HeroHotel": {
		Allowed:     []string{"hotel"},
		Replacement: &Replacement{Type: "HeroSplit", Transform: toHero},
	},
	"HeroLaw": {
		Allowed:     []string{"lawyer"},
		Replacement: &Replacement{Type: "HeroCentered", Transform: toHero},
	},
	"AboutCafe": {
		Allowed:     foodSectors,
		Replacement: &Replacement{Type: "AboutSplit", Transform: toAbout},
	},
	"RoomShowcase": {
		Allowed:     []string{"hotel"},
		Replacement: &Replacement{Type: "GalleryGrid", Transform: roomsToGallery},
	},
	"MenuShowcase": {
		Allowed:     foodSectors,
		Replacement: &Replacement{Type: "ServicesGrid", Transform: menuToServices},
	},
	"ReservationForm": {
		Allowed:     append([]string{"hotel"}, foodSectors...),
		Replacement: &Replacement{Type: "AppointmentBooking", Transform: toAppointment},
	},
	"TreatmentList": {
		Allowed:     careSectors,
		Replacement: &Replacement{Type: "ServicesGrid", Transform: toServicesGrid("treatments", "name")},
	},
	"ChefProfile": {
		Allowed:     []string{"restaurant", "cafe"},
		Replacement: &Replacement{Type: "TeamGrid", Transform: chefToTeam},
	},
	"PracticeAreas": {
		Allowed:     []string{"lawyer"},
		Replacement: &Replacement{Type: "ServicesGrid", Transform: toServicesGrid("areas", "title")},
	},
	"BeforeAfterGallery": {
		Allowed:     append([]string{"fitness"}, careSectors...),
		Replacement: &Replacement{Type: "GalleryGrid", Transform: pairsToGallery},
	},
	"PropertyListings": {
		Allowed: []string{"real_estate"},
	},
	"ClassSchedule": {
		Allowed: []string{"fitness"},
	},
}

func defaultsFor(typ string) section.Props {
	p, _ := section.Defaults(typ)
	return p
}

// carry copies non-empty string fields from src into dst under new names.
func carry(dst, src section.Props, pairs ...[2]string) {
	for _, pair := range pairs {
		if v := src.String(pair[0]); v != "" {
			dst[pair[1]] = v
		}
	}
}

func toServicesGrid(listKey, titleKey string) Transform {
	return func(p section.Props) section.Props {
		out := defaultsFor("ServicesGrid")
		carry(out, p, [2]string{"sectionTitle", "sectionTitle"}, [2]string{"title", "sectionTitle"}, [2]string{"sectionSubtitle", "sectionSubtitle"})
		var services []any
		for _, item := range p.List(listKey) {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			title, _ := rec[titleKey].(string)
			if title == "" {
				continue
			}
			desc, _ := rec["description"].(string)
			icon, _ := rec["icon"].(string)
			image, _ := rec["image"].(string)
			if icon == "" {
				icon = "star"
			}
			services = append(services, map[string]any{"title": title, "description": desc, "icon": icon, "image": image})
		}
		if len(services) > 0 {
			out["services"] = services
		}
		return out
	}
}

func toAppointment(p section.Props) section.Props {
	out := defaultsFor("AppointmentBooking")
	carry(out, p,
		[2]string{"title", "title"},
		[2]string{"subtitle", "subtitle"},
		[2]string{"buttonText", "submitText"},
		[2]string{"submitText", "submitText"},
		[2]string{"phone", "phone"})
	return out
}

func toHero(p section.Props) section.Props {
	out := defaultsFor("HeroCentered")
	carry(out, p,
		[2]string{"title", "title"},
		[2]string{"subtitle", "subtitle"},
		[2]string{"description", "description"},
		[2]string{"buttonText", "buttonText"},
		[2]string{"buttonLink", "buttonLink"},
		[2]string{"backgroundImage", "backgroundImage"})
	return out
}

func toAbout(p section.Props) section.Props {
	out := defaultsFor("AboutSplit")
	carry(out, p, [2]string{"title", "title"}, [2]string{"description", "description"}, [2]string{"image", "image"})
	return out
}

func menuToServices(p section.Props) section.Props {
	out := defaultsFor("ServicesGrid")
	carry(out, p, [2]string{"title", "sectionTitle"}, [2]string{"subtitle", "sectionSubtitle"})
	return out
}

func chefToTeam(p section.Props) section.Props {
	out := defaultsFor("TeamGrid")
	carry(out, p, [2]string{"sectionTitle", "sectionTitle"}, [2]string{"name", "title"}, [2]string{"bio", "description"})
	return out
}

func roomsToGallery(p section.Props) section.Props {
	out := defaultsFor("GalleryGrid")
	carry(out, p, [2]string{"sectionTitle", "sectionTitle"})
	var images []any
	for _, item := range p.List("rooms") {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		src, _ := rec["image"].(string)
		alt, _ := rec["name"].(string)
		images = append(images, map[string]any{"src": src, "alt": alt})
	}
	if len(images) > 0 {
		out["images"] = images
	}
	return out
}

func pairsToGallery(p section.Props) section.Props {
	out := defaultsFor("GalleryGrid")
	carry(out, p, [2]string{"sectionTitle", "sectionTitle"})
	var images []any
	for _, item := range p.List("pairs") {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		src, _ := rec["after"].(string)
		alt, _ := rec["caption"].(string)
		images = append(images, map[string]any{"src": src, "alt": alt})
	}
	if len(images) > 0 {
		out["images"] = images
	}
	return out
}
