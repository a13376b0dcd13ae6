package mapper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"vitrin/api/internal/section"
	"vitrin/api/internal/sector"
)

// Hero fills headline copy from generated content, else the sector profile.
func Hero(_ section.Props, in Input) section.Props {
	o := section.Props{}
	p := in.Profile
	set(o, "title", in.Data.Generated("pages.home.hero.title"), p.HeroTitle)
	set(o, "subtitle", in.Data.Generated("pages.home.hero.subtitle"), p.HeroSubtitle)
	set(o, "description", in.Data.Generated("pages.home.hero.description"), p.HeroDescription)

	name := in.Data.BusinessName()
	set(o, "badge", name)
	set(o, "name", name)
	set(o, "bio", in.Data.Generated("pages.about.story.content"), in.Data.Generated("pages.home.welcome.content"), p.AboutDescription)
	return o
}

// Services zips a service list onto the section's existing repeatable slots.
func Services(props section.Props, in Input) section.Props {
	o := section.Props{}
	if items := serviceItems(in); len(items) > 0 {
		for _, key := range []string{"services", "features", "treatments", "areas"} {
			if slots := props.List(key); slots != nil {
				o[key] = zipServices(slots, items)
			}
		}
	}
	set(o, "sectionTitle", in.Data.Generated("pages.services.title"), in.Profile.Vocabulary.Services)
	return o
}

func About(_ section.Props, in Input) section.Props {
	o := section.Props{}
	set(o, "title",
		in.Data.Generated("pages.about.story.title"),
		in.Data.Generated("pages.home.welcome.title"),
		in.Profile.AboutTitle)
	set(o, "description",
		in.Data.Generated("pages.about.story.content"),
		in.Data.Generated("pages.home.welcome.content"),
		in.Profile.AboutDescription)
	return o
}

// Contact only overrides fields the generated contact page actually has.
func Contact(_ section.Props, in Input) section.Props {
	o := section.Props{}
	c := in.Data.GeneratedContact()
	set(o, "phone", c.Phone)
	set(o, "email", c.Email)
	set(o, "address", c.Address)
	set(o, "mapQuery", c.Address)
	return o
}

func CTA(_ section.Props, in Input) section.Props {
	o := section.Props{}
	if name := in.Data.BusinessName(); name != "" {
		o["title"] = fmt.Sprintf("%s ile Tanışın", name)
	}
	set(o, "buttonText", in.Profile.CTAText)
	return o
}

// Team promotes the first generated member to the section headline.
func Team(_ section.Props, in Input) section.Props {
	o := section.Props{}
	if members := in.Data.GeneratedList("pages.about.team"); len(members) > 0 {
		if first, ok := members[0].(map[string]any); ok {
			name, bio := str(first["name"]), str(first["bio"])
			set(o, "title", name)
			set(o, "description", bio)
			set(o, "name", name)
			set(o, "bio", bio)
		}
	}
	set(o, "sectionTitle", in.Profile.Vocabulary.Team)
	return o
}

// Testimonials rewrites the section label and each slot's role for the sector
// and zips upstream testimonials onto existing slots. An upstream role wins
// over the sector role.
func Testimonials(props section.Props, in Input) section.Props {
	o := section.Props{}
	label, hasLabel := testimonialLabels[in.Sector]
	if hasLabel {
		o["sectionTitle"] = label.Title
	}
	slots := props.List("testimonials")
	upstream := in.Data.GeneratedList("pages.home.testimonials")
	if slots == nil || (!hasLabel && len(upstream) == 0) {
		return o
	}
	out := make([]any, len(slots))
	for i, slot := range slots {
		rec, ok := slot.(map[string]any)
		if !ok {
			out[i] = section.CloneValue(slot)
			continue
		}
		patch := section.Props{}
		if hasLabel {
			patch["role"] = label.Role
		}
		if i < len(upstream) {
			if up, ok := upstream[i].(map[string]any); ok {
				set(patch, "name", str(up["name"]))
				set(patch, "content", str(up["content"]), str(up["text"]))
				set(patch, "role", str(up["role"]))
			}
		}
		out[i] = map[string]any(MergeIfPresent(section.Props(rec), patch))
	}
	o["testimonials"] = out
	return o
}

func Appointment(_ section.Props, in Input) section.Props {
	o := section.Props{}
	if term := in.Profile.Vocabulary.Appointment; term != "" {
		o["title"] = "Online " + term
		o["submitText"] = term + " Oluştur"
		o["buttonText"] = term + " Oluştur"
	}
	set(o, "subtitle", appointmentSubtitles[in.Sector])
	set(o, "phone", in.Data.Contact().Phone)
	return o
}

// FAQ replaces the whole items list with the sector's canned set.
func FAQ(_ section.Props, in Input) section.Props {
	return section.Props{"items": faqItems(faqSetFor(in.Sector))}
}

func Menu(_ section.Props, in Input) section.Props {
	o := section.Props{}
	if mc, ok := lookupBySector(menuCopy, in.Sector); ok {
		o["title"] = mc.Title
		o["subtitle"] = mc.Subtitle
	}
	return o
}

// Stats prefers generated statistics, then the sector's canned numbers.
func Stats(_ section.Props, in Input) section.Props {
	o := section.Props{}
	if generated := statItems(in.Data.GeneratedList("pages.home.statistics")); len(generated) > 0 {
		o["stats"] = generated
		return o
	}
	if stats, ok := lookupBySector(statSets, in.Sector); ok {
		out := make([]any, len(stats))
		for i, s := range stats {
			out[i] = map[string]any{"value": s.Value, "label": s.Label}
		}
		o["stats"] = out
	}
	return o
}

// set stores the first non-empty candidate under key.
func set(o section.Props, key string, candidates ...string) {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			o[key] = c
			return
		}
	}
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func serviceItems(in Input) []sector.Service {
	for _, path := range []string{"pages.services.list", "pages.home.highlights"} {
		if items := toServices(in.Data.GeneratedList(path)); len(items) > 0 {
			return items
		}
	}
	return in.Profile.Services
}

func toServices(list []any) []sector.Service {
	var out []sector.Service
	for _, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := str(rec["title"])
		if title == "" {
			title = str(rec["name"])
		}
		if title == "" {
			continue
		}
		out = append(out, sector.Service{Title: title, Description: str(rec["description"])})
	}
	return out
}

// zipServices overwrites title/description positionally. Slots past the end
// of items keep their content; extra items are ignored.
func zipServices(slots []any, items []sector.Service) []any {
	out := make([]any, len(slots))
	for i, slot := range slots {
		rec, ok := slot.(map[string]any)
		if !ok || i >= len(items) {
			out[i] = section.CloneValue(slot)
			continue
		}
		patch := section.Props{"title": items[i].Title, "name": items[i].Title}
		if items[i].Description != "" {
			patch["description"] = items[i].Description
		}
		out[i] = map[string]any(MergeIfPresent(section.Props(rec), patch))
	}
	return out
}

// statValue renders a statistic as display text. JSON numbers arrive as
// float64 and must not fall into exponent notation.
func statValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case json.Number:
		return n.String()
	}
	return fmt.Sprint(v)
}

func statItems(list []any) []any {
	var out []any
	for _, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value, label := statValue(rec["value"]), str(rec["label"])
		if value == "" || label == "" {
			continue
		}
		out = append(out, map[string]any{"value": value, "label": label})
	}
	return out
}
