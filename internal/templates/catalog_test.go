package templates

import (
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	list := c.List()
	if len(list) == 0 || list[0].ID != "dental-clinic" {
		t.Fatalf("unexpected catalog order: %#v", list)
	}
	for _, s := range list {
		def, ok := c.Lookup(s.ID)
		if !ok {
			t.Fatalf("listed template %s not found", s.ID)
		}
		if def.ThemeID != "" {
			if _, ok := c.Theme(def.ThemeID); !ok {
				t.Fatalf("template %s theme %s missing", s.ID, def.ThemeID)
			}
		}
		if len(def.Sections) != s.SectionCount {
			t.Fatalf("section count mismatch for %s", s.ID)
		}
	}
}

func TestDentalClinicDefinition(t *testing.T) {
	c, _ := Default()
	def, ok := c.Lookup("dental-clinic")
	if !ok {
		t.Fatalf("dental-clinic missing")
	}
	if !def.Sections[0].Required || def.Sections[0].Type != "HeroDental" {
		t.Fatalf("first section = %#v", def.Sections[0])
	}
	var team map[string]any
	for _, s := range def.Sections {
		if s.Type == "TeamGrid" {
			team = s.DefaultProps
		}
	}
	if team["sectionTitle"] != "Hekim Ekibimiz" {
		t.Fatalf("yaml override not applied: %#v", team)
	}
	if _, ok := team["members"]; !ok {
		t.Fatalf("per-type defaults not applied under overrides: %#v", team)
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	c, _ := Default()
	def, _ := c.Lookup("cozy-cafe")
	def.Sections[0].DefaultProps["title"] = "changed"
	def.Sections = def.Sections[:1]

	again, _ := c.Lookup("cozy-cafe")
	if again.Sections[0].DefaultProps["title"] == "changed" || len(again.Sections) == 1 {
		t.Fatalf("catalog definition mutated through a lookup copy")
	}

	th, _ := c.Theme("espresso")
	th["primaryColor"] = "#000"
	th2, _ := c.Theme("espresso")
	if th2["primaryColor"] != "#6F4E37" {
		t.Fatalf("theme preset mutated")
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"unknown section": "templates:\n  - id: x\n    sections:\n      - type: Nope\n",
		"unknown theme":   "templates:\n  - id: x\n    theme: missing\n",
		"duplicate":       "templates:\n  - id: x\n  - id: x\n",
		"no id":           "templates:\n  - name: y\n",
		"bad yaml":        "templates: [",
	}
	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil || !strings.Contains(err.Error(), "parse template catalog") {
			t.Fatalf("%s: expected catalog error, got %v", name, err)
		}
	}
}

func TestParseNormalizesNumbers(t *testing.T) {
	raw := "templates:\n  - id: x\n    sections:\n      - type: ReservationForm\n        defaultProps:\n          maxGuests: 12\n"
	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	def, _ := c.Lookup("x")
	if def.Sections[0].DefaultProps["maxGuests"] != float64(12) {
		t.Fatalf("maxGuests = %#v", def.Sections[0].DefaultProps["maxGuests"])
	}
}
