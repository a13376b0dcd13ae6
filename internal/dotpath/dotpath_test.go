package dotpath

import "testing"

func sampleDoc() map[string]any {
	return map[string]any{
		"pages": map[string]any{
			"home": map[string]any{
				"hero": map[string]any{
					"title":    "Taze Kahve",
					"subtitle": "",
					"badge":    nil,
					"count":    float64(0),
					"visible":  false,
				},
				"highlights": []any{
					map[string]any{"title": "Espresso"},
					map[string]any{"title": "Latte"},
				},
			},
		},
	}
}

func TestGet(t *testing.T) {
	doc := sampleDoc()
	cases := []struct {
		name string
		path string
		want any
	}{
		{name: "present string", path: "pages.home.hero.title", want: "Taze Kahve"},
		{name: "empty string is absent", path: "pages.home.hero.subtitle", want: "fb"},
		{name: "nil is absent", path: "pages.home.hero.badge", want: "fb"},
		{name: "zero number is present", path: "pages.home.hero.count", want: float64(0)},
		{name: "false is present", path: "pages.home.hero.visible", want: false},
		{name: "missing leaf", path: "pages.home.hero.nope", want: "fb"},
		{name: "missing branch", path: "pages.about.story.title", want: "fb"},
		{name: "walk through scalar", path: "pages.home.hero.title.length", want: "fb"},
		{name: "list index", path: "pages.home.highlights.1.title", want: "Latte"},
		{name: "list index out of range", path: "pages.home.highlights.5.title", want: "fb"},
		{name: "empty path", path: "", want: "fb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Get(doc, tc.path, "fb"); got != tc.want {
				t.Fatalf("Get(%q) = %#v, want %#v", tc.path, got, tc.want)
			}
		})
	}
}

func TestGetNilDocument(t *testing.T) {
	if got := Get(nil, "a.b", 7); got != 7 {
		t.Fatalf("expected fallback for nil doc, got %#v", got)
	}
}

func TestStringIgnoresNonStrings(t *testing.T) {
	doc := sampleDoc()
	if got := String(doc, "pages.home.hero.count", "x"); got != "x" {
		t.Fatalf("expected fallback for number, got %q", got)
	}
	if got := String(doc, "pages.home.hero.title", "x"); got != "Taze Kahve" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestListAndFirstString(t *testing.T) {
	doc := sampleDoc()
	if items := List(doc, "pages.home.highlights"); len(items) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(items))
	}
	if items := List(doc, "pages.home.hero"); items != nil {
		t.Fatalf("expected nil for non-list, got %#v", items)
	}
	got := FirstString(doc, "default", "pages.home.hero.subtitle", "pages.home.hero.title")
	if got != "Taze Kahve" {
		t.Fatalf("FirstString skipped to wrong value: %q", got)
	}
	if got := FirstString(doc, "default", "a", "b"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	doc := sampleDoc()
	_ = Get(doc, "pages.home.hero.title", nil)
	hero := doc["pages"].(map[string]any)["home"].(map[string]any)["hero"].(map[string]any)
	if len(hero) != 5 {
		t.Fatalf("document changed: %#v", hero)
	}
}
