package editor

import (
	"fmt"
	"reflect"
	"testing"

	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("sec_%d", n)
	}
}

func threeSectionDoc() Document {
	return NewDocument([]section.Instance{
		{ID: "hero", Type: "HeroCentered", Props: section.Props{"title": "Merhaba"}, Locked: true},
		{ID: "about", Type: "AboutSplit", Props: section.Props{"title": "Hakkımızda"}},
		{ID: "cta", Type: "CTABanner", Props: section.Props{"title": "Tanışalım"}},
	}, section.Theme{"primaryColor": "#111111"})
}

func ids(d Document) []string {
	out := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.ID
	}
	return out
}

func TestAddSectionAtIndexZero(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	e.TogglePanel(PanelAdd)
	defaults, _ := section.Defaults("ContactForm")

	id := e.AddSection("ContactForm", defaults, 0)

	doc := e.Document()
	if len(doc.Sections) != 4 || doc.Sections[0].ID != id || doc.Sections[0].Type != "ContactForm" {
		t.Fatalf("sections = %v", ids(doc))
	}
	if doc.SelectedID != id {
		t.Fatalf("new section not selected: %q", doc.SelectedID)
	}
	if doc.PanelOpen(PanelAdd) {
		t.Fatalf("add panel should close after adding")
	}
	if e.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", e.UndoDepth())
	}
	if !reflect.DeepEqual(doc.Sections[0].Props, defaults) {
		t.Fatalf("props = %#v", doc.Sections[0].Props)
	}
}

func TestAddSectionDefaultsToEnd(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	id := e.AddSection("FAQAccordion", nil, End)
	doc := e.Document()
	if doc.Sections[3].ID != id {
		t.Fatalf("expected append, got %v", ids(doc))
	}
	if doc.Sections[3].Props["sectionTitle"] != "Sık Sorulan Sorular" {
		t.Fatalf("nil props should use per-type defaults: %#v", doc.Sections[3].Props)
	}
	e.AddSection("ContactForm", nil, 99)
	if got := e.Document().Sections[4].Type; got != "ContactForm" {
		t.Fatalf("out of range index should append, got %s", got)
	}
}

func TestRemoveLockedSectionIsNoop(t *testing.T) {
	e := New(threeSectionDoc())
	before := e.Document().Sections
	e.RemoveSection("hero")
	if !reflect.DeepEqual(e.Document().Sections, before) {
		t.Fatalf("locked section removed")
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	e := New(threeSectionDoc())
	e.Select("about")
	if e.Document().SelectedID != "about" {
		t.Fatalf("select failed")
	}
	depth := e.UndoDepth()
	e.RemoveSection("about")
	doc := e.Document()
	if !reflect.DeepEqual(ids(doc), []string{"hero", "cta"}) || doc.SelectedID != "" {
		t.Fatalf("unexpected doc %v selected=%q", ids(doc), doc.SelectedID)
	}
	if e.UndoDepth() != depth+1 {
		t.Fatalf("remove should push exactly one snapshot")
	}
}

func TestSelectUnknownClears(t *testing.T) {
	e := New(threeSectionDoc())
	e.Select("cta")
	e.Select("missing")
	if e.Document().SelectedID != "" {
		t.Fatalf("selection should be cleared")
	}
	if e.UndoDepth() != 0 {
		t.Fatalf("select must not push snapshots")
	}
}

func TestDuplicateSection(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	dup := e.DuplicateSection("hero")
	doc := e.Document()
	if !reflect.DeepEqual(ids(doc), []string{"hero", dup, "about", "cta"}) {
		t.Fatalf("order = %v", ids(doc))
	}
	if doc.Sections[1].Locked {
		t.Fatalf("duplicate must not be locked")
	}
	e.UpdateProps(dup, section.Props{"title": "Kopya"})
	if e.Document().Sections[0].Props["title"] != "Merhaba" {
		t.Fatalf("duplicate shares props with original")
	}
	if got := e.DuplicateSection("missing"); got != "" {
		t.Fatalf("duplicate of unknown id returned %q", got)
	}
}

func TestMoveBoundaries(t *testing.T) {
	e := New(threeSectionDoc())
	e.MoveUp("hero")
	e.MoveDown("cta")
	if !reflect.DeepEqual(ids(e.Document()), []string{"hero", "about", "cta"}) {
		t.Fatalf("boundary moves changed order: %v", ids(e.Document()))
	}
	e.MoveDown("hero")
	e.MoveUp("cta")
	if !reflect.DeepEqual(ids(e.Document()), []string{"about", "cta", "hero"}) {
		t.Fatalf("order = %v", ids(e.Document()))
	}
}

func TestUpdatePropsStyleTheme(t *testing.T) {
	e := New(threeSectionDoc())
	e.UpdateProps("about", section.Props{"description": "Yeni"})
	e.UpdateStyle("about", section.Style{section.StylePadding: "lg"})
	e.UpdateStyle("about", section.Style{section.StyleTitleSize: "xl"})
	e.UpdateTheme(section.Theme{"radius": "8px"})

	doc := e.Document()
	about := doc.Sections[1]
	if about.Props["title"] != "Hakkımızda" || about.Props["description"] != "Yeni" {
		t.Fatalf("props merge = %#v", about.Props)
	}
	if about.Style[section.StylePadding] != "lg" || about.Style[section.StyleTitleSize] != "xl" {
		t.Fatalf("style merge = %#v", about.Style)
	}
	if doc.Theme["primaryColor"] != "#111111" || doc.Theme["radius"] != "8px" {
		t.Fatalf("theme merge = %#v", doc.Theme)
	}

	e.UpdateStyle("about", section.Style{section.StylePadding: ""})
	if _, ok := e.Document().Sections[1].Style[section.StylePadding]; ok {
		t.Fatalf("empty style value should reset the key")
	}
}

func TestToggleAddableTwiceRestoresSections(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	before := e.Document().Sections

	e.ToggleAddable("faq")
	doc := e.Document()
	if len(doc.Sections) != 4 || doc.Sections[3].Type != "FAQAccordion" {
		t.Fatalf("toggle on = %v", ids(doc))
	}
	e.ToggleAddable("faq")
	if !reflect.DeepEqual(e.Document().Sections, before) {
		t.Fatalf("toggle off did not restore: %v", ids(e.Document()))
	}
}

func TestToggleAddableTwiceOnEmptyDocument(t *testing.T) {
	e := New(NewDocument([]section.Instance{}, nil), WithIDGenerator(sequentialIDs()))
	before := e.Document().Sections

	e.ToggleAddable("faq")
	e.ToggleAddable("faq")
	after := e.Document().Sections
	if after == nil || !reflect.DeepEqual(after, before) {
		t.Fatalf("sections = %#v, want %#v", after, before)
	}
}

func TestToggleAddableRemovesAllInstances(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	e.AddSection("FAQAccordion", nil, 1)
	e.AddSection("FAQAccordion", nil, End)
	e.ToggleAddable("faq")
	if e.Document().HasType("FAQAccordion") {
		t.Fatalf("toggle off left FAQ sections: %v", ids(e.Document()))
	}
	before := e.Document()
	e.ToggleAddable("unknown-key")
	if !reflect.DeepEqual(e.Document().Sections, before.Sections) {
		t.Fatalf("unknown addable key changed the document")
	}
}

func TestUndo(t *testing.T) {
	e := New(threeSectionDoc(), WithIDGenerator(sequentialIDs()))
	if e.Undo() {
		t.Fatalf("undo on empty history reported true")
	}
	original := e.Document()
	id := e.AddSection("ContactForm", nil, 0)
	e.UpdateTheme(section.Theme{"primaryColor": "#ff0000"})

	e.Undo()
	if e.Document().Theme["primaryColor"] != "#111111" {
		t.Fatalf("theme not restored")
	}
	if e.Document().SelectedID != id {
		t.Fatalf("selection of still-present section should survive undo")
	}
	e.Undo()
	doc := e.Document()
	if !reflect.DeepEqual(doc.Sections, original.Sections) || !reflect.DeepEqual(doc.Theme, original.Theme) {
		t.Fatalf("undo did not restore original")
	}
	if doc.SelectedID != "" {
		t.Fatalf("selection of removed section should be cleared, got %q", doc.SelectedID)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	e := New(threeSectionDoc())
	e.UpdateProps("about", section.Props{"items": []any{map[string]any{"q": "1"}}})
	e.UpdateProps("about", section.Props{"title": "Değişti"})

	live := e.Document()
	live.Sections[1].Props["items"].([]any)[0].(map[string]any)["q"] = "mutated"

	e.Undo()
	items := e.Document().Sections[1].Props["items"].([]any)
	if items[0].(map[string]any)["q"] != "1" {
		t.Fatalf("snapshot observed a later mutation")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	doc := threeSectionDoc()
	before := doc.Clone()
	_ = Reduce(doc, RemoveSection{ID: "about"})
	_ = Reduce(doc, UpdateProps{ID: "cta", Props: section.Props{"title": "x"}})
	_ = Reduce(doc, MoveDown{ID: "hero"})
	if !reflect.DeepEqual(doc, before) {
		t.Fatalf("Reduce mutated its input")
	}
}

func TestModeAndPanels(t *testing.T) {
	e := New(Document{})
	if e.Document().Mode != ModeEditing {
		t.Fatalf("default mode = %q", e.Document().Mode)
	}
	e.SetMode(ModePreviewing)
	e.SetMode("bogus")
	if e.Document().Mode != ModePreviewing {
		t.Fatalf("mode = %q", e.Document().Mode)
	}
	e.TogglePanel(PanelTheme)
	e.TogglePanel("bogus")
	if !e.Document().PanelOpen(PanelTheme) {
		t.Fatalf("theme panel should be open")
	}
	e.TogglePanel(PanelTheme)
	if e.Document().PanelOpen(PanelTheme) {
		t.Fatalf("theme panel should be closed")
	}
	if e.UndoDepth() != 0 {
		t.Fatalf("ui commands pushed snapshots")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory()
	for i := 0; i < UndoCapacity+5; i++ {
		h.Push(Snapshot{Theme: section.Theme{"n": fmt.Sprint(i)}})
	}
	if h.Len() != UndoCapacity {
		t.Fatalf("len = %d", h.Len())
	}
	var last Snapshot
	for {
		s, ok := h.Pop()
		if !ok {
			break
		}
		last = s
	}
	if last.Theme["n"] != "5" {
		t.Fatalf("oldest kept snapshot = %v, want 5", last.Theme["n"])
	}
}

func TestApplyTemplateUnknownIsNoop(t *testing.T) {
	e := New(threeSectionDoc())
	before := e.Document()
	if e.ApplyTemplate("no-such-template", project.Data{Sector: "cafe"}) {
		t.Fatalf("unknown template reported applied")
	}
	if !reflect.DeepEqual(e.Document(), before) || e.UndoDepth() != 0 {
		t.Fatalf("unknown template changed the document")
	}
}
