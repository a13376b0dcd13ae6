package editor

import (
	"vitrin/api/internal/content"
	"vitrin/api/internal/project"
	"vitrin/api/internal/section"
	"vitrin/api/internal/templates"
	"vitrin/api/internal/util"
)

// Addables maps toggle keys in the add panel to the section type they add.
var Addables = map[string]string{
	"faq":          "FAQAccordion",
	"testimonials": "TestimonialsGrid",
	"gallery":      "GalleryGrid",
	"team":         "TeamGrid",
	"newsletter":   "NewsletterSignup",
	"stats":        "StatsCounter",
	"appointment":  "AppointmentBooking",
	"map":          "ContactMap",
}

// TemplateSource resolves template ids and theme presets.
type TemplateSource interface {
	Lookup(id string) (templates.Definition, bool)
	Theme(id string) (section.Theme, bool)
}

// Injector fills image and contact fields of freshly built props in place.
type Injector interface {
	Inject(sectionType string, props section.Props, data project.Data)
}

type nopInjector struct{}

func (nopInjector) Inject(string, section.Props, project.Data) {}

// Editor sequences commands over one document. It is not safe for concurrent
// use; callers serialize access per document.
type Editor struct {
	doc       Document
	history   *History
	templates TemplateSource
	pipeline  *content.Pipeline
	injector  Injector
	newID     func() string
}

type Option func(*Editor)

func WithTemplates(src TemplateSource) Option {
	return func(e *Editor) { e.templates = src }
}

func WithPipeline(p *content.Pipeline) Option {
	return func(e *Editor) { e.pipeline = p }
}

func WithInjector(inj Injector) Option {
	return func(e *Editor) { e.injector = inj }
}

// WithIDGenerator replaces the section id source.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) { e.newID = fn }
}

func New(doc Document, opts ...Option) *Editor {
	e := &Editor{
		doc:      doc.Clone(),
		history:  NewHistory(),
		injector: nopInjector{},
		newID:    func() string { return util.NewID("sec") },
	}
	if e.doc.Mode == "" {
		e.doc.Mode = ModeEditing
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pipeline == nil {
		e.pipeline = content.DefaultPipeline()
	}
	if e.templates == nil {
		if c, err := templates.Default(); err == nil {
			e.templates = c
		}
	}
	return e
}

// Document returns a copy of the current document.
func (e *Editor) Document() Document {
	return e.doc.Clone()
}

func (e *Editor) UndoDepth() int {
	return e.history.Len()
}

// Dispatch snapshots undoable commands and applies cmd.
func (e *Editor) Dispatch(cmd Command) {
	if cmd.Undoable() {
		e.history.Push(snapshotOf(e.doc))
	}
	e.doc = Reduce(e.doc, cmd)
}

// AddSection inserts a new section at index (End appends) and returns its id.
// Nil props use the per-type defaults.
func (e *Editor) AddSection(typ string, props section.Props, index int) string {
	if props == nil {
		props, _ = section.Defaults(typ)
	}
	id := e.newID()
	e.Dispatch(AddSection{Section: section.Instance{ID: id, Type: typ, Props: props}, Index: index})
	return id
}

func (e *Editor) RemoveSection(id string) {
	e.Dispatch(RemoveSection{ID: id})
}

// DuplicateSection returns the id of the copy, or "" if id is unknown.
func (e *Editor) DuplicateSection(id string) string {
	newID := e.newID()
	e.Dispatch(DuplicateSection{ID: id, NewID: newID})
	if e.doc.Index(newID) < 0 {
		return ""
	}
	return newID
}

func (e *Editor) MoveUp(id string) { e.Dispatch(MoveUp{ID: id}) }
func (e *Editor) MoveDown(id string) { e.Dispatch(MoveDown{ID: id}) }

func (e *Editor) UpdateProps(id string, partial section.Props) {
	e.Dispatch(UpdateProps{ID: id, Props: partial})
}

func (e *Editor) UpdateStyle(id string, partial section.Style) {
	e.Dispatch(UpdateStyle{ID: id, Style: partial})
}

func (e *Editor) UpdateTheme(partial section.Theme) {
	e.Dispatch(UpdateTheme{Theme: partial})
}

func (e *Editor) ToggleAddable(key string) {
	e.Dispatch(ToggleAddable{Key: key, NewID: e.newID()})
}

func (e *Editor) Select(id string) { e.Dispatch(Select{ID: id}) }
func (e *Editor) SetMode(m Mode) { e.Dispatch(SetMode{Mode: m}) }
func (e *Editor) TogglePanel(p Panel) { e.Dispatch(TogglePanel{Panel: p}) }

// Undo restores the most recent snapshot. It reports false on an empty history.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.doc.Sections = snap.Sections
	e.doc.Theme = snap.Theme
	if e.doc.SelectedID != "" && e.doc.Index(e.doc.SelectedID) < 0 {
		e.doc.SelectedID = ""
	}
	return true
}

// ApplyTemplate rebuilds the document from template id for data. Unknown ids
// leave the document untouched and report false.
func (e *Editor) ApplyTemplate(id string, data project.Data) bool {
	if e.templates == nil {
		return false
	}
	def, ok := e.templates.Lookup(id)
	if !ok {
		return false
	}
	specs := e.pipeline.MapSections(def.Sections, data)
	sections := BuildSections(specs, e.doc.Sections, data, e.injector, e.newID)
	theme, hasTheme := e.templates.Theme(def.ThemeID)
	e.Dispatch(ReplaceSections{Sections: sections, Theme: theme, ReplaceTheme: hasTheme})
	return true
}
