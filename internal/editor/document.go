// Package editor holds the interactive site document: an ordered section list,
// a theme, selection and UI flags. Reduce is a pure transition function; the
// Editor type sequences commands and owns the bounded undo history.
package editor

import "vitrin/api/internal/section"

type Mode string

const (
	ModeEditing    Mode = "editing"
	ModePreviewing Mode = "previewing"
)

func (m Mode) Valid() bool {
	return m == ModeEditing || m == ModePreviewing
}

type Panel string

const (
	PanelAdd      Panel = "add"
	PanelTheme    Panel = "theme"
	PanelSettings Panel = "settings"
)

func (p Panel) Valid() bool {
	switch p {
	case PanelAdd, PanelTheme, PanelSettings:
		return true
	}
	return false
}

type Document struct {
	Sections   []section.Instance `json:"sections"`
	Theme      section.Theme      `json:"theme"`
	SelectedID string             `json:"selectedSectionId,omitempty"`
	Mode       Mode               `json:"mode"`
	Panels     map[Panel]bool     `json:"panels,omitempty"`
}

// NewDocument starts an editing session over sections and theme.
func NewDocument(sections []section.Instance, theme section.Theme) Document {
	return Document{
		Sections: section.CloneInstances(sections),
		Theme:    theme.Clone(),
		Mode:     ModeEditing,
	}
}

func (d Document) Clone() Document {
	d.Sections = section.CloneInstances(d.Sections)
	d.Theme = d.Theme.Clone()
	if d.Panels != nil {
		panels := make(map[Panel]bool, len(d.Panels))
		for k, v := range d.Panels {
			panels[k] = v
		}
		d.Panels = panels
	}
	return d
}

// Index returns the position of id or -1.
func (d Document) Index(id string) int {
	for i, s := range d.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Section returns a copy of the section with id.
func (d Document) Section(id string) (section.Instance, bool) {
	if i := d.Index(id); i >= 0 {
		return d.Sections[i].Clone(), true
	}
	return section.Instance{}, false
}

// HasType reports whether any section has type typ.
func (d Document) HasType(typ string) bool {
	for _, s := range d.Sections {
		if s.Type == typ {
			return true
		}
	}
	return false
}

func (d Document) PanelOpen(p Panel) bool {
	return d.Panels[p]
}

// Snapshot is the undoable part of a document.
type Snapshot struct {
	Sections []section.Instance
	Theme    section.Theme
}

func snapshotOf(d Document) Snapshot {
	return Snapshot{Sections: section.CloneInstances(d.Sections), Theme: d.Theme.Clone()}
}
