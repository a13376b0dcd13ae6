package app

import (
	"vitrin/api/internal/editor"
	"vitrin/api/internal/section"
)

// SectionView is a placed section plus what the editor needs to render its
// form. Types without a renderer are flagged instead of rejected.
type SectionView struct {
	section.Instance
	Kind    section.Kind `json:"kind"`
	Label   string       `json:"label,omitempty"`
	Fields  []string     `json:"fields,omitempty"`
	Unknown bool         `json:"unknown,omitempty"`
}

type DocumentView struct {
	ProjectID  string                `json:"projectId"`
	Sections   []SectionView         `json:"sections"`
	Theme      section.Theme         `json:"theme"`
	SelectedID string                `json:"selectedSectionId,omitempty"`
	Mode       editor.Mode           `json:"mode"`
	Panels     map[editor.Panel]bool `json:"panels"`
	UndoDepth  int                   `json:"undoDepth"`
	Dirty      bool                  `json:"dirty"`
}

func (s *Service) view(projectID string, sess *projectSession) DocumentView {
	doc := sess.editor.Document()
	sections := make([]SectionView, 0, len(doc.Sections))
	for _, inst := range doc.Sections {
		sv := SectionView{Instance: inst, Kind: section.KindOf(inst.Type)}
		if rd, ok := s.deps.Registry.Lookup(inst.Type); ok {
			sv.Label = rd.Label
			sv.Fields = rd.Fields
		} else {
			sv.Unknown = true
		}
		sections = append(sections, sv)
	}
	theme := doc.Theme
	if theme == nil {
		theme = section.Theme{}
	}
	panels := doc.Panels
	if panels == nil {
		panels = map[editor.Panel]bool{}
	}
	return DocumentView{
		ProjectID:  projectID,
		Sections:   sections,
		Theme:      theme,
		SelectedID: doc.SelectedID,
		Mode:       doc.Mode,
		Panels:     panels,
		UndoDepth:  sess.editor.UndoDepth(),
		Dirty:      sess.autosave.Dirty(),
	}
}
