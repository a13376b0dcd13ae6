package app

import (
	"sort"
	"strings"

	"vitrin/api/internal/editor"
	"vitrin/api/internal/section"
)

// CommandRequest is the wire form of one editor command, discriminated by Op.
type CommandRequest struct {
	Op    string        `json:"op"`
	ID    string        `json:"id,omitempty"`
	Type  string        `json:"type,omitempty"`
	Props section.Props `json:"props,omitempty"`
	Index *int          `json:"index,omitempty"`
	Style section.Style `json:"style,omitempty"`
	Theme section.Theme `json:"theme,omitempty"`
	Key   string        `json:"key,omitempty"`
	Mode  editor.Mode   `json:"mode,omitempty"`
	Panel editor.Panel  `json:"panel,omitempty"`
}

const (
	OpAddSection       = "addSection"
	OpRemoveSection    = "removeSection"
	OpDuplicateSection = "duplicateSection"
	OpMoveUp           = "moveUp"
	OpMoveDown         = "moveDown"
	OpUpdateProps      = "updateProps"
	OpUpdateStyle      = "updateStyle"
	OpUpdateTheme      = "updateTheme"
	OpToggleAddable    = "toggleAddable"
	OpSelect           = "select"
	OpSetMode          = "setMode"
	OpTogglePanel      = "togglePanel"
)

// Validate rejects malformed requests. Well-formed commands that reference
// missing sections are still accepted and apply as no-ops.
func (c CommandRequest) Validate() error {
	switch c.Op {
	case OpAddSection:
		if strings.TrimSpace(c.Type) == "" {
			return validationError("type is required", nil)
		}
	case OpRemoveSection, OpDuplicateSection, OpMoveUp, OpMoveDown:
		if c.ID == "" {
			return validationError("id is required", nil)
		}
	case OpUpdateProps:
		if c.ID == "" || c.Props == nil {
			return validationError("id and props are required", nil)
		}
	case OpUpdateStyle:
		if c.ID == "" || c.Style == nil {
			return validationError("id and style are required", nil)
		}
		if bad := invalidStyleKeys(c.Style); len(bad) > 0 {
			return validationError("invalid style values", map[string]any{"keys": bad})
		}
	case OpUpdateTheme:
		if len(c.Theme) == 0 {
			return validationError("theme is required", nil)
		}
	case OpToggleAddable:
		if _, ok := editor.Addables[c.Key]; !ok {
			return validationError("unknown addable key", map[string]any{"key": c.Key})
		}
	case OpSelect:
	case OpSetMode:
		if !c.Mode.Valid() {
			return validationError("mode must be 'editing' or 'previewing'", nil)
		}
	case OpTogglePanel:
		if !c.Panel.Valid() {
			return validationError("unknown panel", map[string]any{"panel": c.Panel})
		}
	default:
		return validationError("unknown op", map[string]any{"op": c.Op})
	}
	return nil
}

func invalidStyleKeys(s section.Style) []string {
	var bad []string
	for k, v := range s {
		if v != "" && !section.ValidStyle(k, v) {
			bad = append(bad, k)
		}
	}
	sort.Strings(bad)
	return bad
}

// mutatesContent is false for the UI-only ops, which the autosaver ignores.
func (c CommandRequest) mutatesContent() bool {
	switch c.Op {
	case OpSelect, OpSetMode, OpTogglePanel:
		return false
	}
	return true
}

// apply runs the command and returns the id of a section it created.
func (c CommandRequest) apply(e *editor.Editor) string {
	switch c.Op {
	case OpAddSection:
		index := editor.End
		if c.Index != nil {
			index = *c.Index
		}
		return e.AddSection(c.Type, c.Props, index)
	case OpRemoveSection:
		e.RemoveSection(c.ID)
	case OpDuplicateSection:
		return e.DuplicateSection(c.ID)
	case OpMoveUp:
		e.MoveUp(c.ID)
	case OpMoveDown:
		e.MoveDown(c.ID)
	case OpUpdateProps:
		e.UpdateProps(c.ID, c.Props)
	case OpUpdateStyle:
		e.UpdateStyle(c.ID, c.Style)
	case OpUpdateTheme:
		e.UpdateTheme(c.Theme)
	case OpToggleAddable:
		typ := editor.Addables[c.Key]
		if e.Document().HasType(typ) {
			e.ToggleAddable(c.Key)
			return ""
		}
		e.ToggleAddable(c.Key)
		doc := e.Document()
		for i := len(doc.Sections) - 1; i >= 0; i-- {
			if doc.Sections[i].Type == typ {
				return doc.Sections[i].ID
			}
		}
	case OpSelect:
		e.Select(c.ID)
	case OpSetMode:
		e.SetMode(c.Mode)
	case OpTogglePanel:
		e.TogglePanel(c.Panel)
	}
	return ""
}
