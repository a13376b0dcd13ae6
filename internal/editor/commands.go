package editor

import "vitrin/api/internal/section"

// Command is one document transition. Commands carry any ids they need so
// that Reduce stays deterministic.
type Command interface {
	// Undoable commands snapshot the document before they apply.
	Undoable() bool
	apply(d Document) Document
}

// End inserts at the end of the section list.
const End = -1

// Reduce applies cmd to a copy of doc. doc itself is never modified. A
// selection that no longer points at a section is cleared.
func Reduce(doc Document, cmd Command) Document {
	next := cmd.apply(doc.Clone())
	if next.SelectedID != "" && next.Index(next.SelectedID) < 0 {
		next.SelectedID = ""
	}
	return next
}

type AddSection struct {
	Section section.Instance
	Index   int
}

func (AddSection) Undoable() bool { return true }

func (c AddSection) apply(d Document) Document {
	if c.Section.ID == "" || d.Index(c.Section.ID) >= 0 {
		return d
	}
	inst := c.Section.Clone()
	if inst.Props == nil {
		inst.Props = section.Props{}
	}
	d.Sections = insertAt(d.Sections, c.Index, inst)
	d.SelectedID = inst.ID
	delete(d.Panels, PanelAdd)
	return d
}

// RemoveSection is a no-op for locked sections.
type RemoveSection struct {
	ID string
}

func (RemoveSection) Undoable() bool { return true }

func (c RemoveSection) apply(d Document) Document {
	i := d.Index(c.ID)
	if i < 0 || d.Sections[i].Locked {
		return d
	}
	d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
	return d
}

// DuplicateSection inserts an unlocked copy with NewID right after ID.
type DuplicateSection struct {
	ID    string
	NewID string
}

func (DuplicateSection) Undoable() bool { return true }

func (c DuplicateSection) apply(d Document) Document {
	i := d.Index(c.ID)
	if i < 0 || c.NewID == "" || d.Index(c.NewID) >= 0 {
		return d
	}
	dup := d.Sections[i].Clone()
	dup.ID = c.NewID
	dup.Locked = false
	d.Sections = insertAt(d.Sections, i+1, dup)
	return d
}

type MoveUp struct {
	ID string
}

func (MoveUp) Undoable() bool { return true }

func (c MoveUp) apply(d Document) Document {
	if i := d.Index(c.ID); i > 0 {
		d.Sections[i-1], d.Sections[i] = d.Sections[i], d.Sections[i-1]
	}
	return d
}

type MoveDown struct {
	ID string
}

func (MoveDown) Undoable() bool { return true }

func (c MoveDown) apply(d Document) Document {
	if i := d.Index(c.ID); i >= 0 && i < len(d.Sections)-1 {
		d.Sections[i+1], d.Sections[i] = d.Sections[i], d.Sections[i+1]
	}
	return d
}

// UpdateProps shallow-merges Props onto the section's props.
type UpdateProps struct {
	ID    string
	Props section.Props
}

func (UpdateProps) Undoable() bool { return true }

func (c UpdateProps) apply(d Document) Document {
	i := d.Index(c.ID)
	if i < 0 {
		return d
	}
	if d.Sections[i].Props == nil {
		d.Sections[i].Props = section.Props{}
	}
	for k, v := range c.Props {
		d.Sections[i].Props[k] = section.CloneValue(v)
	}
	return d
}

// UpdateStyle shallow-merges Style. An empty value resets the key to its default.
type UpdateStyle struct {
	ID    string
	Style section.Style
}

func (UpdateStyle) Undoable() bool { return true }

func (c UpdateStyle) apply(d Document) Document {
	i := d.Index(c.ID)
	if i < 0 {
		return d
	}
	style := d.Sections[i].Style
	if style == nil {
		style = section.Style{}
	}
	for k, v := range c.Style {
		if v == "" {
			delete(style, k)
			continue
		}
		style[k] = v
	}
	if len(style) == 0 {
		style = nil
	}
	d.Sections[i].Style = style
	return d
}

type UpdateTheme struct {
	Theme section.Theme
}

func (UpdateTheme) Undoable() bool { return true }

func (c UpdateTheme) apply(d Document) Document {
	if len(c.Theme) == 0 {
		return d
	}
	if d.Theme == nil {
		d.Theme = section.Theme{}
	}
	for k, v := range c.Theme {
		d.Theme[k] = v
	}
	return d
}

// ToggleAddable adds the section configured for Key, or removes every
// unlocked section of that type when one is already present.
type ToggleAddable struct {
	Key   string
	NewID string
}

func (ToggleAddable) Undoable() bool { return true }

func (c ToggleAddable) apply(d Document) Document {
	typ, ok := Addables[c.Key]
	if !ok {
		return d
	}
	if d.HasType(typ) {
		kept := make([]section.Instance, 0, len(d.Sections))
		for _, s := range d.Sections {
			if s.Type != typ || s.Locked {
				kept = append(kept, s)
			}
		}
		d.Sections = kept
		return d
	}
	if c.NewID == "" || d.Index(c.NewID) >= 0 {
		return d
	}
	props, _ := section.Defaults(typ)
	d.Sections = append(d.Sections, section.Instance{ID: c.NewID, Type: typ, Props: props})
	return d
}

// ReplaceSections swaps in a new section list and, when ReplaceTheme is set,
// a new theme. Used by template application.
type ReplaceSections struct {
	Sections     []section.Instance
	Theme        section.Theme
	ReplaceTheme bool
}

func (ReplaceSections) Undoable() bool { return true }

func (c ReplaceSections) apply(d Document) Document {
	d.Sections = section.CloneInstances(c.Sections)
	if c.ReplaceTheme {
		d.Theme = c.Theme.Clone()
	}
	return d
}

// Select points the selection at ID, or clears it for unknown ids.
type Select struct {
	ID string
}

func (Select) Undoable() bool { return false }

func (c Select) apply(d Document) Document {
	d.SelectedID = c.ID
	return d
}

type SetMode struct {
	Mode Mode
}

func (SetMode) Undoable() bool { return false }

func (c SetMode) apply(d Document) Document {
	if c.Mode.Valid() {
		d.Mode = c.Mode
	}
	return d
}

type TogglePanel struct {
	Panel Panel
}

func (TogglePanel) Undoable() bool { return false }

func (c TogglePanel) apply(d Document) Document {
	if !c.Panel.Valid() {
		return d
	}
	if d.Panels[c.Panel] {
		delete(d.Panels, c.Panel)
		return d
	}
	if d.Panels == nil {
		d.Panels = make(map[Panel]bool)
	}
	d.Panels[c.Panel] = true
	return d
}

func insertAt(list []section.Instance, index int, inst section.Instance) []section.Instance {
	if index < 0 || index > len(list) {
		index = len(list)
	}
	list = append(list, section.Instance{})
	copy(list[index+1:], list[index:])
	list[index] = inst
	return list
}
