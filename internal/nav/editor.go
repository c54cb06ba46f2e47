package nav

import (
	"strings"

	adminnav "github.com/goliatone/go-admin-nav/nav"
)

// DefaultChildIcon marks newly created child entries until the user picks a
// real icon or color.
const DefaultChildIcon = "#888888"

// ChildDraft holds the in-progress edits for one child entry.
type ChildDraft struct {
	Label string
	Href  string
	Icon  string
}

// ChildEditor manages the child list of a single item during editing. One
// child at a time can be in edit mode; a child committed or abandoned with an
// empty label is removed rather than kept as a blank row.
type ChildEditor struct {
	children []NavItem
	editing  int
	draft    ChildDraft
	newID    func() string
}

// NewChildEditor starts an editor over a copy of the given children.
func NewChildEditor(children []NavItem, newID func() string) *ChildEditor {
	if newID == nil {
		newID = func() string { return "" }
	}
	return &ChildEditor{
		children: adminnav.CloneItems(children),
		editing:  -1,
		newID:    newID,
	}
}

// Children returns a deep copy of the current child list.
func (e *ChildEditor) Children() []NavItem {
	return adminnav.CloneItems(e.children)
}

// Editing returns the index of the child in edit mode, or -1.
func (e *ChildEditor) Editing() int {
	return e.editing
}

// Draft returns the current draft values.
func (e *ChildEditor) Draft() ChildDraft {
	return e.draft
}

// Add appends a placeholder child and puts it straight into edit mode.
func (e *ChildEditor) Add() {
	visible := true
	e.children = append(e.children, NavItem{
		ID:      e.newID(),
		Icon:    DefaultChildIcon,
		Visible: &visible,
	})
	e.editing = len(e.children) - 1
	e.draft = ChildDraft{Icon: DefaultChildIcon}
}

// Edit opens the child at index for editing, loading its current values into
// the draft. Out-of-range indices are ignored.
func (e *ChildEditor) Edit(index int) {
	if index < 0 || index >= len(e.children) {
		return
	}
	child := e.children[index]
	e.editing = index
	e.draft = ChildDraft{
		Label: child.Label.Resolve("", ""),
		Href:  child.Href,
		Icon:  child.Icon,
	}
}

// SetDraft replaces the draft values while a child is in edit mode.
func (e *ChildEditor) SetDraft(draft ChildDraft) {
	if e.editing < 0 {
		return
	}
	e.draft = draft
}

// Commit writes the draft back onto the child being edited and leaves edit
// mode. A draft whose label is empty after trimming removes the child.
func (e *ChildEditor) Commit() {
	if e.editing < 0 || e.editing >= len(e.children) {
		e.editing = -1
		return
	}

	label := strings.TrimSpace(e.draft.Label)
	if label == "" {
		e.children = append(e.children[:e.editing], e.children[e.editing+1:]...)
		e.editing = -1
		e.draft = ChildDraft{}
		return
	}

	child := &e.children[e.editing]
	child.Label = adminnav.Label(label)
	child.Href = strings.TrimSpace(e.draft.Href)
	if e.draft.Icon != "" {
		child.Icon = e.draft.Icon
	}
	e.editing = -1
	e.draft = ChildDraft{}
}

// Cancel leaves edit mode without applying the draft. A child whose committed
// label is still empty is removed so abandoned placeholders never linger.
func (e *ChildEditor) Cancel() {
	if e.editing >= 0 && e.editing < len(e.children) {
		if !e.children[e.editing].Label.IsSet() {
			e.children = append(e.children[:e.editing], e.children[e.editing+1:]...)
		}
	}
	e.editing = -1
	e.draft = ChildDraft{}
}

// Remove deletes the child at index. Removing the child being edited also
// clears edit mode.
func (e *ChildEditor) Remove(index int) {
	if index < 0 || index >= len(e.children) {
		return
	}
	e.children = append(e.children[:index], e.children[index+1:]...)
	switch {
	case e.editing == index:
		e.editing = -1
		e.draft = ChildDraft{}
	case e.editing > index:
		e.editing--
	}
}

// Move swaps the child at index with its neighbour in the given direction,
// delta being -1 or +1. Boundary moves are no-ops. When the child being
// edited takes part in the swap, the editing index follows it.
func (e *ChildEditor) Move(index, delta int) {
	target := index + delta
	if index < 0 || index >= len(e.children) || target < 0 || target >= len(e.children) {
		return
	}
	e.children[index], e.children[target] = e.children[target], e.children[index]
	switch e.editing {
	case index:
		e.editing = target
	case target:
		e.editing = index
	}
}
