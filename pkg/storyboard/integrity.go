package storyboard

import (
	"errors"
	"slices"
)

var (
	ErrUnknownCharacter = errors.New("unknown character id")
	ErrUnknownLocation  = errors.New("unknown location id")
)

// DialogRef points at a dialog line by scene and line index.
type DialogRef struct {
	Scene int `json:"scene"`
	Line  int `json:"line"`
}

// SceneRef points at a scene by index.
type SceneRef struct {
	Scene int `json:"scene"`
}

// CharacterRemoval is the impact report for removing a character. Usages lists
// every dialog line that still references it; when non-empty the caller is
// expected to get confirmation before calling Apply.
type CharacterRemoval struct {
	ID     string      `json:"id"`
	Usages []DialogRef `json:"usages,omitempty"`
}

// PlanCharacterRemoval scans every scene's dialog for references to the given
// character. It never mutates the document; the decision to proceed stays with
// the caller.
func PlanCharacterRemoval(doc *Storyboard, id string) (*CharacterRemoval, error) {
	if !slices.ContainsFunc(doc.Characters, func(c Character) bool { return c.ID == id }) {
		return nil, ErrUnknownCharacter
	}
	plan := &CharacterRemoval{ID: id}
	for si, sc := range doc.Scenes {
		for di, d := range sc.Dialog {
			if d.CharacterID == id {
				plan.Usages = append(plan.Usages, DialogRef{Scene: si, Line: di})
			}
		}
	}
	return plan, nil
}

// Apply returns a new document with every referencing dialog line's
// character_id cleared to empty and the character removed. The lines
// themselves survive so the per-scene dialog minimum still holds. The input
// document is left untouched; the change is all-or-nothing by construction.
func (p *CharacterRemoval) Apply(doc *Storyboard) *Storyboard {
	out := doc.Clone()
	for si := range out.Scenes {
		for di := range out.Scenes[si].Dialog {
			if out.Scenes[si].Dialog[di].CharacterID == p.ID {
				out.Scenes[si].Dialog[di].CharacterID = ""
			}
		}
	}
	out.Characters = slices.DeleteFunc(out.Characters, func(c Character) bool { return c.ID == p.ID })
	return out
}

// LocationRemoval is the impact report for removing a location.
type LocationRemoval struct {
	ID     string     `json:"id"`
	Usages []SceneRef `json:"usages,omitempty"`
}

// PlanLocationRemoval scans every scene's location_id for references to the
// given location.
func PlanLocationRemoval(doc *Storyboard, id string) (*LocationRemoval, error) {
	if !slices.ContainsFunc(doc.Locations, func(l Location) bool { return l.ID == id }) {
		return nil, ErrUnknownLocation
	}
	plan := &LocationRemoval{ID: id}
	for si, sc := range doc.Scenes {
		if sc.LocationID == id {
			plan.Usages = append(plan.Usages, SceneRef{Scene: si})
		}
	}
	return plan, nil
}

// Apply returns a new document with every referencing scene's location_id
// cleared and the location removed. A cleared location_id is a normal field
// error on the next validation, not a crash.
func (p *LocationRemoval) Apply(doc *Storyboard) *Storyboard {
	out := doc.Clone()
	for si := range out.Scenes {
		if out.Scenes[si].LocationID == p.ID {
			out.Scenes[si].LocationID = ""
		}
	}
	out.Locations = slices.DeleteFunc(out.Locations, func(l Location) bool { return l.ID == p.ID })
	return out
}
