package storyboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Decode parses raw bytes into a document. A failure here is the
// malformed-input class: the bytes cannot be matched to the document shape at
// all, which is distinct from a document that decodes but fails validation.
func Decode(data []byte) (*Storyboard, error) {
	var s Storyboard
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode storyboard: %w", err)
	}
	return &s, nil
}

// Validate checks the whole document and returns either a normalized copy or
// the full set of issues, never both. It never stops at the first failure:
// every structural and cross-entity violation is collected in one run, in
// document order. Cross-entity rules (ID references, model-dependent ratios)
// run against ID sets built before the walk.
func Validate(doc *Storyboard) (*Storyboard, *Errors) {
	errs := &Errors{}
	if doc == nil {
		errs.add("A storyboard document is required", "document")
		return nil, errs
	}

	modelOK := doc.Model == ModelVeo2 || doc.Model == ModelVeo3
	if !modelOK {
		errs.add("Model must be veo-2 or veo-3", "model")
	}

	characterIDs := make(map[string]struct{}, len(doc.Characters))
	for _, c := range doc.Characters {
		characterIDs[c.ID] = struct{}{}
	}
	locationIDs := make(map[string]struct{}, len(doc.Locations))
	for _, l := range doc.Locations {
		locationIDs[l.ID] = struct{}{}
	}

	validateMetadata(doc, modelOK, errs)
	validateCharacters(doc.Characters, errs)
	validateLocations(doc.Locations, errs)
	validateScenes(doc, characterIDs, locationIDs, modelOK, errs)

	if doc.Variations != nil && (*doc.Variations < 0 || *doc.Variations > 3) {
		errs.add("Variations must be between 0 and 3", "variations")
	}

	if !errs.Empty() {
		return nil, errs
	}
	return doc.Clone(), nil
}

func validateMetadata(doc *Storyboard, modelOK bool, errs *Errors) {
	m := doc.Metadata
	if m.ProjectTitle == "" {
		errs.add("Project title is required", "metadata", "project_title")
	}
	if !slices.Contains(Languages, m.Language) {
		errs.add("Language must be one of id, en", "metadata", "language")
	}
	if modelOK {
		switch doc.Model {
		case ModelVeo2:
			if m.AspectRatio != AspectRatioVeo2 {
				errs.add("Veo-2 only supports 9:16 aspect ratio.", "metadata", "aspect_ratio")
			}
		case ModelVeo3:
			if !slices.Contains(AspectRatiosVeo3, m.AspectRatio) {
				errs.addf([]any{"metadata", "aspect_ratio"}, "Aspect ratio must be one of %s", strings.Join(AspectRatiosVeo3, ", "))
			}
		}
	}
	if m.TotalDurationSec < 1 {
		errs.add("Target duration must be at least 1 second", "metadata", "total_duration_sec")
	}
}

func validateCharacters(characters []Character, errs *Errors) {
	if len(characters) == 0 {
		errs.add("At least one character is required", "characters")
	}
	seen := make(map[string]struct{}, len(characters))
	for i, c := range characters {
		if c.ID == "" {
			errs.add("ID is required", "characters", i, "id")
		} else if _, dup := seen[c.ID]; dup {
			errs.addf([]any{"characters", i, "id"}, "Duplicate ID %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.AgeRange == "" {
			errs.add("Age range is required", "characters", i, "age_range")
		}
		if c.Look == "" {
			errs.add("Look description is required", "characters", i, "look")
		}
	}
}

func validateLocations(locations []Location, errs *Errors) {
	if len(locations) == 0 {
		errs.add("At least one location is required", "locations")
	}
	seen := make(map[string]struct{}, len(locations))
	for i, l := range locations {
		if l.ID == "" {
			errs.add("ID is required", "locations", i, "id")
		} else if _, dup := seen[l.ID]; dup {
			errs.addf([]any{"locations", i, "id"}, "Duplicate ID %q", l.ID)
		}
		seen[l.ID] = struct{}{}
		if l.Name == "" {
			errs.add("Location name is required", "locations", i, "name")
		}
	}
}

func validateScenes(doc *Storyboard, characterIDs, locationIDs map[string]struct{}, modelOK bool, errs *Errors) {
	if len(doc.Scenes) == 0 {
		errs.add("At least one scene is required", "scenes")
	}
	seen := make(map[string]struct{}, len(doc.Scenes))
	for i, sc := range doc.Scenes {
		if sc.ID == "" {
			errs.add("ID is required", "scenes", i, "id")
		} else if _, dup := seen[sc.ID]; dup {
			errs.addf([]any{"scenes", i, "id"}, "Duplicate ID %q", sc.ID)
		}
		seen[sc.ID] = struct{}{}

		if sc.DurationSec < 0 {
			errs.add("Duration must be positive", "scenes", i, "duration_sec")
		}

		if sc.LocationID == "" {
			errs.add("Location is required", "scenes", i, "location_id")
		} else if _, ok := locationIDs[sc.LocationID]; !ok {
			errs.addf([]any{"scenes", i, "location_id"}, "Location ID %q does not exist.", sc.LocationID)
		}

		if modelOK && sc.Ratio != RatioInherit {
			switch doc.Model {
			case ModelVeo2:
				if sc.Ratio != AspectRatioVeo2 {
					errs.add("Veo-2 scenes must inherit or be 9:16.", "scenes", i, "ratio")
				}
			case ModelVeo3:
				if !slices.Contains(AspectRatiosVeo3, sc.Ratio) {
					errs.addf([]any{"scenes", i, "ratio"}, "Scene ratio must be inherit or one of %s", strings.Join(AspectRatiosVeo3, ", "))
				}
			}
		}

		if len(sc.Shots) == 0 {
			errs.add("At least one shot is required per scene", "scenes", i, "shots")
		}
		for j, shot := range sc.Shots {
			if shot.Type == "" {
				errs.add("Shot type is required", "scenes", i, "shots", j, "type")
			} else if !slices.Contains(ShotTypes, shot.Type) {
				errs.addf([]any{"scenes", i, "shots", j, "type"}, "Unknown shot type %q", shot.Type)
			}
			if shot.Action == "" {
				errs.add("Action is required", "scenes", i, "shots", j, "action")
			}
		}

		if len(sc.Dialog) == 0 {
			errs.add("At least one dialog/VO line is required per scene", "scenes", i, "dialog")
		}
		for j, d := range sc.Dialog {
			if d.CharacterID == "" {
				errs.add("Character ID is required", "scenes", i, "dialog", j, "character_id")
			} else if _, ok := characterIDs[d.CharacterID]; !ok {
				errs.addf([]any{"scenes", i, "dialog", j, "character_id"}, "Character ID %q does not exist.", d.CharacterID)
			}
			if d.Mode != ModeDialog && d.Mode != ModeVoiceOver {
				errs.add("Mode must be dialog or vo", "scenes", i, "dialog", j, "mode")
			}
			if d.Line == "" {
				errs.add("Dialog line is required", "scenes", i, "dialog", j, "line")
			}
		}
	}
}
