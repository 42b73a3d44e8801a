package storyboard

import (
	"strconv"
	"strings"
)

// NextID returns the next free ID of the form prefix+integer. It scans the
// existing IDs for numeric suffixes and returns prefix+(max+1), so a suffix is
// never reused even after the entity that held it is removed.
func NextID(prefix string, ids []string) string {
	maxSuffix := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			continue
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}
	return prefix + strconv.Itoa(maxSuffix+1)
}

func (s *Storyboard) characterIDs() []string {
	ids := make([]string, len(s.Characters))
	for i, c := range s.Characters {
		ids[i] = c.ID
	}
	return ids
}

func (s *Storyboard) locationIDs() []string {
	ids := make([]string, len(s.Locations))
	for i, l := range s.Locations {
		ids[i] = l.ID
	}
	return ids
}

func (s *Storyboard) sceneIDs() []string {
	ids := make([]string, len(s.Scenes))
	for i, sc := range s.Scenes {
		ids[i] = sc.ID
	}
	return ids
}

// AddCharacter appends an empty character with a freshly allocated ID.
func (s *Storyboard) AddCharacter() Character {
	c := Character{ID: NextID("c", s.characterIDs())}
	s.Characters = append(s.Characters, c)
	return c
}

// AddLocation appends an empty location with a freshly allocated ID.
func (s *Storyboard) AddLocation() Location {
	l := Location{ID: NextID("l", s.locationIDs())}
	s.Locations = append(s.Locations, l)
	return l
}

// AddScene appends a scene with a freshly allocated ID and one default shot
// and dialog line, so the per-scene structural minimums hold immediately.
func (s *Storyboard) AddScene() Scene {
	sc := Scene{
		ID:          NextID("s", s.sceneIDs()),
		DurationSec: 10,
		Ratio:       RatioInherit,
		Shots:       []Shot{{Type: "medium"}},
		Dialog:      []Dialog{{Mode: ModeDialog}},
	}
	if len(s.Characters) > 0 {
		sc.Dialog[0].CharacterID = s.Characters[0].ID
	}
	s.Scenes = append(s.Scenes, sc)
	return sc
}

// AddShot appends a default medium shot to the scene at index sceneIdx.
func (s *Storyboard) AddShot(sceneIdx int) (Shot, bool) {
	if sceneIdx < 0 || sceneIdx >= len(s.Scenes) {
		return Shot{}, false
	}
	shot := Shot{Type: "medium"}
	s.Scenes[sceneIdx].Shots = append(s.Scenes[sceneIdx].Shots, shot)
	return shot, true
}

// AddDialog appends a dialog line to the scene at index sceneIdx, defaulting
// to the scene's voice-over setting and the first character in the cast.
func (s *Storyboard) AddDialog(sceneIdx int) (Dialog, bool) {
	if sceneIdx < 0 || sceneIdx >= len(s.Scenes) {
		return Dialog{}, false
	}
	d := Dialog{Mode: ModeDialog}
	if s.Scenes[sceneIdx].UseVO {
		d.Mode = ModeVoiceOver
	}
	if len(s.Characters) > 0 {
		d.CharacterID = s.Characters[0].ID
	}
	s.Scenes[sceneIdx].Dialog = append(s.Scenes[sceneIdx].Dialog, d)
	return d, true
}
