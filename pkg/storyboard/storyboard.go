// Package storyboard holds the storyboard document model and the rules that
// keep a user-edited document internally consistent: per-field validation,
// cross-entity ID references, model-dependent ratio constraints, and
// confirmation-gated removal of referenced entities.
package storyboard

// Model selects which generation-model rule set applies to the whole document.
type Model string

const (
	ModelVeo2 Model = "veo-2"
	ModelVeo3 Model = "veo-3"
)

// DialogMode distinguishes spoken dialog from voice-over narration.
type DialogMode string

const (
	ModeDialog    DialogMode = "dialog"
	ModeVoiceOver DialogMode = "vo"
)

// RatioInherit marks a scene as using the global aspect ratio.
const RatioInherit = "inherit"

// AspectRatioVeo2 is the only ratio veo-2 accepts.
const AspectRatioVeo2 = "9:16"

// AspectRatiosVeo3 enumerates the ratios veo-3 accepts.
var AspectRatiosVeo3 = []string{"9:16", "16:9", "1:1"}

var Languages = []string{"id", "en"}

var Tones = []string{
	"Comedy", "Warm", "Inspirational", "Dramatic", "Corporate", "Educational", "Cinematic", "Energetic",
}

var ShotTypes = []string{
	"wide", "medium", "close-up", "insert", "POV", "establishing", "dutch-angle", "aerial",
}

var HookTypes = []string{
	"Negative", "Contradiction", "Question", "Shocking", "Bold", "CTA",
}

type Storyboard struct {
	Model        Model       `json:"model" jsonschema:"enum=veo-2,enum=veo-3" jsonschema_description:"Generation model variant; selects which aspect-ratio rules apply"`
	Metadata     Metadata    `json:"metadata" jsonschema_description:"Project-level settings shared by every scene"`
	Characters   []Character `json:"characters" jsonschema_description:"Cast of characters referenced by dialog lines"`
	Locations    []Location  `json:"locations" jsonschema_description:"Locations referenced by scenes"`
	BrandAssets  []string    `json:"brand_assets,omitempty" jsonschema_description:"Descriptions of brand assets to keep consistent across shots"`
	GlobalPrompt string      `json:"global_prompt,omitempty" jsonschema_description:"Overall context, goals, and core message of the video"`
	AIDA         *AIDA       `json:"aida,omitempty" jsonschema_description:"Optional mapping of scenes to AIDA marketing stages"`
	Scenes       []Scene     `json:"scenes" jsonschema_description:"Ordered scenes making up the storyboard"`
	Seed         *int64      `json:"seed,omitempty" jsonschema_description:"Optional randomization seed for reproducible generations"`
	Variations   *int        `json:"variations,omitempty" jsonschema_description:"Number of variations to generate (0-3)"`
}

type Metadata struct {
	ProjectTitle     string  `json:"project_title" jsonschema_description:"Project title"`
	Language         string  `json:"language" jsonschema:"enum=id,enum=en" jsonschema_description:"Spoken language of dialog and voice-over"`
	AspectRatio      string  `json:"aspect_ratio" jsonschema_description:"Global aspect ratio; constrained by the selected model"`
	TotalDurationSec float64 `json:"total_duration_sec" jsonschema_description:"Target total duration in seconds"`
	Brand            Brand   `json:"brand" jsonschema_description:"Brand voice settings"`
}

type Brand struct {
	Tagline string   `json:"tagline,omitempty" jsonschema_description:"Brand tagline"`
	Tone    []string `json:"tone,omitempty" jsonschema_description:"Tone tags (e.g. Energetic, Comedy)"`
}

type AIDA struct {
	Enabled bool              `json:"enabled" jsonschema_description:"Whether the AIDA mapping is active"`
	Mapping map[string]string `json:"mapping,omitempty" jsonschema_description:"Scene ID to marketing stage (e.g. s1: ATTENTION)"`
}

type Character struct {
	ID          string `json:"id" jsonschema_description:"System-assigned ID, immutable once created"`
	Name        string `json:"name,omitempty" jsonschema_description:"Character name"`
	AgeRange    string `json:"age_range" jsonschema_description:"Age range, e.g. 20-25"`
	Look        string `json:"look" jsonschema_description:"Physical appearance and style"`
	OutfitNotes string `json:"outfit_notes,omitempty" jsonschema_description:"Notes for outfit consistency across scenes"`
}

type Location struct {
	ID       string `json:"id" jsonschema_description:"System-assigned ID, immutable once created"`
	Name     string `json:"name" jsonschema_description:"Location name"`
	Lighting string `json:"lighting,omitempty" jsonschema_description:"Lighting description, e.g. golden hour"`
	Notes    string `json:"notes,omitempty" jsonschema_description:"Key features and atmosphere"`
}

type Scene struct {
	ID          string   `json:"id" jsonschema_description:"System-assigned ID, immutable once created"`
	Title       string   `json:"title,omitempty" jsonschema_description:"Scene title"`
	DurationSec float64  `json:"duration_sec" jsonschema_description:"Scene duration in seconds"`
	LocationID  string   `json:"location_id" jsonschema_description:"ID of the location this scene takes place in"`
	Ratio       string   `json:"ratio" jsonschema_description:"Scene aspect ratio, or inherit to use the global ratio"`
	UseVO       bool     `json:"use_vo" jsonschema_description:"Use voice-over instead of dialog for this scene"`
	Shots       []Shot   `json:"shots" jsonschema_description:"Ordered shots within the scene"`
	Dialog      []Dialog `json:"dialog" jsonschema_description:"Ordered dialog or voice-over lines"`
	Hooks       []string `json:"hooks,omitempty" jsonschema_description:"Attention-hook tags for this scene"`
}

type Shot struct {
	Type        string     `json:"type" jsonschema_description:"Shot type from the controlled vocabulary (wide, medium, close-up, ...)"`
	Camera      string     `json:"camera,omitempty" jsonschema_description:"Camera movement, e.g. handheld, push-in"`
	Action      string     `json:"action" jsonschema_description:"What happens in the shot"`
	VisualStyle string     `json:"visual_style,omitempty" jsonschema_description:"Visual style notes"`
	Audio       *ShotAudio `json:"audio,omitempty" jsonschema_description:"Music and sound effects"`
	OverlayText string     `json:"overlay_text,omitempty" jsonschema_description:"On-screen overlay text"`
	Notes       string     `json:"notes,omitempty" jsonschema_description:"Additional shot notes"`
}

type ShotAudio struct {
	Music string   `json:"music,omitempty" jsonschema_description:"Music description"`
	SFX   []string `json:"sfx,omitempty" jsonschema_description:"Sound effects"`
}

type Dialog struct {
	CharacterID string     `json:"character_id" jsonschema_description:"ID of the speaking character"`
	Mode        DialogMode `json:"mode" jsonschema:"enum=dialog,enum=vo" jsonschema_description:"Spoken dialog or voice-over"`
	Line        string     `json:"line" jsonschema_description:"The spoken line"`
}

// Clone returns a deep copy. Mutating the copy never touches the original.
func (s *Storyboard) Clone() *Storyboard {
	if s == nil {
		return nil
	}
	out := *s
	out.Characters = append([]Character(nil), s.Characters...)
	out.Locations = append([]Location(nil), s.Locations...)
	out.BrandAssets = append([]string(nil), s.BrandAssets...)
	out.Metadata.Brand.Tone = append([]string(nil), s.Metadata.Brand.Tone...)
	if s.AIDA != nil {
		aida := AIDA{Enabled: s.AIDA.Enabled}
		if s.AIDA.Mapping != nil {
			aida.Mapping = make(map[string]string, len(s.AIDA.Mapping))
			for k, v := range s.AIDA.Mapping {
				aida.Mapping[k] = v
			}
		}
		out.AIDA = &aida
	}
	if s.Seed != nil {
		seed := *s.Seed
		out.Seed = &seed
	}
	if s.Variations != nil {
		variations := *s.Variations
		out.Variations = &variations
	}
	out.Scenes = make([]Scene, len(s.Scenes))
	for i, scene := range s.Scenes {
		out.Scenes[i] = scene.clone()
	}
	return &out
}

func (sc Scene) clone() Scene {
	out := sc
	out.Hooks = append([]string(nil), sc.Hooks...)
	out.Dialog = append([]Dialog(nil), sc.Dialog...)
	out.Shots = make([]Shot, len(sc.Shots))
	for i, shot := range sc.Shots {
		out.Shots[i] = shot
		if shot.Audio != nil {
			audio := ShotAudio{Music: shot.Audio.Music, SFX: append([]string(nil), shot.Audio.SFX...)}
			out.Shots[i].Audio = &audio
		}
	}
	return out
}
