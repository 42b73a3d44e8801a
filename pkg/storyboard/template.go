package storyboard

// Template returns the built-in starter document used when no draft exists.
func Template() *Storyboard {
	return &Storyboard{
		Model: ModelVeo2,
		Metadata: Metadata{
			ProjectTitle:     "Hair Powder Ad",
			Language:         "id",
			AspectRatio:      AspectRatioVeo2,
			TotalDurationSec: 16,
			Brand: Brand{
				Tagline: "Instant Freshness, Maximum Volume.",
				Tone:    []string{"Energetic", "Comedy"},
			},
		},
		GlobalPrompt: "A short, punchy ad for a new hair powder product targeting young men in Indonesia.",
		Characters: []Character{
			{
				ID:          "c1",
				Name:        "Rio",
				AgeRange:    "20-25",
				Look:        "Indonesian male, casual style, stylish hair.",
				OutfitNotes: "Consistent white t-shirt + denim jacket.",
			},
		},
		Locations: []Location{
			{
				ID:       "l1",
				Name:     "Bedroom",
				Lighting: "Natural morning light through a window.",
				Notes:    "Clean, minimalist style bedroom.",
			},
			{
				ID:       "l2",
				Name:     "Sidewalk Cafe",
				Lighting: "Golden hour, late afternoon.",
				Notes:    "Busy urban sidewalk with cafe seating.",
			},
		},
		BrandAssets: []string{"Product bottle with blue label"},
		AIDA: &AIDA{
			Enabled: true,
			Mapping: map[string]string{"s1": "ATTENTION", "s2": "ACTION"},
		},
		Scenes: []Scene{
			{
				ID:          "s1",
				Title:       "The Transformation",
				DurationSec: 8,
				LocationID:  "l1",
				Ratio:       RatioInherit,
				Shots: []Shot{
					{Type: "close-up", Action: "Rio applies hair powder to his flat hair.", Camera: "Slightly slow-motion."},
					{Type: "medium", Action: "He styles his hair, which now has incredible volume. He smiles confidently at his reflection.", Camera: "Push-in on his happy face."},
				},
				Dialog: []Dialog{
					{CharacterID: "c1", Mode: ModeVoiceOver, Line: "Rambut lepek? Nggak lagi."},
				},
				Hooks: []string{"Negative", "Contradiction"},
			},
			{
				ID:          "s2",
				Title:       "The Result",
				DurationSec: 8,
				LocationID:  "l2",
				Ratio:       RatioInherit,
				Shots: []Shot{
					{Type: "wide", Action: "Rio walks confidently down the street, turning heads.", Camera: "Tracking shot."},
					{Type: "close-up", Action: "He holds up the product to the camera with a wink.", Camera: "Whip pan to product."},
				},
				Dialog: []Dialog{
					{CharacterID: "c1", Mode: ModeVoiceOver, Line: "Dapetin volume maksimal, sekarang juga!"},
				},
				Hooks: []string{"CTA"},
			},
		},
	}
}
