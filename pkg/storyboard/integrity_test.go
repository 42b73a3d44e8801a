package storyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCharacterRemovalReportsUsages(t *testing.T) {
	doc := Template()

	plan, err := PlanCharacterRemoval(doc, "c1")
	require.NoError(t, err)
	assert.Equal(t, []DialogRef{{Scene: 0, Line: 0}, {Scene: 1, Line: 0}}, plan.Usages)

	// Planning alone never mutates.
	assert.Equal(t, Template(), doc)
}

func TestCharacterRemovalApplyClearsAndRemoves(t *testing.T) {
	doc := Template()
	plan, err := PlanCharacterRemoval(doc, "c1")
	require.NoError(t, err)

	next := plan.Apply(doc)

	assert.Empty(t, next.Characters)
	assert.Equal(t, "", next.Scenes[0].Dialog[0].CharacterID)
	assert.Equal(t, "", next.Scenes[1].Dialog[0].CharacterID)

	// The dialog lines themselves survive, keeping the per-scene minimum.
	assert.Len(t, next.Scenes[0].Dialog, 1)

	// All-or-nothing: the input document is untouched.
	assert.Equal(t, Template(), doc)
}

func TestCharacterRemovalUnreferenced(t *testing.T) {
	doc := Template()
	doc.Characters = append(doc.Characters, Character{ID: "c2", AgeRange: "30-40", Look: "Barista."})

	plan, err := PlanCharacterRemoval(doc, "c2")
	require.NoError(t, err)
	assert.Empty(t, plan.Usages)

	next := plan.Apply(doc)
	assert.Len(t, next.Characters, 1)
	assert.Equal(t, "c1", next.Characters[0].ID)
	assert.Equal(t, "c1", next.Scenes[0].Dialog[0].CharacterID)
}

func TestPlanCharacterRemovalUnknown(t *testing.T) {
	_, err := PlanCharacterRemoval(Template(), "c99")
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestPlanLocationRemovalReportsUsages(t *testing.T) {
	doc := Template()

	plan, err := PlanLocationRemoval(doc, "l1")
	require.NoError(t, err)
	assert.Equal(t, []SceneRef{{Scene: 0}}, plan.Usages)
}

func TestLocationRemovalApplyClearsAndRemoves(t *testing.T) {
	doc := Template()
	plan, err := PlanLocationRemoval(doc, "l2")
	require.NoError(t, err)

	next := plan.Apply(doc)

	assert.Len(t, next.Locations, 1)
	assert.Equal(t, "l1", next.Locations[0].ID)
	assert.Equal(t, "", next.Scenes[1].LocationID)
	assert.Equal(t, "l1", next.Scenes[0].LocationID)
	assert.Equal(t, Template(), doc)

	// The cleared reference is an ordinary field error, not a crash.
	_, errs := Validate(next)
	require.Len(t, errs.Issues(), 1)
	assert.Equal(t, "scenes.1.location_id", errs.Issues()[0].Path)
	assert.Equal(t, "Location is required", errs.Issues()[0].Message)
}

func TestPlanLocationRemovalUnknown(t *testing.T) {
	_, err := PlanLocationRemoval(Template(), "l99")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}
