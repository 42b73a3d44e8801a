package storyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, "c1", NextID("c", nil))
	assert.Equal(t, "c1", NextID("c", []string{}))
	assert.Equal(t, "c2", NextID("c", []string{"c1"}))
	assert.Equal(t, "c4", NextID("c", []string{"c1", "c3"}))
	assert.Equal(t, "s3", NextID("s", []string{"s1", "s2", "c9", "loc4"}))
}

func TestNextIDIgnoresMalformedSuffixes(t *testing.T) {
	assert.Equal(t, "c1", NextID("c", []string{"cx", "c", "c-2", "c1x"}))
	assert.Equal(t, "c8", NextID("c", []string{"c07", "cx"}))
}

func TestNextIDNeverRefillsGaps(t *testing.T) {
	ids := []string{"c1", "c3"}

	next := NextID("c", ids)
	require.Equal(t, "c4", next)
	ids = append(ids, next)

	// Removing an earlier entity leaves a gap; the allocator keeps counting
	// upward instead of handing c3 out again.
	ids = []string{"c1", "c4"}
	assert.Equal(t, "c5", NextID("c", ids))
}

func TestAddEntitiesAllocateSequentially(t *testing.T) {
	doc := Template()

	c := doc.AddCharacter()
	assert.Equal(t, "c2", c.ID)

	l := doc.AddLocation()
	assert.Equal(t, "l3", l.ID)

	sc := doc.AddScene()
	assert.Equal(t, "s3", sc.ID)
	require.Len(t, sc.Shots, 1)
	require.Len(t, sc.Dialog, 1)
	assert.Equal(t, "medium", sc.Shots[0].Type)
	assert.Equal(t, "c1", sc.Dialog[0].CharacterID)
}

func TestAddShotAndDialog(t *testing.T) {
	doc := Template()

	shot, ok := doc.AddShot(0)
	require.True(t, ok)
	assert.Equal(t, "medium", shot.Type)
	assert.Len(t, doc.Scenes[0].Shots, 3)

	doc.Scenes[0].UseVO = true
	d, ok := doc.AddDialog(0)
	require.True(t, ok)
	assert.Equal(t, ModeVoiceOver, d.Mode)
	assert.Equal(t, "c1", d.CharacterID)

	_, ok = doc.AddShot(99)
	assert.False(t, ok)
	_, ok = doc.AddDialog(-1)
	assert.False(t, ok)
}
