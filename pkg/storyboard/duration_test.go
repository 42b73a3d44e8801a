package storyboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 16.0, TotalDuration([]Scene{{DurationSec: 8}, {DurationSec: 8}}))
	assert.Equal(t, 0.0, TotalDuration(nil))

	// Missing and non-numeric durations contribute zero.
	assert.Equal(t, 8.0, TotalDuration([]Scene{{DurationSec: 8}, {}}))
	assert.Equal(t, 8.0, TotalDuration([]Scene{{DurationSec: 8}, {DurationSec: math.NaN()}}))
	assert.Equal(t, 8.0, TotalDuration([]Scene{{DurationSec: 8}, {DurationSec: math.Inf(1)}}))
}

func TestDurationStatus(t *testing.T) {
	doc := Template()
	status := doc.DurationStatus()
	assert.Equal(t, 16.0, status.Total)
	assert.Equal(t, 16.0, status.Target)
	assert.False(t, status.Over)

	doc.Scenes[0].DurationSec = 12
	status = doc.DurationStatus()
	assert.Equal(t, 20.0, status.Total)
	assert.True(t, status.Over)
}
