package debounce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcherald/mcherald/internal/core/entities/debounce"
	"github.com/mcherald/mcherald/internal/core/entities/status"
)

func TestState_ObserveGrowsStreakOnAgreement(t *testing.T) {
	state := debounce.Blank

	state = state.Observe(status.Online)
	assert.Equal(t, 1, state.Count())

	state = state.Observe(status.Online)
	assert.Equal(t, 2, state.Count())

	state = state.Observe(status.Online)
	assert.Equal(t, 3, state.Count())

	last, seen := state.Last()
	assert.True(t, seen)
	assert.Equal(t, status.Online, last)
}

func TestState_ObserveRestartsStreakOnFlip(t *testing.T) {
	state := debounce.Blank
	state = state.Observe(status.Online)
	state = state.Observe(status.Online)
	state = state.Observe(status.Online)

	state = state.Observe(status.Offline)
	assert.Equal(t, 1, state.Count())

	last, seen := state.Last()
	assert.True(t, seen)
	assert.Equal(t, status.Offline, last)

	state = state.Observe(status.Offline)
	assert.Equal(t, 2, state.Count())
}

func TestState_ObserveDoesNotMutateReceiver(t *testing.T) {
	first := debounce.Blank.Observe(status.Online)
	second := first.Observe(status.Online)

	assert.Equal(t, 1, first.Count())
	assert.Equal(t, 2, second.Count())
}

func TestState_IsStable(t *testing.T) {
	tests := []struct {
		name      string
		observed  []status.Classification
		threshold int
		want      bool
	}{
		{
			name:      "blank state is not stable",
			observed:  nil,
			threshold: 1,
			want:      false,
		},
		{
			name:      "threshold of one is reached immediately",
			observed:  []status.Classification{status.Online},
			threshold: 1,
			want:      true,
		},
		{
			name:      "streak below threshold is not stable",
			observed:  []status.Classification{status.Online},
			threshold: 2,
			want:      false,
		},
		{
			name:      "streak at threshold is stable",
			observed:  []status.Classification{status.Online, status.Online},
			threshold: 2,
			want:      true,
		},
		{
			name:      "streak above threshold remains stable",
			observed:  []status.Classification{status.Offline, status.Offline, status.Offline},
			threshold: 2,
			want:      true,
		},
		{
			name: "flip resets progress towards the threshold",
			observed: []status.Classification{
				status.Online, status.Online, status.Offline,
			},
			threshold: 2,
			want:      false,
		},
		{
			name: "streak rebuilt after a flip becomes stable again",
			observed: []status.Classification{
				status.Online, status.Offline, status.Offline,
			},
			threshold: 2,
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := debounce.Blank
			for _, classification := range tt.observed {
				state = state.Observe(classification)
			}
			assert.Equal(t, tt.want, state.IsStable(tt.threshold))
		})
	}
}

func TestState_LastIsUnsetForBlankState(t *testing.T) {
	_, seen := debounce.Blank.Last()
	assert.False(t, seen)
}
