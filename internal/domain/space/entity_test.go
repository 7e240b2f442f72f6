//go:build unit

package space_test

import (
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/domain/space"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpace(t *testing.T) {
	sp, err := space.NewSpace("P001", 0, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, "P001", sp.Number())
	assert.False(t, sp.IsOccupied())

	tests := []struct {
		name     string
		number   string
		row, col int
		rate     int64
		errIs    error
	}{
		{"empty number", "", 0, 0, 500, space.ErrEmptySpaceNumber},
		{"whitespace number", "  ", 0, 0, 500, space.ErrEmptySpaceNumber},
		{"negative row", "P001", -1, 0, 500, space.ErrNegativePosition},
		{"negative column", "P001", 0, -1, 500, space.ErrNegativePosition},
		{"zero rate", "P001", 0, 0, 0, space.ErrInvalidRate},
		{"negative rate", "P001", 0, 0, -100, space.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := space.NewSpace(tt.number, tt.row, tt.col, tt.rate)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestSetOccupancy(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	vt := "car"

	t.Run("flip reports changed", func(t *testing.T) {
		sp, err := space.NewSpace("P001", 0, 0, 500)
		require.NoError(t, err)

		assert.True(t, sp.SetOccupancy(true, &vt, now))
		assert.True(t, sp.IsOccupied())
		assert.Equal(t, now, sp.LastUpdated())

		assert.True(t, sp.SetOccupancy(false, nil, now.Add(time.Hour)))
		assert.False(t, sp.IsOccupied())
	})

	t.Run("same value reports unchanged", func(t *testing.T) {
		sp, err := space.NewSpace("P001", 0, 0, 500)
		require.NoError(t, err)

		require.True(t, sp.SetOccupancy(true, &vt, now))
		assert.False(t, sp.SetOccupancy(true, &vt, now.Add(time.Minute)))
		// Timestamp still advances on a repeated reading
		assert.Equal(t, now.Add(time.Minute), sp.LastUpdated())
	})
}

func TestNumberFor(t *testing.T) {
	assert.Equal(t, "P001", space.NumberFor(1))
	assert.Equal(t, "P050", space.NumberFor(50))
	assert.Equal(t, "P100", space.NumberFor(100))
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	vt := "truck"

	entry := space.NewEvent("P001", true, &vt, 0.92, now)
	assert.Equal(t, space.EventEntry, entry.Type())
	assert.Equal(t, "P001", entry.SpaceNumber())
	assert.Equal(t, 0.92, entry.Confidence())

	exit := space.NewEvent("P001", false, nil, 1.0, now)
	assert.Equal(t, space.EventExit, exit.Type())
	assert.Nil(t, exit.VehicleType())
}
