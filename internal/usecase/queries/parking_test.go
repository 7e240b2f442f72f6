//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLotStore struct {
	spaces    []*queries.SpaceView
	events    []*queries.EventView
	lastLimit int32
}

func (s *stubLotStore) AllSpaces(_ context.Context) ([]*queries.SpaceView, error) {
	return s.spaces, nil
}

func (s *stubLotStore) RecentEvents(_ context.Context, limit int32) ([]*queries.EventView, error) {
	s.lastLimit = limit
	return s.events, nil
}

func TestLotStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	t.Run("counts occupied and free spaces", func(t *testing.T) {
		store := &stubLotStore{spaces: []*queries.SpaceView{
			{Number: "P001", IsOccupied: true},
			{Number: "P002", IsOccupied: false},
			{Number: "P003", IsOccupied: false},
		}}
		q := queries.NewParkingQueries(store, clock.NewMockClock(now))

		status, err := q.LotStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, status.Total)
		assert.Equal(t, 1, status.Occupied)
		assert.Equal(t, 2, status.Available)
		assert.InDelta(t, 33.33, status.OccupancyRate, 0.001)
		assert.Equal(t, now, status.Timestamp)
		assert.Len(t, status.Spaces, 3)
	})

	t.Run("empty lot reads as zero rate", func(t *testing.T) {
		q := queries.NewParkingQueries(&stubLotStore{}, clock.NewMockClock(now))

		status, err := q.LotStatus(ctx)
		require.NoError(t, err)
		assert.Zero(t, status.OccupancyRate)
	})
}

func TestRecentEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	t.Run("out-of-range limits fall back to the default", func(t *testing.T) {
		store := &stubLotStore{}
		q := queries.NewParkingQueries(store, clock.NewMockClock(now))

		_, err := q.RecentEvents(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(50), store.lastLimit)

		_, err = q.RecentEvents(ctx, 1000)
		require.NoError(t, err)
		assert.Equal(t, int32(50), store.lastLimit)

		_, err = q.RecentEvents(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, int32(25), store.lastLimit)
	})
}
