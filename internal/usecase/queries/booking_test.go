//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingStore struct {
	view       *queries.BookingView
	items      []*queries.BookingListItem
	lastFilter queries.BookingFilter
	lastLimit  int32
}

func (s *stubBookingStore) FindByReference(_ context.Context, _ string) (*queries.BookingView, error) {
	if s.view == nil {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	v := *s.view
	return &v, nil
}

func (s *stubBookingStore) List(_ context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingListItem, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	return s.items, nil
}

func listItem(reference, status string, start, end time.Time) *queries.BookingListItem {
	return &queries.BookingListItem{
		Reference:   reference,
		SpaceNumber: "P001",
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func TestBookingQueriesGetByReference(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	tests := []struct {
		name   string
		stored string
		now    time.Time
		want   string
	}{
		{"pending stays pending", "pending", end.Add(time.Hour), "pending"},
		{"confirmed before start", "confirmed", start.Add(-time.Hour), "confirmed"},
		{"confirmed at start reads active", "confirmed", start, "active"},
		{"confirmed mid-slot reads active", "confirmed", start.Add(time.Hour), "active"},
		{"confirmed at end reads completed", "confirmed", end, "completed"},
		{"cancelled is never projected", "cancelled", start.Add(time.Hour), "cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubBookingStore{view: &queries.BookingView{
				Reference: "BK202603150800ABCD",
				StartTime: start,
				EndTime:   end,
				Status:    tt.stored,
			}}
			q := queries.NewBookingQueries(store, clock.NewMockClock(tt.now), config.NewTestConfig().Booking)

			view, err := q.GetByReference(ctx, "BK202603150800ABCD")
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Status)
		})
	}

	t.Run("not found maps to the sentinel", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubBookingStore{}, clock.NewMockClock(start), config.NewTestConfig().Booking)
		_, err := q.GetByReference(ctx, "BK202603150800ABCD")
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueriesList(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubBookingStore{}, clock.NewMockClock(start), config.NewTestConfig().Booking)
		bogus := "parked"
		_, err := q.List(ctx, queries.BookingFilter{Status: &bogus}, 0)
		assert.ErrorIs(t, err, queries.ErrInvalidStatus)
	})

	t.Run("active filter queries confirmed rows and narrows by projection", func(t *testing.T) {
		// BK1 is mid-slot, BK2 has not started yet.
		store := &stubBookingStore{items: []*queries.BookingListItem{
			listItem("BK1", "confirmed", start, end),
			listItem("BK2", "confirmed", start.Add(4*time.Hour), end.Add(4*time.Hour)),
		}}
		q := queries.NewBookingQueries(store, clock.NewMockClock(start.Add(time.Hour)), config.NewTestConfig().Booking)

		active := "active"
		result, err := q.List(ctx, queries.BookingFilter{Status: &active}, 0)
		require.NoError(t, err)

		require.NotNil(t, store.lastFilter.Status)
		assert.Equal(t, "confirmed", *store.lastFilter.Status)
		require.Len(t, result, 1)
		assert.Equal(t, "BK1", result[0].Reference)
		assert.Equal(t, "active", result[0].Status)
	})

	t.Run("stored statuses pass through unchanged", func(t *testing.T) {
		store := &stubBookingStore{items: []*queries.BookingListItem{
			listItem("BK1", "pending", start, end),
		}}
		q := queries.NewBookingQueries(store, clock.NewMockClock(end.Add(time.Hour)), config.NewTestConfig().Booking)

		pending := "pending"
		result, err := q.List(ctx, queries.BookingFilter{Status: &pending}, 0)
		require.NoError(t, err)
		require.NotNil(t, store.lastFilter.Status)
		assert.Equal(t, "pending", *store.lastFilter.Status)
		require.Len(t, result, 1)
		assert.Equal(t, "pending", result[0].Status)
	})

	t.Run("limit is clamped to the page size", func(t *testing.T) {
		store := &stubBookingStore{}
		q := queries.NewBookingQueries(store, clock.NewMockClock(start), config.NewTestConfig().Booking)

		_, err := q.List(ctx, queries.BookingFilter{}, 5000)
		require.NoError(t, err)
		assert.Equal(t, int32(100), store.lastLimit)

		_, err = q.List(ctx, queries.BookingFilter{}, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(100), store.lastLimit)
	})
}
