package queries

import (
	"context"
	"math"

	"github.com/rico33631/smart-park/internal/pkg/clock"
)

const defaultEventLimit = 50

type LotReadStore interface {
	AllSpaces(ctx context.Context) ([]*SpaceView, error)
	RecentEvents(ctx context.Context, limit int32) ([]*EventView, error)
}

type ParkingQueries interface {
	LotStatus(ctx context.Context) (*LotStatusView, error)
	RecentEvents(ctx context.Context, limit int) ([]*EventView, error)
}

type parkingQueriesImpl struct {
	repo  LotReadStore
	clock clock.Clock
}

func NewParkingQueries(repo LotReadStore, clk clock.Clock) ParkingQueries {
	return &parkingQueriesImpl{repo: repo, clock: clk}
}

func (q *parkingQueriesImpl) LotStatus(ctx context.Context) (*LotStatusView, error) {
	spaces, err := q.repo.AllSpaces(ctx)
	if err != nil {
		return nil, err
	}

	occupied := 0
	views := make([]SpaceView, 0, len(spaces))
	for _, sp := range spaces {
		if sp.IsOccupied {
			occupied++
		}
		views = append(views, *sp)
	}

	status := &LotStatusView{
		Timestamp: q.clock.Now(),
		Total:     len(spaces),
		Occupied:  occupied,
		Available: len(spaces) - occupied,
		Spaces:    views,
	}
	// Percentage, rounded to two decimals
	if status.Total > 0 {
		rate := float64(occupied) / float64(status.Total) * 100
		status.OccupancyRate = math.Round(rate*100) / 100
	}
	return status, nil
}

func (q *parkingQueriesImpl) RecentEvents(ctx context.Context, limit int) ([]*EventView, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultEventLimit
	}
	return q.repo.RecentEvents(ctx, int32(limit))
}
