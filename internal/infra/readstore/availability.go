package readstore

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

// FindAvailable returns spaces with no physical occupancy and no
// blocking booking overlapping [start, end). One statement, one
// snapshot: the occupancy flags cannot be torn across rows even while
// the detection feed is writing.
func (r *AvailabilityReadStore) FindAvailable(ctx context.Context, start, end time.Time) ([]*queries.SpaceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.space_number, s.grid_row, s.grid_col, s.hourly_rate_cents, s.is_occupied, s.vehicle_type, s.last_updated
		FROM parking_spaces s
		WHERE s.is_occupied = false
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.space_number = s.space_number
			  AND b.status IN ('confirmed', 'active')
			  AND b.start_time < $2
			  AND b.end_time > $1
		  )
		ORDER BY s.space_number`,
		start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available spaces", err)
	}
	defer rows.Close()

	var result []*queries.SpaceView
	for rows.Next() {
		var v queries.SpaceView
		if err := rows.Scan(&v.Number, &v.Row, &v.Column, &v.HourlyRateCents, &v.IsOccupied, &v.VehicleType, &v.LastUpdated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available space", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read available spaces", err)
	}
	return result, nil
}
