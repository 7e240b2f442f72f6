package readstore

import (
	"context"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type LotReadStore struct {
	db db.DBTX
}

func NewLotReadStore(dbtx db.DBTX) *LotReadStore {
	return &LotReadStore{db: dbtx}
}

func (r *LotReadStore) FindSpaceByNumber(ctx context.Context, number string) (*queries.SpaceView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT space_number, grid_row, grid_col, hourly_rate_cents, is_occupied, vehicle_type, last_updated
		FROM parking_spaces
		WHERE space_number = $1`,
		number,
	)

	var v queries.SpaceView
	err := row.Scan(&v.Number, &v.Row, &v.Column, &v.HourlyRateCents, &v.IsOccupied, &v.VehicleType, &v.LastUpdated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find space by number", err)
	}
	return &v, nil
}

func (r *LotReadStore) AllSpaces(ctx context.Context) ([]*queries.SpaceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT space_number, grid_row, grid_col, hourly_rate_cents, is_occupied, vehicle_type, last_updated
		FROM parking_spaces
		ORDER BY space_number`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query spaces", err)
	}
	defer rows.Close()

	var result []*queries.SpaceView
	for rows.Next() {
		var v queries.SpaceView
		if err := rows.Scan(&v.Number, &v.Row, &v.Column, &v.HourlyRateCents, &v.IsOccupied, &v.VehicleType, &v.LastUpdated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan space", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spaces", err)
	}
	return result, nil
}

// RecentEvents returns the newest detection events first.
func (r *LotReadStore) RecentEvents(ctx context.Context, limit int32) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT space_number, event_type, vehicle_type, confidence, occurred_at
		FROM parking_events
		ORDER BY occurred_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query recent events", err)
	}
	defer rows.Close()

	var result []*queries.EventView
	for rows.Next() {
		var v queries.EventView
		if err := rows.Scan(&v.SpaceNumber, &v.EventType, &v.VehicleType, &v.Confidence, &v.OccurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read events", err)
	}
	return result, nil
}
