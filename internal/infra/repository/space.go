package repository

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/domain/space"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"

	"github.com/google/uuid"
)

type SpaceRepository struct {
	db db.DBTX
}

func NewSpaceRepository(dbtx db.DBTX) *SpaceRepository {
	return &SpaceRepository{db: dbtx}
}

func (r *SpaceRepository) Create(ctx context.Context, sp *space.Space) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO parking_spaces (id, space_number, grid_row, grid_col, hourly_rate_cents, is_occupied, vehicle_type, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id`,
		sp.ID(), sp.Number(), sp.Row(), sp.Column(), sp.RateCents(), sp.IsOccupied(), sp.VehicleType(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create parking space", err)
	}
	return id, nil
}

func (r *SpaceRepository) Update(ctx context.Context, sp *space.Space) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE parking_spaces
		SET is_occupied = $2, vehicle_type = $3, last_updated = $4, updated_at = now()
		WHERE id = $1`,
		sp.ID(), sp.IsOccupied(), sp.VehicleType(), sp.LastUpdated(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking space not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpaceRepository) FindByNumberForUpdate(ctx context.Context, number string) (*space.Space, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, space_number, grid_row, grid_col, hourly_rate_cents, is_occupied, vehicle_type, last_updated, created_at, updated_at
		FROM parking_spaces
		WHERE space_number = $1
		FOR UPDATE`,
		number,
	)
	return scanSpace(row)
}

func (r *SpaceRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM parking_spaces`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear parking spaces", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpace(row rowScanner) (*space.Space, error) {
	var (
		id                                uuid.UUID
		number                            string
		gridRow, gridCol                  int
		rateCents                         int64
		occupied                          bool
		vehicleType                       *string
		lastUpdated, createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &number, &gridRow, &gridCol, &rateCents, &occupied, &vehicleType, &lastUpdated, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find parking space", err)
	}
	return space.ReconstructSpace(
		id, number, gridRow, gridCol, rateCents, occupied, vehicleType,
		lastUpdated, createdAt, updatedAt,
	), nil
}
