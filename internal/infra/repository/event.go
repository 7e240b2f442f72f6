package repository

import (
	"context"

	"github.com/rico33631/smart-park/internal/domain/space"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) Create(ctx context.Context, ev *space.Event) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO parking_events (id, space_number, event_type, vehicle_type, confidence, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.ID(), ev.SpaceNumber(), string(ev.Type()), ev.VehicleType(), ev.Confidence(), ev.OccurredAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record parking event", err)
	}
	return nil
}
