package commands

import (
	"context"
	"log/slog"

	"github.com/rico33631/smart-park/internal/domain/space"
	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/pkg/errs"
	"github.com/rico33631/smart-park/internal/usecase/shared"
)

type OccupancyResult struct {
	SpaceNumber string
	Changed     bool
}

type InitializeResult struct {
	Removed int64
	Created int
}

type ParkingCommands interface {
	SetOccupancy(ctx context.Context, req reqdto.OccupancyUpdateRequest) (*OccupancyResult, error)
	InitializeLot(ctx context.Context) (*InitializeResult, error)
}

type parkingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.LotConfig
}

func NewParkingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.LotConfig) ParkingCommands {
	return &parkingUseCaseImpl{uow: uow, clock: clk, cfg: cfg}
}

// SetOccupancy applies one detection-feed reading. An event is recorded
// only when the flag actually flips, so replaying the same reading is
// harmless.
func (u *parkingUseCaseImpl) SetOccupancy(ctx context.Context, req reqdto.OccupancyUpdateRequest) (*OccupancyResult, error) {
	var result OccupancyResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Spaces().FindByNumberForUpdate(ctx, req.SpaceNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := u.clock.Now()
		changed := sp.SetOccupancy(*req.IsOccupied, req.VehicleType, now)
		if err := tx.Spaces().Update(ctx, sp); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if changed {
			ev := space.NewEvent(sp.Number(), *req.IsOccupied, req.VehicleType, req.GetConfidence(), now)
			if err := tx.Events().Create(ctx, ev); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		result = OccupancyResult{SpaceNumber: sp.Number(), Changed: changed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// InitializeLot rebuilds the space catalog from scratch. Existing rows
// are removed first, so re-running it resets every occupancy flag.
func (u *parkingUseCaseImpl) InitializeLot(ctx context.Context) (*InitializeResult, error) {
	var result InitializeResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Spaces().DeleteAll(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.Removed = removed

		index := 1
		for row := 0; row < u.cfg.Rows; row++ {
			for col := 0; col < u.cfg.Columns; col++ {
				sp, err := space.NewSpace(space.NumberFor(index), row, col, u.cfg.HourlyRateCents)
				if err != nil {
					return errs.Mark(err, ErrDomainValidation)
				}
				if _, err := tx.Spaces().Create(ctx, sp); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				index++
			}
		}
		result.Created = index - 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking lot initialized",
		"removed", result.Removed,
		"created", result.Created)
	return &result, nil
}
