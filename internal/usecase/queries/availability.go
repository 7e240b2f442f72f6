package queries

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/pkg/errs"
)

var (
	ErrSpaceNotFound   = errs.New("parking space not found")
	ErrInvalidTimeSlot = errs.New("invalid time slot")
)

type AvailabilityReadStore interface {
	FindAvailable(ctx context.Context, start, end time.Time) ([]*SpaceView, error)
}

type SpaceReadStore interface {
	FindSpaceByNumber(ctx context.Context, number string) (*SpaceView, error)
}

type AvailabilityQueries interface {
	ListAvailable(ctx context.Context, start, end time.Time) ([]*SpaceView, error)
	Quote(ctx context.Context, spaceNumber string, start, end time.Time) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	availability AvailabilityReadStore
	spaces       SpaceReadStore
	currency     string
}

func NewAvailabilityQueries(availability AvailabilityReadStore, spaces SpaceReadStore, cfg config.PaymentConfig) AvailabilityQueries {
	return &availabilityQueriesImpl{
		availability: availability,
		spaces:       spaces,
		currency:     cfg.Currency,
	}
}

func (q *availabilityQueriesImpl) ListAvailable(ctx context.Context, start, end time.Time) ([]*SpaceView, error) {
	if _, err := booking.NewTimeSlot(start, end); err != nil {
		return nil, ErrInvalidTimeSlot
	}
	return q.availability.FindAvailable(ctx, start, end)
}

// Quote prices a slot without reserving anything. The same integer
// arithmetic runs at booking time, so a quote always matches the
// amount a subsequent booking is charged.
func (q *availabilityQueriesImpl) Quote(ctx context.Context, spaceNumber string, start, end time.Time) (*QuoteView, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, ErrInvalidTimeSlot
	}

	sp, err := q.spaces.FindSpaceByNumber(ctx, spaceNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	amount := booking.QuoteAmount(slot, sp.HourlyRateCents)
	return &QuoteView{
		SpaceNumber:     sp.Number,
		DurationHours:   slot.Duration().Hours(),
		HourlyRateCents: sp.HourlyRateCents,
		AmountCents:     amount.Cents(),
		Currency:        q.currency,
	}, nil
}
