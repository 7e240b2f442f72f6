package queries

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidStatus   = errs.New("invalid status filter")
)

type BookingReadStore interface {
	FindByReference(ctx context.Context, reference string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, limit int) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo     BookingReadStore
	clock    clock.Clock
	pageSize int
}

func NewBookingQueries(repo BookingReadStore, clk clock.Clock, cfg config.BookingConfig) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clk, pageSize: cfg.ListPageSize}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	v, err := q.repo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	v.Status = projectStatus(v.Status, v.StartTime, v.EndTime, q.clock.Now())
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, limit int) ([]*BookingListItem, error) {
	var wanted *booking.Status
	if filter.Status != nil {
		st := booking.Status(*filter.Status)
		if !st.IsValid() {
			return nil, ErrInvalidStatus
		}
		wanted = &st
		// Active and completed are projections of confirmed rows, so
		// the store is filtered on confirmed and narrowed after.
		if st == booking.StatusActive || st == booking.StatusCompleted {
			stored := booking.StatusConfirmed.String()
			filter.Status = &stored
		}
	}
	if limit <= 0 || limit > q.pageSize {
		limit = q.pageSize
	}
	rows, err := q.repo.List(ctx, filter, int32(limit))
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	result := make([]*BookingListItem, 0, len(rows))
	for _, item := range rows {
		item.Status = projectStatus(item.Status, item.StartTime, item.EndTime, now)
		if wanted != nil && item.Status != wanted.String() {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// Confirmed bookings whose slot has started or ended read as active or
// completed. The derivation itself lives in the domain alongside the
// entity's EffectiveStatus.
func projectStatus(status string, start, end, now time.Time) string {
	return booking.ProjectStatus(booking.Status(status), start, end, now).String()
}
