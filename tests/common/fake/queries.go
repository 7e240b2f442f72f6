//go:build unit

package fake

import (
	"context"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

// BookingQueries serves read models straight from the fake store, with
// the same time-derived status projection the SQL-backed queries apply.
type BookingQueries struct {
	U     *UnitOfWork
	Clock clock.Clock
}

func (q *BookingQueries) GetByReference(_ context.Context, reference string) (*queries.BookingView, error) {
	bk, ok := q.U.Bookings[reference]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return bookingViewOf(bk, q.Clock), nil
}

func (q *BookingQueries) List(_ context.Context, filter queries.BookingFilter, _ int) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for _, bk := range q.U.Bookings {
		status := bk.EffectiveStatus(q.Clock.Now()).String()
		if filter.Status != nil && status != *filter.Status {
			continue
		}
		result = append(result, &queries.BookingListItem{
			Reference:     bk.Reference(),
			SpaceNumber:   bk.SpaceNumber(),
			CustomerName:  bk.Customer().Name,
			CustomerEmail: bk.Customer().Email,
			VehicleNumber: bk.Customer().VehicleNumber,
			StartTime:     bk.Slot().Start(),
			EndTime:       bk.Slot().End(),
			AmountCents:   bk.Amount().Cents(),
			Status:        status,
			PaymentStatus: bk.PaymentStatus().String(),
			CreatedAt:     bk.CreatedAt(),
		})
	}
	return result, nil
}

func bookingViewOf(bk *booking.Booking, clk clock.Clock) *queries.BookingView {
	return &queries.BookingView{
		Reference:     bk.Reference(),
		SpaceNumber:   bk.SpaceNumber(),
		CustomerName:  bk.Customer().Name,
		CustomerEmail: bk.Customer().Email,
		CustomerPhone: bk.Customer().Phone,
		VehicleNumber: bk.Customer().VehicleNumber,
		VehicleType:   bk.Customer().VehicleType,
		StartTime:     bk.Slot().Start(),
		EndTime:       bk.Slot().End(),
		AmountCents:   bk.Amount().Cents(),
		Status:        bk.EffectiveStatus(clk.Now()).String(),
		PaymentStatus: bk.PaymentStatus().String(),
		PaymentID:     bk.PaymentID(),
		Note:          bk.Note(),
		CreatedAt:     bk.CreatedAt(),
		UpdatedAt:     bk.UpdatedAt(),
	}
}

type PaymentQueries struct {
	U *UnitOfWork
}

func (q *PaymentQueries) GetByReference(_ context.Context, reference string) (*queries.PaymentView, error) {
	pm, ok := q.U.Payments[reference]
	if !ok {
		return nil, queries.ErrPaymentNotFound
	}
	view := &queries.PaymentView{
		Reference:    pm.Reference(),
		AmountCents:  pm.AmountCents(),
		Currency:     pm.Currency(),
		Method:       pm.Method(),
		Gateway:      pm.Gateway(),
		GatewayTxnID: pm.GatewayTxnID(),
		Status:       pm.Status().String(),
		PaymentTime:  pm.PaymentTime(),
		CompletedAt:  pm.CompletedAt(),
	}
	if pm.BookingID() != nil {
		for _, bk := range q.U.Bookings {
			if bk.ID() == *pm.BookingID() {
				ref := bk.Reference()
				view.BookingReference = &ref
				break
			}
		}
	}
	return view, nil
}
