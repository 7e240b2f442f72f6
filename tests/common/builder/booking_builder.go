//go:build unit

package builder

import (
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
)

type BookingBuilder struct {
	Reference     string
	SpaceNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	VehicleNumber string
	VehicleType   *string
	StartTime     time.Time
	EndTime       time.Time
	RateCents     int64
	Note          *string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		Reference:     "BK202603150900ABCD",
		SpaceNumber:   "P001",
		CustomerName:  "Dana Cole",
		CustomerEmail: "dana@example.com",
		VehicleNumber: "KA-01-4821",
		StartTime:     start,
		EndTime:       start.Add(3 * time.Hour),
		RateCents:     500,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	customer, err := booking.NewCustomerInfo(b.CustomerName, b.CustomerEmail, b.VehicleNumber, b.CustomerPhone, b.VehicleType)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Reference, b.SpaceNumber, customer, slot, booking.QuoteAmount(slot, b.RateCents), b.Note)
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpaceNumber:   b.SpaceNumber,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Note:          b.Note,
	}
}
