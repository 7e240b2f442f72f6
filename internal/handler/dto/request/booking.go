package request

import (
	"strings"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type CreateBookingRequest struct {
	SpaceNumber   string    `json:"space_number" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	VehicleNumber string    `json:"vehicle_number" binding:"required"`
	VehicleType   *string   `json:"vehicle_type,omitempty"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	Note          *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToCustomer() (booking.CustomerInfo, error) {
	return booking.NewCustomerInfo(r.CustomerName, r.CustomerEmail, r.VehicleNumber, r.CustomerPhone, r.VehicleType)
}

func (r CreateBookingRequest) ToSlot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.StartTime, r.EndTime)
}

func (r CreateBookingRequest) GetNote() *string {
	if r.Note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type QuoteRequest struct {
	SpaceNumber string    `json:"space_number" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type AvailabilityQuery struct {
	StartTime time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   time.Time `form:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ListBookingsQuery struct {
	Status   *string    `form:"status"`
	FromDate *time.Time `form:"from_date" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit    int        `form:"limit"`
}

func (q ListBookingsQuery) ToFilter() queries.BookingFilter {
	filter := queries.BookingFilter{FromDate: q.FromDate}
	if q.Status != nil {
		trimmed := strings.TrimSpace(*q.Status)
		if trimmed != "" {
			filter.Status = &trimmed
		}
	}
	return filter
}
