package response

import (
	"time"

	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type BookingResponse struct {
	BookingReference string    `json:"booking_reference"`
	SpaceNumber      string    `json:"space_number"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    *string   `json:"customer_phone,omitempty"`
	VehicleNumber    string    `json:"vehicle_number"`
	VehicleType      string    `json:"vehicle_type"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentID        *string   `json:"payment_id,omitempty"`
	Note             *string   `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	BookingReference string    `json:"booking_reference"`
	SpaceNumber      string    `json:"space_number"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	VehicleNumber    string    `json:"vehicle_number"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

type QuoteResponse struct {
	SpaceNumber     string  `json:"space_number"`
	DurationHours   float64 `json:"duration_hours"`
	HourlyRateCents int64   `json:"hourly_rate_cents"`
	TotalCostCents  int64   `json:"total_cost_cents"`
	Currency        string  `json:"currency"`
}

type SpaceResponse struct {
	SpaceNumber     string    `json:"space_number"`
	Row             int       `json:"row"`
	Column          int       `json:"column"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsOccupied      bool      `json:"is_occupied"`
	VehicleType     *string   `json:"vehicle_type,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		BookingReference: v.Reference,
		SpaceNumber:      v.SpaceNumber,
		CustomerName:     v.CustomerName,
		CustomerEmail:    v.CustomerEmail,
		CustomerPhone:    v.CustomerPhone,
		VehicleNumber:    v.VehicleNumber,
		VehicleType:      v.VehicleType,
		StartTime:        v.StartTime,
		EndTime:          v.EndTime,
		TotalAmountCents: v.AmountCents,
		Status:           v.Status,
		PaymentStatus:    v.PaymentStatus,
		PaymentID:        v.PaymentID,
		Note:             v.Note,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		BookingReference: v.Reference,
		SpaceNumber:      v.SpaceNumber,
		CustomerName:     v.CustomerName,
		CustomerEmail:    v.CustomerEmail,
		VehicleNumber:    v.VehicleNumber,
		StartTime:        v.StartTime,
		EndTime:          v.EndTime,
		TotalAmountCents: v.AmountCents,
		Status:           v.Status,
		PaymentStatus:    v.PaymentStatus,
		CreatedAt:        v.CreatedAt,
	}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		SpaceNumber:     v.SpaceNumber,
		DurationHours:   v.DurationHours,
		HourlyRateCents: v.HourlyRateCents,
		TotalCostCents:  v.AmountCents,
		Currency:        v.Currency,
	}
}

func FromSpaceView(v *queries.SpaceView) *SpaceResponse {
	return &SpaceResponse{
		SpaceNumber:     v.Number,
		Row:             v.Row,
		Column:          v.Column,
		HourlyRateCents: v.HourlyRateCents,
		IsOccupied:      v.IsOccupied,
		VehicleType:     v.VehicleType,
		LastUpdated:     v.LastUpdated,
	}
}
