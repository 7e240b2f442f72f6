package queries

import (
	"time"
)

// Read models (DTO for read side)

// SpaceView represents read-optimized parking space data
type SpaceView struct {
	Number          string    `json:"space_number"`
	Row             int       `json:"row"`
	Column          int       `json:"column"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsOccupied      bool      `json:"is_occupied"`
	VehicleType     *string   `json:"vehicle_type,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

type BookingView struct {
	Reference     string    `json:"booking_reference"`
	SpaceNumber   string    `json:"space_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AmountCents   int64     `json:"total_amount_cents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentID     *string   `json:"payment_id,omitempty"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	Reference     string    `json:"booking_reference"`
	SpaceNumber   string    `json:"space_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	VehicleNumber string    `json:"vehicle_number"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AmountCents   int64     `json:"total_amount_cents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentView struct {
	Reference        string     `json:"payment_reference"`
	BookingReference *string    `json:"booking_reference,omitempty"`
	AmountCents      int64      `json:"amount_cents"`
	Currency         string     `json:"currency"`
	Method           string     `json:"payment_method"`
	Gateway          string     `json:"payment_gateway"`
	GatewayTxnID     *string    `json:"gateway_transaction_id,omitempty"`
	Status           string     `json:"status"`
	PaymentTime      time.Time  `json:"payment_time"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

type QuoteView struct {
	SpaceNumber     string  `json:"space_number"`
	DurationHours   float64 `json:"duration_hours"`
	HourlyRateCents int64   `json:"hourly_rate_cents"`
	AmountCents     int64   `json:"total_cost_cents"`
	Currency        string  `json:"currency"`
}

type LotStatusView struct {
	Timestamp     time.Time   `json:"timestamp"`
	Total         int         `json:"total"`
	Occupied      int         `json:"occupied"`
	Available     int         `json:"available"`
	OccupancyRate float64     `json:"occupancy_rate"`
	Spaces        []SpaceView `json:"spaces"`
}

type EventView struct {
	SpaceNumber string    `json:"space_number"`
	EventType   string    `json:"event_type"`
	VehicleType *string   `json:"vehicle_type,omitempty"`
	Confidence  float64   `json:"confidence"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingFilter narrows listBookings; zero values mean "no filter".
type BookingFilter struct {
	Status   *string
	FromDate *time.Time
}
