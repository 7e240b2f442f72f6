package request

import "strings"

type ProcessPaymentRequest struct {
	BookingReference string  `json:"booking_reference" binding:"required"`
	PaymentMethod    *string `json:"payment_method,omitempty"`
}

func (r ProcessPaymentRequest) GetPaymentMethod() *string {
	if r.PaymentMethod == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PaymentMethod)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
