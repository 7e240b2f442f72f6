package response

import (
	"time"

	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type PaymentResponse struct {
	PaymentReference     string     `json:"payment_reference"`
	BookingReference     *string    `json:"booking_reference,omitempty"`
	AmountCents          int64      `json:"amount_cents"`
	Currency             string     `json:"currency"`
	PaymentMethod        string     `json:"payment_method"`
	PaymentGateway       string     `json:"payment_gateway"`
	GatewayTransactionID *string    `json:"gateway_transaction_id,omitempty"`
	Status               string     `json:"status"`
	PaymentTime          time.Time  `json:"payment_time"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		PaymentReference:     v.Reference,
		BookingReference:     v.BookingReference,
		AmountCents:          v.AmountCents,
		Currency:             v.Currency,
		PaymentMethod:        v.Method,
		PaymentGateway:       v.Gateway,
		GatewayTransactionID: v.GatewayTxnID,
		Status:               v.Status,
		PaymentTime:          v.PaymentTime,
		CompletedAt:          v.CompletedAt,
	}
}
