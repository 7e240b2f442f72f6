package repository

import (
	"context"

	"github.com/rico33631/smart-park/internal/domain/payment"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Create(ctx context.Context, pm *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (
			id, payment_reference, booking_id,
			amount_cents, currency, payment_method, payment_gateway,
			gateway_transaction_id, status, customer_email,
			payment_time, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		pm.ID(), pm.Reference(), pm.BookingID(),
		pm.AmountCents(), pm.Currency(), pm.Method(), pm.Gateway(),
		pm.GatewayTxnID(), pm.Status().String(), pm.CustomerEmail(),
		pm.PaymentTime(), pm.CompletedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
