package readstore

import (
	"context"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (r *PaymentReadStore) FindByReference(ctx context.Context, reference string) (*queries.PaymentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT p.payment_reference, b.booking_reference,
		       p.amount_cents, p.currency, p.payment_method, p.payment_gateway,
		       p.gateway_transaction_id, p.status,
		       p.payment_time, p.completed_at
		FROM payments p
		LEFT JOIN bookings b ON b.id = p.booking_id
		WHERE p.payment_reference = $1`,
		reference,
	)

	var v queries.PaymentView
	err := row.Scan(
		&v.Reference, &v.BookingReference,
		&v.AmountCents, &v.Currency, &v.Method, &v.Gateway,
		&v.GatewayTxnID, &v.Status,
		&v.PaymentTime, &v.CompletedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment by reference", err)
	}
	return &v, nil
}
