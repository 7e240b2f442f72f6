package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotProcessing  = errors.New("payment is not processing")
	ErrNotCompleted   = errors.New("payment is not completed")
	ErrEmptyReference = errors.New("payment reference cannot be empty")
)

// Payment is one settlement attempt against a booking's charge. It is
// created in processing and must reach a terminal state; an in-flight
// attempt cannot be cancelled.
type Payment struct {
	id            uuid.UUID
	reference     string
	bookingID     *uuid.UUID
	amountCents   int64
	currency      string
	method        string
	gateway       string
	gatewayTxnID  *string
	status        Status
	customerEmail string
	paymentTime   time.Time
	completedAt   *time.Time
}

func NewPayment(
	reference string,
	bookingID uuid.UUID,
	amountCents int64,
	currency, method, gateway, customerEmail string,
	now time.Time,
) (*Payment, error) {
	if reference == "" {
		return nil, ErrEmptyReference
	}

	id := bookingID
	return &Payment{
		id:            uuid.New(),
		reference:     reference,
		bookingID:     &id,
		amountCents:   amountCents,
		currency:      currency,
		method:        method,
		gateway:       gateway,
		status:        StatusProcessing,
		customerEmail: customerEmail,
		paymentTime:   now,
	}, nil
}

// Complete resolves the attempt successfully with the gateway's
// transaction id.
func (p *Payment) Complete(gatewayTxnID string, now time.Time) error {
	if p.status != StatusProcessing {
		return ErrNotProcessing
	}
	p.status = StatusCompleted
	p.gatewayTxnID = &gatewayTxnID
	p.completedAt = &now
	return nil
}

func (p *Payment) Fail() error {
	if p.status != StatusProcessing {
		return ErrNotProcessing
	}
	p.status = StatusFailed
	return nil
}

func (p *Payment) Refund() error {
	if p.status != StatusCompleted {
		return ErrNotCompleted
	}
	p.status = StatusRefunded
	return nil
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) Reference() string      { return p.reference }
func (p *Payment) BookingID() *uuid.UUID  { return p.bookingID }
func (p *Payment) AmountCents() int64     { return p.amountCents }
func (p *Payment) Currency() string       { return p.currency }
func (p *Payment) Method() string         { return p.method }
func (p *Payment) Gateway() string        { return p.gateway }
func (p *Payment) GatewayTxnID() *string  { return p.gatewayTxnID }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) CustomerEmail() string  { return p.customerEmail }
func (p *Payment) PaymentTime() time.Time { return p.paymentTime }
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }
