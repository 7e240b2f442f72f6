package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending       = errors.New("booking is not pending")
	ErrNotCancellable   = errors.New("booking is already in a terminal state")
	ErrCancelTooLate    = errors.New("cancellation lead time requirement not met")
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrEmptyReference   = errors.New("booking reference cannot be empty")
	ErrEmptySpaceNumber = errors.New("space number cannot be empty")
)

// Booking reserves one space for a half-open time interval. The stored
// status only ever moves pending → confirmed → cancelled; the
// confirmed → active → completed progression is derived at read time
// from the clock (EffectiveStatus), never persisted.
type Booking struct {
	id            uuid.UUID
	reference     string
	spaceNumber   string
	customer      CustomerInfo
	slot          TimeSlot
	amount        Money
	status        Status
	paymentStatus PaymentStatus
	paymentID     *string
	note          *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	reference string,
	spaceNumber string,
	customer CustomerInfo,
	slot TimeSlot,
	amount Money,
	note *string,
) (*Booking, error) {
	if reference == "" {
		return nil, ErrEmptyReference
	}
	if spaceNumber == "" {
		return nil, ErrEmptySpaceNumber
	}

	return &Booking{
		id:            uuid.New(),
		reference:     reference,
		spaceNumber:   spaceNumber,
		customer:      customer,
		slot:          slot,
		amount:        amount,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		note:          note,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference, spaceNumber string,
	customer CustomerInfo,
	slot TimeSlot,
	amount Money,
	status Status,
	paymentStatus PaymentStatus,
	paymentID *string,
	note *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		spaceNumber:   spaceNumber,
		customer:      customer,
		slot:          slot,
		amount:        amount,
		status:        status,
		paymentStatus: paymentStatus,
		paymentID:     paymentID,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Confirm is driven only by a completed payment. It is rejected outside
// the pending state, which also makes a second completed payment unable
// to re-confirm.
func (b *Booking) Confirm(paymentReference string, now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	b.paymentID = &paymentReference
	b.updatedAt = now
	return nil
}

// Cancel applies the cancellation policy: the booking must not be
// terminal and at least leadTime must remain before the slot starts.
// Cancellation exactly at the boundary is accepted.
func (b *Booking) Cancel(now time.Time, leadTime time.Duration) error {
	if b.status.IsTerminal() {
		return ErrNotCancellable
	}
	if b.slot.Start().Sub(now) < leadTime {
		return ErrCancelTooLate
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// EffectiveStatus projects the time-driven confirmed → active →
// completed transitions without mutating stored state.
func (b *Booking) EffectiveStatus(now time.Time) Status {
	return ProjectStatus(b.status, b.slot.Start(), b.slot.End(), now)
}

// ProjectStatus derives the read-time phase of a stored status. Only
// confirmed projects; active and completed are never stored, so every
// read path runs the same derivation.
func ProjectStatus(status Status, start, end, now time.Time) Status {
	if status != StatusConfirmed {
		return status
	}
	switch {
	case !now.Before(end):
		return StatusCompleted
	case !now.Before(start):
		return StatusActive
	default:
		return StatusConfirmed
	}
}

func (b *Booking) IsPaid() bool {
	return b.paymentStatus == PaymentPaid
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Reference() string            { return b.reference }
func (b *Booking) SpaceNumber() string          { return b.spaceNumber }
func (b *Booking) Customer() CustomerInfo       { return b.customer }
func (b *Booking) Slot() TimeSlot               { return b.slot }
func (b *Booking) Amount() Money                { return b.amount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentID() *string           { return b.paymentID }
func (b *Booking) Note() *string                { return b.note }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
