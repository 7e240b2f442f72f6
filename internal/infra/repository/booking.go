package repository

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, bk *booking.Booking) (uuid.UUID, error) {
	customer := bk.Customer()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (
			id, booking_reference, space_number,
			customer_name, customer_email, customer_phone,
			vehicle_number, vehicle_type,
			start_time, end_time, total_amount_cents,
			status, payment_status, payment_id, note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		bk.ID(), bk.Reference(), bk.SpaceNumber(),
		customer.Name, customer.Email, customer.Phone,
		customer.VehicleNumber, customer.VehicleType,
		bk.Slot().Start(), bk.Slot().End(), bk.Amount().Cents(),
		bk.Status().String(), bk.PaymentStatus().String(), bk.PaymentID(), bk.Note(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, bk *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, payment_status = $3, payment_id = $4, updated_at = $5
		WHERE id = $1`,
		bk.ID(), bk.Status().String(), bk.PaymentStatus().String(), bk.PaymentID(), bk.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByReferenceForUpdate(ctx context.Context, reference string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, booking_reference, space_number,
		       customer_name, customer_email, customer_phone,
		       vehicle_number, vehicle_type,
		       start_time, end_time, total_amount_cents,
		       status, payment_status, payment_id, note,
		       created_at, updated_at
		FROM bookings
		WHERE booking_reference = $1
		FOR UPDATE`,
		reference,
	)

	var (
		id                   uuid.UUID
		ref, spaceNumber     string
		name, email          string
		phone                *string
		vehicleNumber        string
		vehicleType          string
		startTime, endTime   time.Time
		amountCents          int64
		status, payStatus    string
		paymentID, note      *string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &ref, &spaceNumber,
		&name, &email, &phone,
		&vehicleNumber, &vehicleType,
		&startTime, &endTime, &amountCents,
		&status, &payStatus, &paymentID, &note,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}

	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid time slot", err)
	}
	amount, err := booking.NewMoney(amountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid amount", err)
	}

	return booking.ReconstructBooking(
		id, ref, spaceNumber,
		booking.CustomerInfo{
			Name:          name,
			Email:         email,
			Phone:         phone,
			VehicleNumber: vehicleNumber,
			VehicleType:   vehicleType,
		},
		slot, amount,
		booking.Status(status), booking.PaymentStatus(payStatus),
		paymentID, note,
		createdAt, updatedAt,
	), nil
}

// HasOverlap runs the half-open interval test scoped to one space.
// Strict inequalities, so bookings that touch at a boundary do not
// conflict.
func (r *BookingRepository) HasOverlap(ctx context.Context, spaceNumber string, start, end time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE space_number = $1
			  AND status IN ('confirmed', 'active')
			  AND start_time < $3
			  AND end_time > $2
		)`,
		spaceNumber, start, end,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}
