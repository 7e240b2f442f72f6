package readstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT booking_reference, space_number,
		       customer_name, customer_email, customer_phone,
		       vehicle_number, vehicle_type,
		       start_time, end_time, total_amount_cents,
		       status, payment_status, payment_id, note,
		       created_at, updated_at
		FROM bookings
		WHERE booking_reference = $1`,
		reference,
	)

	var v queries.BookingView
	err := row.Scan(
		&v.Reference, &v.SpaceNumber,
		&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.VehicleNumber, &v.VehicleType,
		&v.StartTime, &v.EndTime, &v.AmountCents,
		&v.Status, &v.PaymentStatus, &v.PaymentID, &v.Note,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	return &v, nil
}

// List returns bookings most recent first, capped to limit. Filters are
// optional; the status filter matches the stored status.
func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingListItem, error) {
	sql := strings.Builder{}
	sql.WriteString(`
		SELECT booking_reference, space_number,
		       customer_name, customer_email, vehicle_number,
		       start_time, end_time, total_amount_cents,
		       status, payment_status, created_at
		FROM bookings`)

	args := make([]any, 0, 3)
	conds := make([]string, 0, 2)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if len(conds) > 0 {
		sql.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	args = append(args, limit)
	sql.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args)))

	rows, err := r.db.Query(ctx, sql.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.Reference, &item.SpaceNumber,
			&item.CustomerName, &item.CustomerEmail, &item.VehicleNumber,
			&item.StartTime, &item.EndTime, &item.AmountCents,
			&item.Status, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
