package shared

import (
	"context"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/domain/payment"
	"github.com/rico33631/smart-park/internal/domain/space"
	"github.com/rico33631/smart-park/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes every read-then-write flow to a single store
// transaction. Within runs serializable so the overlap check and the
// insert commit as one atomic unit; serialization failures are retried
// a bounded number of times before surfacing as a retryable error.
type UnitOfWork interface {
	// Within: serializable transaction for mutating flows
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside an explicit transaction
	CommandReads() CommandReads
}

type Tx interface {
	Spaces() SpaceRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Events() EventRepository
	Reads() CommandReads
}

type CommandReads interface {
	SpaceByNumber(ctx context.Context, number string) (*SpaceSnapshot, error)
	// HasOverlap runs the strict-inequality interval test against
	// bookings that block the space (confirmed/active).
	HasOverlap(ctx context.Context, spaceNumber string, start, end time.Time) (bool, error)
}

// Minimal snapshot for command-side validation reads
type SpaceSnapshot struct {
	ID         uuid.UUID
	Number     string
	RateCents  int64
	IsOccupied bool
}

type SpaceRepository interface {
	Create(ctx context.Context, sp *space.Space) (uuid.UUID, error)
	Update(ctx context.Context, sp *space.Space) error
	FindByNumberForUpdate(ctx context.Context, number string) (*space.Space, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, bk *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, bk *booking.Booking) error
	// FindByReferenceForUpdate locks the row for the rest of the
	// transaction, serializing concurrent payment/cancel attempts.
	FindByReferenceForUpdate(ctx context.Context, reference string) (*booking.Booking, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, pm *payment.Payment) (uuid.UUID, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *space.Event) error
}
