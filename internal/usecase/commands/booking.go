package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/pkg/errs"
	"github.com/rico33631/smart-park/internal/pkg/refgen"
	"github.com/rico33631/smart-park/internal/usecase/queries"
	"github.com/rico33631/smart-park/internal/usecase/shared"
)

var (
	ErrSpaceNotFound           = errs.New("parking space not found")
	ErrSpaceUnavailable        = errs.New("space not available for selected time")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrBookingPolicy           = errs.New("booking policy violation")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCancellationTooLate     = errs.New("cancellation deadline has passed")
	ErrInvalidBookingState     = errs.New("booking state does not allow this operation")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Retries on a duplicate booking/payment reference; second-resolution
// timestamps plus a short random suffix collide rarely but not never.
const maxReferenceAttempts = 3

// A unique violation aborts the store transaction, so the collision is
// surfaced out of Within and the whole transaction restarts with a
// fresh reference.
var errDuplicateReference = errs.New("reference already in use")

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, reference string) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	refs           *refgen.Generator
	clock          clock.Clock
	policy         booking.Policy
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	refs *refgen.Generator,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		refs:           refs,
		clock:          clk,
		policy: booking.Policy{
			MinDuration:      time.Duration(cfg.MinHours) * time.Hour,
			MaxDuration:      time.Duration(cfg.MaxHours) * time.Hour,
			AdvanceWindow:    time.Duration(cfg.AdvanceDays) * 24 * time.Hour,
			CancellationLead: time.Duration(cfg.CancellationHours) * time.Hour,
		},
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	customer, err := req.ToCustomer()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	slot, err := req.ToSlot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	if err := u.policy.ValidateSlot(slot, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrBookingPolicy)
	}

	var reference string
	var txErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference = u.refs.Generate(refgen.BookingPrefix)
		txErr = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			snap, err := tx.Reads().SpaceByNumber(ctx, req.SpaceNumber)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrSpaceNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			overlap, err := tx.Reads().HasOverlap(ctx, snap.Number, slot.Start(), slot.End())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if overlap {
				return ErrSpaceUnavailable
			}

			amount := booking.QuoteAmount(slot, snap.RateCents)
			entity, err := booking.NewBooking(reference, snap.Number, customer, slot, amount, req.GetNote())
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}

			if _, err := tx.Bookings().Create(ctx, entity); err != nil {
				switch {
				case infra.IsKind(err, infra.KindDuplicateKey):
					return errDuplicateReference
				case infra.IsKind(err, infra.KindConflict):
					return ErrSpaceUnavailable
				default:
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
			return nil
		})
		if !errors.Is(txErr, errDuplicateReference) {
			break
		}
	}
	if errors.Is(txErr, errDuplicateReference) {
		return nil, errs.Mark(errs.New("could not allocate a unique booking reference"), ErrDatabaseOperationFailed)
	}
	if txErr != nil {
		return nil, txErr
	}

	// Read-after-write through the read store
	view, err := u.bookingQueries.GetByReference(ctx, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, reference string) (*queries.BookingView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := tx.Bookings().FindByReferenceForUpdate(ctx, reference)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := bk.Cancel(u.clock.Now(), u.policy.CancellationLead); err != nil {
			switch {
			case errors.Is(err, booking.ErrCancelTooLate):
				return ErrCancellationTooLate
			default:
				return errs.Mark(err, ErrInvalidBookingState)
			}
		}

		if err := tx.Bookings().Update(ctx, bk); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByReference(ctx, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
