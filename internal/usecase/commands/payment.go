package commands

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/domain/payment"
	reqdto "github.com/rico33631/smart-park/internal/handler/dto/request"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/config"
	"github.com/rico33631/smart-park/internal/pkg/errs"
	"github.com/rico33631/smart-park/internal/pkg/refgen"
	"github.com/rico33631/smart-park/internal/usecase/queries"
	"github.com/rico33631/smart-park/internal/usecase/shared"
)

var ErrAlreadyPaid = errs.New("booking already paid")

type PaymentCommands interface {
	ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest) (*queries.PaymentView, error)
}

type paymentUseCaseImpl struct {
	uow            shared.UnitOfWork
	paymentQueries queries.PaymentQueries
	refs           *refgen.Generator
	clock          clock.Clock
	cfg            config.PaymentConfig
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	paymentQueries queries.PaymentQueries,
	refs *refgen.Generator,
	clk clock.Clock,
	cfg config.PaymentConfig,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:            uow,
		paymentQueries: paymentQueries,
		refs:           refs,
		clock:          clk,
		cfg:            cfg,
	}
}

// ProcessPayment settles the charge for a pending booking. The booking
// row is locked for the whole transaction, so two concurrent attempts
// against the same booking serialize and the loser sees already-paid.
func (u *paymentUseCaseImpl) ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest) (*queries.PaymentView, error) {
	method := u.cfg.DefaultMethod
	if m := req.GetPaymentMethod(); m != nil {
		method = *m
	}

	var reference string
	var txErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference = u.refs.Generate(refgen.PaymentPrefix)
		txErr = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			bk, err := tx.Bookings().FindByReferenceForUpdate(ctx, req.BookingReference)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrBookingNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			if bk.IsPaid() {
				return ErrAlreadyPaid
			}

			now := u.clock.Now()
			pm, err := payment.NewPayment(
				reference, bk.ID(), bk.Amount().Cents(),
				u.cfg.Currency, method, u.cfg.Gateway,
				bk.Customer().Email, now,
			)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if u.cfg.DemoMode {
				if err := pm.Complete(demoTransactionID(), now); err != nil {
					return errs.Mark(err, ErrDomainValidation)
				}
			}

			if _, err := tx.Payments().Create(ctx, pm); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errDuplicateReference
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			// Real gateways leave the payment in processing and the booking
			// pending; demo settles synchronously and confirms the booking.
			if u.cfg.DemoMode {
				if err := bk.Confirm(pm.Reference(), now); err != nil {
					if errors.Is(err, booking.ErrNotPending) {
						return ErrInvalidBookingState
					}
					return errs.Mark(err, ErrDomainValidation)
				}
				// The store's exclusion constraint rejects confirming a
				// booking whose slot was taken by a competing confirmation.
				if err := tx.Bookings().Update(ctx, bk); err != nil {
					if infra.IsKind(err, infra.KindConflict) {
						return ErrSpaceUnavailable
					}
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
		return nil, errs.Mark(errs.New("could not allocate a unique payment reference"), ErrDatabaseOperationFailed)
	}
	if txErr != nil {
		return nil, txErr
	}

	view, err := u.paymentQueries.GetByReference(ctx, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func demoTransactionID() string {
	var buf [8]byte
	n := uint64(0)
	if _, err := rand.Read(buf[:]); err == nil {
		n = binary.BigEndian.Uint64(buf[:])
	}
	return fmt.Sprintf("demo_txn_%06d", n%900000+100000)
}
