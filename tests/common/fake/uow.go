//go:build unit

// Package fake provides an in-memory UnitOfWork for command tests.
// Within runs fn against a cloned copy of the store and applies the
// copy only when fn succeeds, so a failed transaction leaves the
// committed state untouched. A constraint violation aborts the
// transaction and every later statement on it fails, matching how the
// store behaves after a failed statement.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/rico33631/smart-park/internal/domain/booking"
	"github.com/rico33631/smart-park/internal/domain/payment"
	"github.com/rico33631/smart-park/internal/domain/space"
	"github.com/rico33631/smart-park/internal/infra"
	"github.com/rico33631/smart-park/internal/infra/db"
	"github.com/rico33631/smart-park/internal/pkg/errs"
	"github.com/rico33631/smart-park/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitOfWork struct {
	mu sync.Mutex

	Spaces   map[string]*space.Space
	Bookings map[string]*booking.Booking
	Payments map[string]*payment.Payment
	Events   []*space.Event

	// ForcedDuplicates makes the next n booking or payment inserts
	// fail with a duplicate key error to simulate reference
	// collisions.
	ForcedDuplicates int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Spaces:   make(map[string]*space.Space),
		Bookings: make(map[string]*booking.Booking),
		Payments: make(map[string]*payment.Payment),
	}
}

func (u *UnitOfWork) AddSpace(sp *space.Space) {
	u.Spaces[sp.Number()] = sp
}

func (u *UnitOfWork) AddBooking(bk *booking.Booking) {
	u.Bookings[bk.Reference()] = bk
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	t := &tx{
		u:        u,
		spaces:   cloneSpaces(u.Spaces),
		bookings: cloneBookings(u.Bookings),
		payments: clonePayments(u.Payments),
	}
	if err := fn(ctx, t); err != nil {
		return err
	}
	u.Spaces = t.spaces
	u.Bookings = t.bookings
	u.Payments = t.payments
	u.Events = append(u.Events, t.events...)
	return nil
}

func (u *UnitOfWork) WithinReadOnly(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	return errs.New("read-only transactions are not supported by the fake")
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &reads{u: u}
}

// Entities are cloned at transaction start so in-place mutations on a
// fetched entity never reach the committed maps before commit.

func cloneSpaces(src map[string]*space.Space) map[string]*space.Space {
	dst := make(map[string]*space.Space, len(src))
	for k, sp := range src {
		dst[k] = space.ReconstructSpace(
			sp.ID(), sp.Number(), sp.Row(), sp.Column(), sp.RateCents(),
			sp.IsOccupied(), sp.VehicleType(), sp.LastUpdated(), sp.CreatedAt(), sp.UpdatedAt(),
		)
	}
	return dst
}

func cloneBookings(src map[string]*booking.Booking) map[string]*booking.Booking {
	dst := make(map[string]*booking.Booking, len(src))
	for k, bk := range src {
		dst[k] = booking.ReconstructBooking(
			bk.ID(), bk.Reference(), bk.SpaceNumber(), bk.Customer(), bk.Slot(), bk.Amount(),
			bk.Status(), bk.PaymentStatus(), bk.PaymentID(), bk.Note(), bk.CreatedAt(), bk.UpdatedAt(),
		)
	}
	return dst
}

// Payments are never fetched for update, so sharing pointers is safe.
func clonePayments(src map[string]*payment.Payment) map[string]*payment.Payment {
	dst := make(map[string]*payment.Payment, len(src))
	for k, pm := range src {
		dst[k] = pm
	}
	return dst
}

type tx struct {
	u        *UnitOfWork
	spaces   map[string]*space.Space
	bookings map[string]*booking.Booking
	payments map[string]*payment.Payment
	events   []*space.Event
	aborted  bool
}

func (t *tx) Spaces() shared.SpaceRepository     { return &spaceRepo{t: t} }
func (t *tx) Bookings() shared.BookingRepository { return &bookingRepo{t: t} }
func (t *tx) Payments() shared.PaymentRepository { return &paymentRepo{t: t} }
func (t *tx) Events() shared.EventRepository     { return &eventRepo{t: t} }
func (t *tx) Reads() shared.CommandReads         { return &reads{t: t} }

// fail aborts the transaction: every statement after a constraint
// violation is rejected, the way the store rejects statements issued
// on an aborted transaction.
func (t *tx) fail(err error) error {
	t.aborted = true
	return err
}

func (t *tx) guard() error {
	if t.aborted {
		return infra.WrapRepoErr("transaction is aborted", nil, infra.KindDBFailure)
	}
	return nil
}

// reads serves validation reads either inside a transaction (staged
// state) or outside one (committed state).
type reads struct {
	t *tx
	u *UnitOfWork
}

func (r *reads) spaces() map[string]*space.Space {
	if r.t != nil {
		return r.t.spaces
	}
	return r.u.Spaces
}

func (r *reads) bookings() map[string]*booking.Booking {
	if r.t != nil {
		return r.t.bookings
	}
	return r.u.Bookings
}

func (r *reads) SpaceByNumber(_ context.Context, number string) (*shared.SpaceSnapshot, error) {
	if r.t != nil {
		if err := r.t.guard(); err != nil {
			return nil, err
		}
	}
	sp, ok := r.spaces()[number]
	if !ok {
		return nil, infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return &shared.SpaceSnapshot{
		ID:         sp.ID(),
		Number:     sp.Number(),
		RateCents:  sp.RateCents(),
		IsOccupied: sp.IsOccupied(),
	}, nil
}

func (r *reads) HasOverlap(_ context.Context, spaceNumber string, start, end time.Time) (bool, error) {
	if r.t != nil {
		if err := r.t.guard(); err != nil {
			return false, err
		}
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return false, err
	}
	for _, bk := range r.bookings() {
		if bk.SpaceNumber() != spaceNumber || !bk.Status().BlocksSpace() {
			continue
		}
		if bk.Slot().Overlaps(slot) {
			return true, nil
		}
	}
	return false, nil
}

type spaceRepo struct {
	t *tx
}

func (r *spaceRepo) Create(_ context.Context, sp *space.Space) (uuid.UUID, error) {
	if err := r.t.guard(); err != nil {
		return uuid.Nil, err
	}
	if _, exists := r.t.spaces[sp.Number()]; exists {
		return uuid.Nil, r.t.fail(infra.WrapRepoErr("duplicate space number", nil, infra.KindDuplicateKey))
	}
	r.t.spaces[sp.Number()] = sp
	return sp.ID(), nil
}

func (r *spaceRepo) Update(_ context.Context, sp *space.Space) error {
	if err := r.t.guard(); err != nil {
		return err
	}
	if _, exists := r.t.spaces[sp.Number()]; !exists {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	r.t.spaces[sp.Number()] = sp
	return nil
}

func (r *spaceRepo) FindByNumberForUpdate(_ context.Context, number string) (*space.Space, error) {
	if err := r.t.guard(); err != nil {
		return nil, err
	}
	sp, ok := r.t.spaces[number]
	if !ok {
		return nil, infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return sp, nil
}

func (r *spaceRepo) DeleteAll(_ context.Context) (int64, error) {
	if err := r.t.guard(); err != nil {
		return 0, err
	}
	n := int64(len(r.t.spaces))
	r.t.spaces = make(map[string]*space.Space)
	return n, nil
}

type bookingRepo struct {
	t *tx
}

func (r *bookingRepo) Create(_ context.Context, bk *booking.Booking) (uuid.UUID, error) {
	if err := r.t.guard(); err != nil {
		return uuid.Nil, err
	}
	if r.t.u.ForcedDuplicates > 0 {
		r.t.u.ForcedDuplicates--
		return uuid.Nil, r.t.fail(infra.WrapRepoErr("duplicate booking reference", nil, infra.KindDuplicateKey))
	}
	if _, exists := r.t.bookings[bk.Reference()]; exists {
		return uuid.Nil, r.t.fail(infra.WrapRepoErr("duplicate booking reference", nil, infra.KindDuplicateKey))
	}
	if err := r.checkExclusion(bk); err != nil {
		return uuid.Nil, r.t.fail(err)
	}
	r.t.bookings[bk.Reference()] = bk
	return bk.ID(), nil
}

func (r *bookingRepo) Update(_ context.Context, bk *booking.Booking) error {
	if err := r.t.guard(); err != nil {
		return err
	}
	if _, exists := r.t.bookings[bk.Reference()]; !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if err := r.checkExclusion(bk); err != nil {
		return r.t.fail(err)
	}
	r.t.bookings[bk.Reference()] = bk
	return nil
}

// checkExclusion mirrors the store's exclusion constraint: no two
// blocking bookings on the same space with overlapping slots.
func (r *bookingRepo) checkExclusion(bk *booking.Booking) error {
	if !bk.Status().BlocksSpace() {
		return nil
	}
	for _, other := range r.t.bookings {
		if other.ID() == bk.ID() || other.SpaceNumber() != bk.SpaceNumber() || !other.Status().BlocksSpace() {
			continue
		}
		if other.Slot().Overlaps(bk.Slot()) {
			return infra.WrapRepoErr("overlapping blocking booking", nil, infra.KindConflict)
		}
	}
	return nil
}

func (r *bookingRepo) FindByReferenceForUpdate(_ context.Context, reference string) (*booking.Booking, error) {
	if err := r.t.guard(); err != nil {
		return nil, err
	}
	bk, ok := r.t.bookings[reference]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return bk, nil
}

type paymentRepo struct {
	t *tx
}

func (r *paymentRepo) Create(_ context.Context, pm *payment.Payment) (uuid.UUID, error) {
	if err := r.t.guard(); err != nil {
		return uuid.Nil, err
	}
	if r.t.u.ForcedDuplicates > 0 {
		r.t.u.ForcedDuplicates--
		return uuid.Nil, r.t.fail(infra.WrapRepoErr("duplicate payment reference", nil, infra.KindDuplicateKey))
	}
	if _, exists := r.t.payments[pm.Reference()]; exists {
		return uuid.Nil, r.t.fail(infra.WrapRepoErr("duplicate payment reference", nil, infra.KindDuplicateKey))
	}
	r.t.payments[pm.Reference()] = pm
	return pm.ID(), nil
}

type eventRepo struct {
	t *tx
}

func (r *eventRepo) Create(_ context.Context, ev *space.Event) error {
	if err := r.t.guard(); err != nil {
		return err
	}
	r.t.events = append(r.t.events, ev)
	return nil
}
