package booking

import (
	"errors"
	"time"
)

var (
	ErrSlotTooShort    = errors.New("booking duration is below the minimum")
	ErrSlotTooLong     = errors.New("booking duration exceeds the maximum")
	ErrSlotTooFarAhead = errors.New("booking start is beyond the advance window")
	ErrSlotInPast      = errors.New("booking start is in the past")
)

// Policy bounds what intervals may be booked and how late a booking may
// be cancelled.
type Policy struct {
	MinDuration      time.Duration
	MaxDuration      time.Duration
	AdvanceWindow    time.Duration
	CancellationLead time.Duration
}

func (p Policy) ValidateSlot(slot TimeSlot, now time.Time) error {
	if slot.Start().Before(now) {
		return ErrSlotInPast
	}
	d := slot.Duration()
	if p.MinDuration > 0 && d < p.MinDuration {
		return ErrSlotTooShort
	}
	if p.MaxDuration > 0 && d > p.MaxDuration {
		return ErrSlotTooLong
	}
	if p.AdvanceWindow > 0 && slot.Start().Sub(now) > p.AdvanceWindow {
		return ErrSlotTooFarAhead
	}
	return nil
}
