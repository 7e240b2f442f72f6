package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrMissingField    = errors.New("missing required customer field")
)

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses strict inequalities, so slots that touch at a boundary
// do not conflict.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Money is an exact integer amount in cents. Quotes and charges never
// touch floating point, so repeated quote/charge cycles cannot drift.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

// QuoteAmount prices a slot at the given hourly rate. Integer
// arithmetic keeps fractional hours exact at second resolution:
// cents = rate * seconds / 3600, not rounded up to whole hours.
func QuoteAmount(slot TimeSlot, hourlyRateCents int64) Money {
	seconds := int64(slot.Duration() / time.Second)
	return Money{cents: hourlyRateCents * seconds / 3600}
}

// CustomerInfo carries the requester's identity fields. They are opaque
// to the engine beyond required/optional presence.
type CustomerInfo struct {
	Name          string
	Email         string
	Phone         *string
	VehicleNumber string
	VehicleType   string
}

const defaultVehicleType = "car"

func NewCustomerInfo(name, email, vehicleNumber string, phone, vehicleType *string) (CustomerInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if name == "" || email == "" || vehicleNumber == "" {
		return CustomerInfo{}, ErrMissingField
	}

	vt := defaultVehicleType
	if vehicleType != nil && strings.TrimSpace(*vehicleType) != "" {
		vt = strings.TrimSpace(*vehicleType)
	}

	return CustomerInfo{
		Name:          name,
		Email:         email,
		Phone:         phone,
		VehicleNumber: vehicleNumber,
		VehicleType:   vt,
	}, nil
}
