package space

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySpaceNumber = errors.New("space number cannot be empty")
	ErrNegativePosition = errors.New("space position cannot be negative")
	ErrInvalidRate      = errors.New("hourly rate must be positive")
)

// Space is one parking space in the lot catalog. The occupancy flag is
// owned by the external detection feed; the booking engine only reads it.
type Space struct {
	id          uuid.UUID
	number      string
	row         int
	column      int
	rateCents   int64
	occupied    bool
	vehicleType *string
	lastUpdated time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSpace(number string, row, column int, rateCents int64) (*Space, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptySpaceNumber
	}
	if row < 0 || column < 0 {
		return nil, ErrNegativePosition
	}
	if rateCents <= 0 {
		return nil, ErrInvalidRate
	}

	return &Space{
		id:        uuid.New(),
		number:    number,
		row:       row,
		column:    column,
		rateCents: rateCents,
	}, nil
}

func ReconstructSpace(
	id uuid.UUID,
	number string,
	row, column int,
	rateCents int64,
	occupied bool,
	vehicleType *string,
	lastUpdated, createdAt, updatedAt time.Time,
) *Space {
	return &Space{
		id:          id,
		number:      number,
		row:         row,
		column:      column,
		rateCents:   rateCents,
		occupied:    occupied,
		vehicleType: vehicleType,
		lastUpdated: lastUpdated,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// SetOccupancy applies a detection-feed reading. It reports whether the
// flag actually flipped so callers can record an entry/exit event only
// on real transitions.
func (s *Space) SetOccupancy(occupied bool, vehicleType *string, at time.Time) bool {
	changed := s.occupied != occupied
	s.occupied = occupied
	if vehicleType != nil {
		s.vehicleType = vehicleType
	}
	s.lastUpdated = at
	return changed
}

func (s *Space) ID() uuid.UUID         { return s.id }
func (s *Space) Number() string        { return s.number }
func (s *Space) Row() int              { return s.row }
func (s *Space) Column() int           { return s.column }
func (s *Space) RateCents() int64      { return s.rateCents }
func (s *Space) IsOccupied() bool      { return s.occupied }
func (s *Space) VehicleType() *string  { return s.vehicleType }
func (s *Space) LastUpdated() time.Time { return s.lastUpdated }
func (s *Space) CreatedAt() time.Time  { return s.createdAt }
func (s *Space) UpdatedAt() time.Time  { return s.updatedAt }

// NumberFor renders the catalog numbering scheme, P001 onward.
func NumberFor(index int) string {
	return fmt.Sprintf("P%03d", index)
}
