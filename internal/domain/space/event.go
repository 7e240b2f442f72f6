package space

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventEntry EventType = "entry"
	EventExit  EventType = "exit"
)

// Event records a single occupancy transition reported by the
// detection feed.
type Event struct {
	id          uuid.UUID
	spaceNumber string
	eventType   EventType
	vehicleType *string
	confidence  float64
	occurredAt  time.Time
}

func NewEvent(spaceNumber string, occupied bool, vehicleType *string, confidence float64, at time.Time) *Event {
	et := EventExit
	if occupied {
		et = EventEntry
	}
	return &Event{
		id:          uuid.New(),
		spaceNumber: spaceNumber,
		eventType:   et,
		vehicleType: vehicleType,
		confidence:  confidence,
		occurredAt:  at,
	}
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) SpaceNumber() string   { return e.spaceNumber }
func (e *Event) Type() EventType       { return e.eventType }
func (e *Event) VehicleType() *string  { return e.vehicleType }
func (e *Event) Confidence() float64   { return e.confidence }
func (e *Event) OccurredAt() time.Time { return e.occurredAt }
