package response

import (
	"time"

	"github.com/rico33631/smart-park/internal/usecase/commands"
	"github.com/rico33631/smart-park/internal/usecase/queries"
)

type LotStatusResponse struct {
	Timestamp     time.Time        `json:"timestamp"`
	Total         int              `json:"total"`
	Occupied      int              `json:"occupied"`
	Available     int              `json:"available"`
	OccupancyRate float64          `json:"occupancy_rate"`
	Spaces        []*SpaceResponse `json:"spaces"`
}

type EventResponse struct {
	SpaceNumber string    `json:"space_number"`
	EventType   string    `json:"event_type"`
	VehicleType *string   `json:"vehicle_type,omitempty"`
	Confidence  float64   `json:"confidence"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type OccupancyResponse struct {
	SpaceNumber string `json:"space_number"`
	Changed     bool   `json:"changed"`
}

type InitializeResponse struct {
	Removed int64 `json:"removed"`
	Created int   `json:"created"`
}

func FromLotStatusView(v *queries.LotStatusView) *LotStatusResponse {
	spaces := make([]*SpaceResponse, len(v.Spaces))
	for i := range v.Spaces {
		spaces[i] = FromSpaceView(&v.Spaces[i])
	}
	return &LotStatusResponse{
		Timestamp:     v.Timestamp,
		Total:         v.Total,
		Occupied:      v.Occupied,
		Available:     v.Available,
		OccupancyRate: v.OccupancyRate,
		Spaces:        spaces,
	}
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		SpaceNumber: v.SpaceNumber,
		EventType:   v.EventType,
		VehicleType: v.VehicleType,
		Confidence:  v.Confidence,
		OccurredAt:  v.OccurredAt,
	}
}

func FromOccupancyResult(r *commands.OccupancyResult) *OccupancyResponse {
	return &OccupancyResponse{
		SpaceNumber: r.SpaceNumber,
		Changed:     r.Changed,
	}
}

func FromInitializeResult(r *commands.InitializeResult) *InitializeResponse {
	return &InitializeResponse{
		Removed: r.Removed,
		Created: r.Created,
	}
}
