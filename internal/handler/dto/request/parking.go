package request

type OccupancyUpdateRequest struct {
	SpaceNumber string   `json:"space_number" binding:"required"`
	IsOccupied  *bool    `json:"is_occupied" binding:"required"`
	VehicleType *string  `json:"vehicle_type,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// GetConfidence defaults detections without a score to full confidence.
func (r OccupancyUpdateRequest) GetConfidence() float64 {
	if r.Confidence == nil {
		return 1.0
	}
	return *r.Confidence
}

type RecentEventsQuery struct {
	Limit int `form:"limit"`
}
