package request_models

// GenerateItineraryRequest is shared by the flight and road-trip generators;
// IsRoundTrip only applies to road trips.
type GenerateItineraryRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PetID       string `json:"pet_id" binding:"required,uuid"`

	NumAdults   int `json:"num_adults"`
	NumChildren int `json:"num_children"`

	Budget      *float64 `json:"budget"`
	IsRoundTrip bool     `json:"is_round_trip"`
}
