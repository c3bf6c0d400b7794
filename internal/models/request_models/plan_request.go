package request_models

import "encoding/json"

type PlanCreateRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`

	TripType        string `json:"trip_type"`
	IsRoundTrip     bool   `json:"is_round_trip"`
	PlacesPassingBy string `json:"places_passing_by"`

	NumHumans   int `json:"num_humans"`
	NumAdults   int `json:"num_adults"`
	NumChildren int `json:"num_children"`

	Budget *float64 `json:"budget"`
	PetIDs string   `json:"pet_ids"`
}

type PlanUpdateRequest struct {
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`

	TripType        *string `json:"trip_type"`
	IsRoundTrip     *bool   `json:"is_round_trip"`
	PlacesPassingBy *string `json:"places_passing_by"`

	DetailedItinerary json.RawMessage `json:"detailed_itinerary"`

	NumHumans   *int `json:"num_humans"`
	NumAdults   *int `json:"num_adults"`
	NumChildren *int `json:"num_children"`

	Budget *float64 `json:"budget"`
	PetIDs *string  `json:"pet_ids"`
}

// PlanSaveRequest persists a generated itinerary verbatim as a plan row.
type PlanSaveRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`

	TripType    string `json:"trip_type"`
	IsRoundTrip bool   `json:"is_round_trip"`
	PetIDs      string `json:"pet_ids"`

	NumAdults   int `json:"num_adults"`
	NumChildren int `json:"num_children"`

	Budget            *float64        `json:"budget"`
	DetailedItinerary json.RawMessage `json:"detailed_itinerary"`
}
