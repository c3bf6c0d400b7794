package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	EndDate     string `gorm:"size:10" json:"end_date"`

	TripType        string `json:"trip_type"` // "Direct Trip" | "Road Trip"
	IsRoundTrip     bool   `json:"is_round_trip"`
	PlacesPassingBy string `json:"places_passing_by"` // JSON array or comma-separated

	// Generated itinerary persisted verbatim; the core never mutates it.
	DetailedItinerary datatypes.JSON `gorm:"type:jsonb" json:"detailed_itinerary,omitempty"`

	NumHumans   int `gorm:"default:1" json:"num_humans"`
	NumAdults   int `gorm:"default:1" json:"num_adults"`
	NumChildren int `gorm:"default:0" json:"num_children"`

	Budget *float64 `json:"budget,omitempty"`
	PetIDs string   `json:"pet_ids"` // comma-separated pet IDs
}
