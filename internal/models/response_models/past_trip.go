package response_models

import "pawcation/internal/models/db_models"

// PastTrip is a finished plan enriched with its memory photos.
type PastTrip struct {
	db_models.Plan
	CoverPhoto    string   `json:"cover_photo,omitempty"`
	PhotoCount    int      `json:"photo_count"`
	VisitedCities []string `json:"visited_cities"`
}
