package response_models

type PlacePrediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
	FullAddress string `json:"full_address"`
}
