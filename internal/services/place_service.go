package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pawcation/internal/models/response_models"
)

const placesAutocompleteURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"

// fallbackCities backs autocomplete when no Places API key is configured or
// the upstream call fails. Matching is case-insensitive substring.
var fallbackCities = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Phoenix, AZ",
	"Philadelphia, PA",
	"San Antonio, TX",
	"San Diego, CA",
	"Dallas, TX",
	"San Jose, CA",
	"Austin, TX",
	"Jacksonville, FL",
	"San Francisco, CA",
	"Seattle, WA",
	"Denver, CO",
	"Boston, MA",
	"Nashville, TN",
	"Portland, OR",
	"Las Vegas, NV",
	"Miami, FL",
}

type PlaceService interface {
	Autocomplete(ctx context.Context, input string) ([]response_models.PlacePrediction, error)
}

type placeService struct {
	apiKey     string
	httpClient *http.Client
}

func NewPlaceService(apiKey string) PlaceService {
	return &placeService{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Autocomplete proxies the query to the Places API when a key is configured.
// Inputs shorter than two characters return an empty list without any call.
func (s *placeService) Autocomplete(ctx context.Context, input string) ([]response_models.PlacePrediction, error) {
	input = strings.TrimSpace(input)
	if len(input) < 2 {
		return []response_models.PlacePrediction{}, nil
	}

	if s.apiKey == "" {
		return fallbackPredictions(input), nil
	}

	predictions, err := s.queryPlacesAPI(ctx, input)
	if err != nil {
		log.Printf("places autocomplete upstream failed, using fallback: %v", err)
		return fallbackPredictions(input), nil
	}
	return predictions, nil
}

func (s *placeService) queryPlacesAPI(ctx context.Context, input string) ([]response_models.PlacePrediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "(cities)")
	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, placesAutocompleteURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Status      string `json:"status"`
		Predictions []struct {
			PlaceID              string `json:"place_id"`
			Description          string `json:"description"`
			StructuredFormatting struct {
				MainText string `json:"main_text"`
			} `json:"structured_formatting"`
		} `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	predictions := make([]response_models.PlacePrediction, 0, len(body.Predictions))
	for _, p := range body.Predictions {
		description := p.StructuredFormatting.MainText
		if description == "" {
			description = p.Description
		}
		predictions = append(predictions, response_models.PlacePrediction{
			PlaceID:     p.PlaceID,
			Description: description,
			FullAddress: p.Description,
		})
	}
	return predictions, nil
}

func fallbackPredictions(input string) []response_models.PlacePrediction {
	needle := strings.ToLower(input)
	predictions := []response_models.PlacePrediction{}
	for _, city := range fallbackCities {
		if strings.Contains(strings.ToLower(city), needle) {
			predictions = append(predictions, response_models.PlacePrediction{
				PlaceID:     "fallback-" + strings.ToLower(strings.ReplaceAll(city, " ", "-")),
				Description: city,
				FullAddress: city + ", USA",
			})
		}
	}
	return predictions
}
