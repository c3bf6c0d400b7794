package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"pawcation/internal/models/request_models"
	"pawcation/internal/models/response_models"
	"pawcation/internal/repositories"
	"pawcation/pkg/utils"
)

var (
	analysisConfig = utils.GenerationConfig{
		Temperature:     0.4,
		TopK:            32,
		TopP:            1.0,
		MaxOutputTokens: 1024,
		Timeout:         30 * time.Second,
	}

	flightConfig = utils.GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 4096,
		Timeout:         60 * time.Second,
	}

	// Road trips enumerate every driving segment and rest stop, so the output
	// is roughly double a flight itinerary.
	roadTripConfig = utils.GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
		Timeout:         90 * time.Second,
	}
)

type ItineraryService interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, mode TripMode) (*response_models.Itinerary, error)
	AnalyzePetImage(ctx context.Context, image []byte, mimeType string) (*response_models.PetProfile, error)
}

type itineraryService struct {
	aiClient utils.AIClientInterface
	petRepo  repositories.PetRepository
}

func NewItineraryService(aiClient utils.AIClientInterface, petRepo repositories.PetRepository) ItineraryService {
	return &itineraryService{
		aiClient: aiClient,
		petRepo:  petRepo,
	}
}

// GenerateItinerary runs the full pipeline: load the pet, build the prompt,
// invoke the model once, extract the JSON object, then normalize costs.
func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, mode TripMode) (*response_models.Itinerary, error) {
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		log.Printf("failed to load pet %s: %v", req.PetID, err)
		return nil, utils.ErrDatabaseError
	}
	if pet == nil {
		return nil, utils.ErrPetNotFound
	}

	cfg := flightConfig
	if mode == TripModeRoadTrip {
		cfg = roadTripConfig
	}

	prompt := BuildItineraryPrompt(req, pet, mode)

	raw, err := s.aiClient.GenerateText(ctx, prompt, cfg)
	if err != nil {
		return nil, err
	}

	payload, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(payload, &itinerary); err != nil {
		return nil, &utils.MalformedOutputError{Raw: raw}
	}
	if len(itinerary.Days) == 0 {
		return nil, &utils.MalformedOutputError{Raw: raw}
	}

	NormalizeItinerary(&itinerary, req.Budget)
	return &itinerary, nil
}

// AnalyzePetImage classifies a pet photo into a structured profile. A model
// reply that cannot be parsed degrades to an all-unknown profile rather than
// failing the request; a non-dog rejection still propagates.
func (s *itineraryService) AnalyzePetImage(ctx context.Context, image []byte, mimeType string) (*response_models.PetProfile, error) {
	raw, err := s.aiClient.GenerateVision(ctx, BuildAnalysisPrompt(), image, mimeType, analysisConfig)
	if err != nil {
		return nil, err
	}

	payload, err := utils.ExtractJSONObject(raw)
	if err != nil {
		var malformed *utils.MalformedOutputError
		if errors.As(err, &malformed) {
			log.Printf("pet image analysis returned unparseable output, falling back to unknown profile")
			return response_models.UnknownPetProfile(), nil
		}
		return nil, err
	}

	var profile response_models.PetProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		log.Printf("pet image analysis payload did not match profile schema, falling back to unknown profile")
		return response_models.UnknownPetProfile(), nil
	}
	return &profile, nil
}

// NormalizeItinerary enforces the output invariants in place: sequential item
// IDs where missing, a recomputed total from item costs, and the caller's
// budget echoed back untouched.
func NormalizeItinerary(it *response_models.Itinerary, budget *float64) {
	var total float64
	seq := 0
	for d := range it.Days {
		for i := range it.Days[d].Items {
			seq++
			item := &it.Days[d].Items[i]
			if item.ID == "" {
				item.ID = strconv.Itoa(seq)
			}
			if item.EstimatedCost != nil {
				total += *item.EstimatedCost
			}
		}
	}
	it.TotalEstimatedCost = math.Round(total*100) / 100
	it.Budget = budget
}

func validateDateRange(start, end string) error {
	const layout = "2006-01-02"
	startAt, err := time.Parse(layout, start)
	if err != nil {
		return fmt.Errorf("%w: invalid start_date %q, expected YYYY-MM-DD", utils.ErrInvalidInput, start)
	}
	endAt, err := time.Parse(layout, end)
	if err != nil {
		return fmt.Errorf("%w: invalid end_date %q, expected YYYY-MM-DD", utils.ErrInvalidInput, end)
	}
	if endAt.Before(startAt) {
		return fmt.Errorf("%w: end_date must not be before start_date", utils.ErrInvalidInput)
	}
	return nil
}
