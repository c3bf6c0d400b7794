package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
	"pawcation/internal/models/response_models"
	"pawcation/pkg/utils"
)

type fakeAIClient struct {
	textReply   string
	textErr     error
	visionReply string
	visionErr   error
	calls       int
	lastPrompt  string
	lastCfg     utils.GenerationConfig
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string, cfg utils.GenerationConfig) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastCfg = cfg
	return f.textReply, f.textErr
}

func (f *fakeAIClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string, cfg utils.GenerationConfig) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastCfg = cfg
	return f.visionReply, f.visionErr
}

type fakePetRepo struct {
	pet *db_models.Pet
	err error
}

func (f *fakePetRepo) Create(ctx context.Context, pet *db_models.Pet) error { return f.err }
func (f *fakePetRepo) GetByID(ctx context.Context, petID string) (*db_models.Pet, error) {
	return f.pet, f.err
}
func (f *fakePetRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Pet, error) {
	return nil, f.err
}
func (f *fakePetRepo) Update(ctx context.Context, pet *db_models.Pet) error { return f.err }
func (f *fakePetRepo) Delete(ctx context.Context, petID string) error       { return f.err }

func generateRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Origin:      "Austin, TX",
		Destination: "Denver, CO",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-05",
		PetID:       uuid.NewString(),
		NumAdults:   1,
	}
}

func testPet() *db_models.Pet {
	return &db_models.Pet{Name: "Mochi", Breed: "Shiba Inu", Size: "small"}
}

const itineraryReply = `Here you go:
{
  "days": [
    {
      "date": "Thu, Oct 1",
      "dayLabel": "Travel Day",
      "items": [
        {"id": "1", "time": "morning", "type": "transport", "title": "Airline options", "compliance": "approved", "estimated_cost": 300.555},
        {"time": "evening", "type": "accommodation", "title": "Pet-friendly hotel", "compliance": "conditional", "estimated_cost": 120}
      ]
    }
  ],
  "total_estimated_cost": 9999.99
}`

func TestGenerateItineraryRecomputesTotal(t *testing.T) {
	client := &fakeAIClient{textReply: itineraryReply}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	itinerary, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(itinerary.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(itinerary.Days))
	}
	// Model claimed 9999.99; the normalizer trusts only the item costs.
	if itinerary.TotalEstimatedCost != 420.56 {
		t.Fatalf("expected recomputed total 420.56, got %v", itinerary.TotalEstimatedCost)
	}
}

func TestGenerateItineraryEchoesBudget(t *testing.T) {
	client := &fakeAIClient{textReply: itineraryReply}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	req := generateRequest()
	budget := 800.0
	req.Budget = &budget

	itinerary, err := svc.GenerateItinerary(context.Background(), req, TripModeFlight)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if itinerary.Budget == nil || *itinerary.Budget != 800.0 {
		t.Fatalf("budget not echoed: %v", itinerary.Budget)
	}
	// The total may exceed the budget; it is advisory only.
	if itinerary.TotalEstimatedCost == 0 {
		t.Fatal("total should still be computed alongside the budget")
	}
}

func TestGenerateItineraryModeSelectsConfig(t *testing.T) {
	client := &fakeAIClient{textReply: itineraryReply}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	if _, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight); err != nil {
		t.Fatalf("flight generation failed: %v", err)
	}
	if client.lastCfg.MaxOutputTokens != 4096 {
		t.Fatalf("flight config not applied: %+v", client.lastCfg)
	}

	if _, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeRoadTrip); err != nil {
		t.Fatalf("road trip generation failed: %v", err)
	}
	if client.lastCfg.MaxOutputTokens != 8192 {
		t.Fatalf("road trip config not applied: %+v", client.lastCfg)
	}
}

func TestGenerateItineraryUnknownPet(t *testing.T) {
	client := &fakeAIClient{textReply: itineraryReply}
	svc := NewItineraryService(client, &fakePetRepo{pet: nil})

	_, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight)
	if !errors.Is(err, utils.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("no model call should happen for an unknown pet")
	}
}

func TestGenerateItineraryInvalidDates(t *testing.T) {
	client := &fakeAIClient{textReply: itineraryReply}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	req := generateRequest()
	req.EndDate = "2026-09-30"
	if _, err := svc.GenerateItinerary(context.Background(), req, TripModeFlight); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for end before start, got %v", err)
	}

	req = generateRequest()
	req.StartDate = "10/01/2026"
	if _, err := svc.GenerateItinerary(context.Background(), req, TripModeFlight); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date format, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("validation failures must not reach the model")
	}
}

func TestGenerateItineraryMalformedOutput(t *testing.T) {
	client := &fakeAIClient{textReply: "sorry, I cannot produce that"}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	_, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight)
	var malformed *utils.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
	if malformed.Raw == "" {
		t.Fatal("raw model text must be preserved for diagnosis")
	}
}

func TestGenerateItineraryEmptyDays(t *testing.T) {
	client := &fakeAIClient{textReply: `{"days": []}`}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	_, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight)
	var malformed *utils.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError for zero days, got %v", err)
	}
}

func TestGenerateItineraryPropagatesTimeout(t *testing.T) {
	client := &fakeAIClient{textErr: utils.ErrAIServiceTimeout}
	svc := NewItineraryService(client, &fakePetRepo{pet: testPet()})

	_, err := svc.GenerateItinerary(context.Background(), generateRequest(), TripModeFlight)
	if !errors.Is(err, utils.ErrAIServiceTimeout) {
		t.Fatalf("expected timeout to propagate, got %v", err)
	}
}

func TestAnalyzePetImageSuccess(t *testing.T) {
	client := &fakeAIClient{visionReply: `{"breed": "Corgi", "age": "2 years", "size": "small", "personality": ["playful"], "health": "healthy", "appearance": "tan and white"}`}
	svc := NewItineraryService(client, &fakePetRepo{})

	profile, err := svc.AnalyzePetImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if profile.Breed != "Corgi" || len(profile.Personality) != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAnalyzePetImageScalarPersonality(t *testing.T) {
	client := &fakeAIClient{visionReply: `{"breed": "Corgi", "personality": "playful"}`}
	svc := NewItineraryService(client, &fakePetRepo{})

	profile, err := svc.AnalyzePetImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(profile.Personality) != 1 || profile.Personality[0] != "playful" {
		t.Fatalf("scalar personality not normalized: %v", profile.Personality)
	}
}

func TestAnalyzePetImageRecoversFromGarbage(t *testing.T) {
	client := &fakeAIClient{visionReply: "the image shows a lovely dog but no JSON here"}
	svc := NewItineraryService(client, &fakePetRepo{})

	profile, err := svc.AnalyzePetImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("analysis should recover, got %v", err)
	}
	if profile.Breed != "unknown" {
		t.Fatalf("expected unknown-profile fallback, got %+v", profile)
	}
}

func TestAnalyzePetImageNotADog(t *testing.T) {
	client := &fakeAIClient{visionReply: `{"error": "This doesn't appear to be a dog photo. Please upload an image of your dog."}`}
	svc := NewItineraryService(client, &fakePetRepo{})

	_, err := svc.AnalyzePetImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	var notApplicable *utils.NotApplicableError
	if !errors.As(err, &notApplicable) {
		t.Fatalf("expected NotApplicableError, got %v", err)
	}
}

func TestNormalizeItineraryIdempotent(t *testing.T) {
	cost := 100.0
	it := &response_models.Itinerary{
		Days: []response_models.ItineraryDay{
			{Items: []response_models.ItineraryItem{
				{Time: "morning", Type: "activity", Title: "Dog park", EstimatedCost: &cost},
				{Time: "evening", Type: "dining", Title: "Patio dinner"},
			}},
		},
	}

	NormalizeItinerary(it, nil)
	first := it.TotalEstimatedCost
	NormalizeItinerary(it, nil)
	if it.TotalEstimatedCost != first {
		t.Fatalf("normalization not idempotent: %v vs %v", first, it.TotalEstimatedCost)
	}
	// Missing cost counts as zero.
	if first != 100.0 {
		t.Fatalf("expected 100.0, got %v", first)
	}
	if it.Days[0].Items[1].ID == "" {
		t.Fatal("missing item IDs should be filled in")
	}
}

func TestNewAIClientMissingKey(t *testing.T) {
	_, err := utils.NewAIClient("gemini", "", "")
	if !errors.Is(err, utils.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	_, err = utils.NewAIClient("openai", "", "")
	if !errors.Is(err, utils.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
