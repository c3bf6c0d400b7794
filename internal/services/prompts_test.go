package services

import (
	"strings"
	"testing"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
)

func promptRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Origin:      "San Francisco, CA",
		Destination: "Portland, OR",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-14",
		PetID:       "b7c8d1f2-0000-0000-0000-000000000001",
		NumAdults:   2,
		NumChildren: 1,
	}
}

func promptPet() *db_models.Pet {
	return &db_models.Pet{
		Name:        "Biscuit",
		Breed:       "Corgi",
		Age:         "3 years",
		Size:        "small",
		Personality: []string{"playful", "social"},
		Health:      "mild hip sensitivity",
	}
}

func TestFlightPromptEmbedsTripAndPet(t *testing.T) {
	prompt := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeFlight)

	for _, want := range []string{
		"San Francisco, CA", "Portland, OR", "2026-09-10", "2026-09-14",
		"Biscuit", "Corgi", "playful, social", "mild hip sensitivity",
		"2 adult(s)", "1 child(ren)",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestFlightPromptForbidsFlightNumbers(t *testing.T) {
	prompt := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeFlight)
	if !strings.Contains(prompt, "DO NOT provide specific flight numbers") {
		t.Fatal("flight prompt must forbid fabricated flight numbers")
	}
}

func TestPromptEnumeratesValidValues(t *testing.T) {
	prompt := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeFlight)
	for _, want := range []string{
		`"morning", "afternoon", "evening"`,
		`"transport", "accommodation", "dining", "activity"`,
		`"approved", "conditional", "notAllowed"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing enum line %q", want)
		}
	}
}

func TestPromptBudgetInstruction(t *testing.T) {
	req := promptRequest()
	budget := 1500.0
	req.Budget = &budget

	prompt := BuildItineraryPrompt(req, promptPet(), TripModeFlight)
	if !strings.Contains(prompt, "$1500.00") {
		t.Fatal("budget ceiling not embedded")
	}
	if !strings.Contains(prompt, "BUDGET CONSTRAINT") {
		t.Fatal("budget section missing")
	}

	withoutBudget := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeFlight)
	if strings.Contains(withoutBudget, "BUDGET CONSTRAINT") {
		t.Fatal("budget section must be omitted when no budget is given")
	}
}

func TestRoadTripPromptRestStopsAndRoutes(t *testing.T) {
	prompt := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeRoadTrip)
	if !strings.Contains(prompt, "Every 2-3 hours") {
		t.Fatal("road trip prompt must request rest stops every 2-3 hours")
	}
	if !strings.Contains(prompt, "mileage and estimated driving time") {
		t.Fatal("road trip prompt must request mileage and driving time")
	}
}

func TestRoadTripPromptRoundTrip(t *testing.T) {
	req := promptRequest()
	req.IsRoundTrip = true

	prompt := BuildItineraryPrompt(req, promptPet(), TripModeRoadTrip)
	if !strings.Contains(prompt, "round trip") {
		t.Fatal("round trip not named")
	}
	if !strings.Contains(prompt, "DIFFERENT scenic route") {
		t.Fatal("round trip must demand a distinct return route")
	}

	oneWay := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeRoadTrip)
	if strings.Contains(oneWay, "DIFFERENT scenic route") {
		t.Fatal("one-way trip must not carry return-route instructions")
	}
}

func TestPromptDefaultsForSparsePet(t *testing.T) {
	prompt := BuildItineraryPrompt(promptRequest(), &db_models.Pet{}, TripModeFlight)
	for _, want := range []string{"unknown breed", "medium", "unknown age", "friendly"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing default %q for sparse pet", want)
		}
	}
}

func TestPromptDeterministic(t *testing.T) {
	a := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeRoadTrip)
	b := BuildItineraryPrompt(promptRequest(), promptPet(), TripModeRoadTrip)
	if a != b {
		t.Fatal("same inputs must yield the same prompt")
	}
}

func TestAnalysisPromptContract(t *testing.T) {
	prompt := BuildAnalysisPrompt()
	for _, want := range []string{"breed", "personality", `{"error":`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("analysis prompt missing %q", want)
		}
	}
}
