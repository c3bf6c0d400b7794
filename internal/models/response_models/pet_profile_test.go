package response_models

import (
	"encoding/json"
	"testing"
)

func TestStringListArray(t *testing.T) {
	var profile PetProfile
	raw := `{"breed": "beagle", "personality": ["curious", "vocal"]}`
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(profile.Personality) != 2 || profile.Personality[0] != "curious" {
		t.Fatalf("unexpected personality: %v", profile.Personality)
	}
}

func TestStringListScalar(t *testing.T) {
	var profile PetProfile
	raw := `{"breed": "beagle", "personality": "friendly"}`
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(profile.Personality) != 1 || profile.Personality[0] != "friendly" {
		t.Fatalf("expected scalar wrapped into one-element list, got %v", profile.Personality)
	}
}

func TestStringListRejectsNumbers(t *testing.T) {
	var list StringList
	if err := json.Unmarshal([]byte(`42`), &list); err == nil {
		t.Fatal("expected an error for a numeric value")
	}
}

func TestUnknownPetProfile(t *testing.T) {
	profile := UnknownPetProfile()
	if profile.Breed != "unknown" || profile.Age != "unknown" || profile.Size != "unknown" {
		t.Fatalf("unexpected defaults: %+v", profile)
	}
	if profile.Personality == nil {
		t.Fatal("personality should be an empty list, not nil")
	}
}
