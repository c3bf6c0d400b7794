package services

import (
	"context"
	"testing"
)

func TestAutocompleteShortInput(t *testing.T) {
	svc := NewPlaceService("")
	predictions, err := svc.Autocomplete(context.Background(), "a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(predictions) != 0 {
		t.Fatalf("expected empty result for a one-character input, got %d", len(predictions))
	}
}

func TestAutocompleteFallbackFiltering(t *testing.T) {
	svc := NewPlaceService("")
	predictions, err := svc.Autocomplete(context.Background(), "san")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(predictions) == 0 {
		t.Fatal("expected fallback matches for 'san'")
	}
	for _, p := range predictions {
		if p.PlaceID == "" || p.Description == "" {
			t.Fatalf("incomplete prediction: %+v", p)
		}
	}
}

func TestAutocompleteFallbackCaseInsensitive(t *testing.T) {
	svc := NewPlaceService("")
	lower, _ := svc.Autocomplete(context.Background(), "seattle")
	upper, _ := svc.Autocomplete(context.Background(), "SEATTLE")
	if len(lower) != len(upper) || len(lower) == 0 {
		t.Fatalf("case sensitivity mismatch: %d vs %d", len(lower), len(upper))
	}
}

func TestAutocompleteFallbackNoMatch(t *testing.T) {
	svc := NewPlaceService("")
	predictions, err := svc.Autocomplete(context.Background(), "zzqx")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(predictions) != 0 {
		t.Fatalf("expected no matches, got %d", len(predictions))
	}
}
