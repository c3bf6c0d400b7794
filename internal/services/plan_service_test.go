package services

import (
	"testing"

	"pawcation/internal/models/db_models"
)

func TestVisitedCitiesJSONArray(t *testing.T) {
	plan := db_models.Plan{
		Destination:     "Denver, CO",
		PlacesPassingBy: `["Amarillo, TX", "Colorado Springs, CO"]`,
	}
	cities := visitedCities(plan)
	if len(cities) != 3 {
		t.Fatalf("expected 3 cities, got %v", cities)
	}
	if cities[0] != "Denver, CO" {
		t.Fatalf("destination must come first, got %v", cities)
	}
}

func TestVisitedCitiesCommaSeparated(t *testing.T) {
	plan := db_models.Plan{
		Destination:     "Denver, CO",
		PlacesPassingBy: "Amarillo, Colorado Springs",
	}
	cities := visitedCities(plan)
	if len(cities) != 3 {
		t.Fatalf("expected 3 cities, got %v", cities)
	}
}

func TestVisitedCitiesDeduplicatesDestination(t *testing.T) {
	plan := db_models.Plan{
		Destination:     "Denver, CO",
		PlacesPassingBy: `["Denver, CO", "Boulder, CO"]`,
	}
	cities := visitedCities(plan)
	if len(cities) != 2 {
		t.Fatalf("destination should not repeat, got %v", cities)
	}
}

func TestVisitedCitiesEmpty(t *testing.T) {
	cities := visitedCities(db_models.Plan{})
	if len(cities) != 0 {
		t.Fatalf("expected no cities, got %v", cities)
	}
}
