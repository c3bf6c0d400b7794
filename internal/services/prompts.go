package services

import (
	"fmt"
	"strings"

	"pawcation/internal/models/db_models"
	"pawcation/internal/models/request_models"
)

type TripMode string

const (
	TripModeFlight   TripMode = "flight"
	TripModeRoadTrip TripMode = "road_trip"
)

// BuildAnalysisPrompt returns the fixed instruction for pet photo analysis.
// The {"error": ...} payload is part of the contract: the extractor turns it
// into a caller-facing rejection.
func BuildAnalysisPrompt() string {
	return `You are an expert pet travel assistant analyzing a pet photo.
Analyze the pet in the image and return ONLY a JSON object with these exact fields:
breed, age, size, personality (array of short tags), health, appearance.
Use English for all values. Be concise but honest about uncertainty; use "unknown" where you cannot tell.
If this is NOT a photo of a dog, return: {"error": "This doesn't appear to be a dog photo. Please upload an image of your dog."}
Return ONLY valid JSON, no markdown or extra text.`
}

// BuildItineraryPrompt deterministically embeds every trip and pet field into
// the generation instruction. Flight and road-trip modes share the output
// schema but differ in journey emphasis.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest, pet *db_models.Pet, mode TripMode) string {
	if mode == TripModeRoadTrip {
		return buildRoadTripPrompt(req, pet)
	}
	return buildFlightPrompt(req, pet)
}

func petDescription(pet *db_models.Pet) (name, breed, size, age, personality, health string) {
	name = pet.Name
	if name == "" {
		name = "your pet"
	}
	breed = pet.Breed
	if breed == "" {
		breed = "unknown breed"
	}
	size = pet.Size
	if size == "" {
		size = "medium"
	}
	age = pet.Age
	if age == "" {
		age = "unknown age"
	}
	personality = strings.Join(pet.Personality, ", ")
	if personality == "" {
		personality = "friendly"
	}
	health = pet.Health
	return
}

func budgetInstruction(budget *float64, costLine string) string {
	if budget == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nBUDGET CONSTRAINT:\n")
	fmt.Fprintf(&b, "- Total trip budget: $%.2f\n", *budget)
	b.WriteString("- You MUST keep the total estimated cost within this budget\n")
	fmt.Fprintf(&b, "- %s\n", costLine)
	b.WriteString("- Each item should have an \"estimated_cost\" field with a reasonable dollar amount\n")
	fmt.Fprintf(&b, "- The sum of all estimated costs should NOT exceed $%.2f\n", *budget)
	return b.String()
}

func writePartySection(b *strings.Builder, req request_models.GenerateItineraryRequest, pet *db_models.Pet) {
	name, breed, size, age, personality, health := petDescription(pet)

	b.WriteString("TRAVELING PARTY:\n")
	fmt.Fprintf(b, "- %d adult(s)\n", req.NumAdults)
	fmt.Fprintf(b, "- %d child(ren)\n", req.NumChildren)
	fmt.Fprintf(b, "- Pet: %s, a %s %s (%s size, %s)\n", name, age, breed, size, personality)
	if health != "" {
		fmt.Fprintf(b, "- Health considerations: %s\n", health)
	}
}

func writeSchemaSection(b *strings.Builder, example string) {
	b.WriteString("\nReturn a JSON object with this EXACT structure:\n")
	b.WriteString(example)
	b.WriteString(`

Valid values for fields:
- time: "morning", "afternoon", "evening"
- type: "transport", "accommodation", "dining", "activity"
- compliance: "approved", "conditional", "notAllowed"
`)
}

func buildFlightPrompt(req request_models.GenerateItineraryRequest, pet *db_models.Pet) string {
	name, breed, _, _, _, _ := petDescription(pet)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a pet-first travel planning expert. Generate a detailed travel itinerary for a trip from %s to %s, from %s to %s.\n\n",
		req.Origin, req.Destination, req.StartDate, req.EndDate)

	writePartySection(&b, req, pet)

	b.WriteString(`
CRITICAL INSTRUCTIONS:
1. **DO NOT provide specific flight numbers, departure times, or airline booking details.** Instead, suggest which airlines generally allow pets in-cabin or cargo for this route, and what time windows (morning/afternoon/evening) are typically available.
2. Pet considerations are TOP PRIORITY. Every activity, accommodation, and transportation option MUST be pet-friendly.
3. Consider the pet's size, age, personality, and health when making recommendations.
4. For small pets (<20 lbs), prioritize in-cabin airline travel. For larger pets, mention cargo requirements and alternatives.
5. Include specific pet amenities (water bowls, pet beds, outdoor spaces, etc.)
6. Suggest pet-friendly activities appropriate for the pet's energy level and size.
7. Include alerts for weather conditions that might affect the pet.
`)
	b.WriteString(budgetInstruction(req.Budget, "Include realistic cost estimates for each item (flights, hotels, meals, activities)"))
	b.WriteString("8. **IMPORTANT: Include realistic estimated costs for each item.** Add an \"estimated_cost\" field to every item with a dollar amount.\n")

	writeSchemaSection(&b, fmt.Sprintf(`{
  "days": [
    {
      "date": "Sat, Feb 15",
      "dayLabel": "Travel Day",
      "alerts": [
        {"type": "weather", "message": "High of 85F - Pack extra water for %s!"}
      ],
      "items": [
        {
          "id": "1",
          "time": "morning",
          "type": "transport",
          "title": "Airline Recommendation",
          "subtitle": "Airlines like United, Delta allow in-cabin pets (<20 lbs)",
          "compliance": "approved",
          "complianceNote": "In-cabin travel available for small pets",
          "estimated_cost": 350.00
        }
      ]
    }
  ]
}`, name))

	fmt.Fprintf(&b, "\nMake sure all recommendations are realistic for %s and appropriate for a %s. Return ONLY valid JSON.", req.Destination, breed)
	return b.String()
}

func buildRoadTripPrompt(req request_models.GenerateItineraryRequest, pet *db_models.Pet) string {
	name, breed, _, _, _, _ := petDescription(pet)

	tripTypeNote := "one-way"
	if req.IsRoundTrip {
		tripTypeNote = "round trip"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a pet-first road trip planning expert. Generate a detailed %s road trip itinerary from %s to %s, from %s to %s.\n\n",
		tripTypeNote, req.Origin, req.Destination, req.StartDate, req.EndDate)

	writePartySection(&b, req, pet)

	b.WriteString(`
CRITICAL INSTRUCTIONS FOR ROAD TRIPS:
1. **FOCUS ON THE JOURNEY, NOT JUST THE DESTINATION** - Emphasize scenic routes, interesting waypoints, and experiences along the way.
2. **Pet considerations are TOP PRIORITY** - Every stop, accommodation, and activity MUST be pet-friendly.
`)
	fmt.Fprintf(&b, "3. **Include strategic rest stops** - Every 2-3 hours of driving, suggest pet-friendly rest areas, parks, or scenic viewpoints where %s can stretch, play, and relieve themselves.\n", name)
	b.WriteString(`4. **Suggest driving routes** - Recommend specific highways or scenic byways (e.g., "Take Highway 101 along the coast").
5. **Pet-friendly accommodations** - Hotels/motels that welcome pets, with outdoor spaces. Mention pet fees if typical for the area.
6. **Roadside attractions** - Pet-friendly attractions, hiking trails, dog parks, beaches, or outdoor cafes along the route.
7. **Pack list reminders** - Occasionally remind about essentials: water bowls, leash, waste bags, pet first aid kit.
8. **Weather and safety** - Alert about temperature concerns (hot car warnings), road conditions, or elevation changes that might affect pets.
`)
	fmt.Fprintf(&b, "9. **Meal and water breaks** - Regular stops for %s to eat, drink, and rest.\n", name)

	if req.IsRoundTrip {
		b.WriteString(`
IMPORTANT FOR ROUND TRIP:
- On the return journey, take a DIFFERENT scenic route back to avoid repetition
- Suggest different pet-friendly stops, restaurants, and activities on the way back
- The return route should offer new experiences, not duplicate the outbound journey
- Consider alternative highways, different national/state parks, or coastal vs inland routes
`)
	}
	b.WriteString(budgetInstruction(req.Budget, "Include realistic cost estimates for gas, tolls, hotels, meals, and activities"))
	b.WriteString("10. **IMPORTANT: Include realistic estimated costs for each item.** Add an \"estimated_cost\" field to every item (gas, tolls, hotels, meals, activities).\n")

	writeSchemaSection(&b, fmt.Sprintf(`{
  "days": [
    {
      "date": "Sat, Feb 15",
      "dayLabel": "Day 1: %s to City/Waypoint",
      "alerts": [
        {"type": "weather", "message": "High of 85F - Keep %s hydrated! Bring extra water."}
      ],
      "items": [
        {
          "id": "1",
          "time": "morning",
          "type": "transport",
          "title": "Depart %s via Highway 1",
          "subtitle": "Scenic coastal route - 120 miles - ~2.5 hours",
          "compliance": "approved",
          "complianceNote": "Pet-friendly route with rest stops",
          "estimated_cost": 25.00
        },
        {
          "id": "2",
          "time": "evening",
          "type": "accommodation",
          "title": "Pet-Friendly Hotel Name",
          "subtitle": "No pet fee - Dog park on-site",
          "compliance": "approved",
          "complianceNote": "Pets up to 50 lbs welcome",
          "estimated_cost": 150.00
        }
      ]
    }
  ]
}`, req.Origin, name, req.Origin))

	fmt.Fprintf(&b, `
Make sure:
- Each driving segment shows the route (highway numbers or scenic byway names)
- Include mileage and estimated driving time for each segment
- Suggest actual rest stops every 2-3 hours of driving
- All recommendations are realistic for the route from %s to %s
- Activities and stops are appropriate for a %s
`, req.Origin, req.Destination, breed)
	if req.IsRoundTrip {
		b.WriteString("- The return journey uses a different route with different stops\n")
	}
	b.WriteString("\nReturn ONLY valid JSON.")
	return b.String()
}
