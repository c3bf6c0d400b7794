package response_models

// Valid values for ItineraryItem fields. The prompt enumerates these so the
// extractor's schema assumption holds.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"

	TypeTransport     = "transport"
	TypeAccommodation = "accommodation"
	TypeDining        = "dining"
	TypeActivity      = "activity"

	ComplianceApproved    = "approved"
	ComplianceConditional = "conditional"
	ComplianceNotAllowed  = "notAllowed"
)

type ItineraryAlert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ItineraryItem struct {
	ID             string   `json:"id"`
	Time           string   `json:"time"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Compliance     string   `json:"compliance"`
	ComplianceNote string   `json:"complianceNote,omitempty"`
	EstimatedCost  *float64 `json:"estimated_cost,omitempty"`
}

type ItineraryDay struct {
	Date     string           `json:"date"`
	DayLabel string           `json:"dayLabel"`
	Alerts   []ItineraryAlert `json:"alerts,omitempty"`
	// Item order is chronological within the day and preserved as received.
	Items []ItineraryItem `json:"items"`
}

type Itinerary struct {
	Days []ItineraryDay `json:"days"`
	// Recomputed by the normalizer from the items; the model's own arithmetic
	// is never trusted.
	TotalEstimatedCost float64  `json:"total_estimated_cost"`
	Budget             *float64 `json:"budget,omitempty"`
}
