package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Pet struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Name        string         `json:"name"`
	Breed       string         `json:"breed"` // "Mixed" or a specific breed
	Age         string         `json:"age"`   // free text: "2 years", "puppy", "senior"
	Size        string         `json:"size"`
	Personality pq.StringArray `gorm:"type:text[]" json:"personality"`
	Health      string         `json:"health"`
	Appearance  string         `json:"appearance"`

	RabiesExpiration string `json:"rabies_expiration"`
	MicrochipID      string `json:"microchip_id"`

	ImageURL  string `json:"image_url"`  // full image used for AI analysis
	AvatarURL string `json:"avatar_url"` // cropped circular avatar
}
