package db_models

type User struct {
	BaseModel
	Email string `gorm:"unique" json:"email"`
	// Stored as received. Hashing is deliberately out of scope for this service.
	Password  string `json:"-"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`

	Pets  []Pet  `json:"pets,omitempty"`
	Plans []Plan `json:"plans,omitempty"`
}
