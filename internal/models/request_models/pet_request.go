package request_models

type PetCreateRequest struct {
	UserID      string   `json:"user_id" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Size        string   `json:"size"`
	Personality []string `json:"personality"`
	Health      string   `json:"health"`
	Appearance  string   `json:"appearance"`

	RabiesExpiration string `json:"rabies_expiration"`
	MicrochipID      string `json:"microchip_id"`
	ImageURL         string `json:"image_url"`
	AvatarURL        string `json:"avatar_url"`
}

type PetUpdateRequest struct {
	Name        *string   `json:"name"`
	Breed       *string   `json:"breed"`
	Age         *string   `json:"age"`
	Size        *string   `json:"size"`
	Personality *[]string `json:"personality"`
	Health      *string   `json:"health"`
	Appearance  *string   `json:"appearance"`

	RabiesExpiration *string `json:"rabies_expiration"`
	MicrochipID      *string `json:"microchip_id"`
	ImageURL         *string `json:"image_url"`
	AvatarURL        *string `json:"avatar_url"`
}
