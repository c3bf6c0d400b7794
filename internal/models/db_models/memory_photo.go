package db_models

import "github.com/google/uuid"

type MemoryPhoto struct {
	BaseModel
	PlanID  uuid.UUID `gorm:"type:uuid;index" json:"plan_id"`
	UserID  uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	URL     string    `json:"url"`
	Caption string    `json:"caption"`
}
