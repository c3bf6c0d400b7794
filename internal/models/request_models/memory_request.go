package request_models

type MemoryCreateRequest struct {
	PlanID  string `json:"plan_id" binding:"required,uuid"`
	UserID  string `json:"user_id" binding:"required,uuid"`
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}
