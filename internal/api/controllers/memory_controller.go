package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawcation/internal/models/request_models"
	"pawcation/internal/services"
	"pawcation/pkg/utils"
)

type MemoryController struct {
	memoryService services.MemoryService
}

func NewMemoryController(memoryService services.MemoryService) *MemoryController {
	return &MemoryController{memoryService: memoryService}
}

// CreateMemory godoc
// @Summary Attach a memory photo to a plan
// @Tags Memories
// @Accept json
// @Produce json
// @Param request body request_models.MemoryCreateRequest true "Memory photo payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /memories [post]
func (m *MemoryController) CreateMemory(c *gin.Context) {
	var req request_models.MemoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	photo, err := m.memoryService.CreateMemory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Memory photo added successfully")
}

// ListMemoriesByPlan godoc
// @Summary List memory photos for a plan
// @Tags Memories
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Router /plans/{id}/memories [get]
func (m *MemoryController) ListMemoriesByPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	photos, err := m.memoryService.ListMemoriesByPlan(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Memory photos fetched successfully")
}

// DeleteMemory godoc
// @Summary Delete a memory photo
// @Tags Memories
// @Produce json
// @Param id path string true "Memory photo ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /memories/{id} [delete]
func (m *MemoryController) DeleteMemory(c *gin.Context) {
	memoryID := c.Param("id")
	if memoryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Memory ID is required")
		return
	}

	if err := m.memoryService.DeleteMemory(c.Request.Context(), memoryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Memory photo deleted successfully")
}
