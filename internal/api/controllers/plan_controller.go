package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawcation/internal/models/request_models"
	"pawcation/internal/services"
	"pawcation/pkg/utils"
)

type PlanController struct {
	planService      services.PlanService
	itineraryService services.ItineraryService
}

func NewPlanController(planService services.PlanService, itineraryService services.ItineraryService) *PlanController {
	return &PlanController{
		planService:      planService,
		itineraryService: itineraryService,
	}
}

// CreatePlan godoc
// @Summary Create a travel plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanCreateRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.PlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// SavePlan godoc
// @Summary Persist a generated itinerary as a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanSaveRequest true "Plan with itinerary"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/save [post]
func (p *PlanController) SavePlan(c *gin.Context) {
	var req request_models.PlanSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := p.planService.SavePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan saved successfully")
}

// GetPlan godoc
// @Summary Get a plan by ID
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// ListPlansByUser godoc
// @Summary List a user's plans
// @Tags Plans
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/plans [get]
func (p *PlanController) ListPlansByUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	plans, err := p.planService.ListPlansByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// ListPastTrips godoc
// @Summary List a user's finished trips with their memory photos
// @Tags Plans
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/past-trips [get]
func (p *PlanController) ListPastTrips(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	trips, err := p.planService.ListPastTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Past trips fetched successfully")
}

// UpdatePlan godoc
// @Summary Update a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body request_models.PlanUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [put]
func (p *PlanController) UpdatePlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.PlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := p.planService.UpdatePlan(c.Request.Context(), planID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := p.planService.DeletePlan(c.Request.Context(), planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}

// GenerateItinerary godoc
// @Summary Generate a flight-based pet-friendly itinerary
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 504 {object} utils.APIResponse
// @Router /plans/generate-itinerary [post]
func (p *PlanController) GenerateItinerary(c *gin.Context) {
	p.generate(c, services.TripModeFlight)
}

// GenerateRoadTripItinerary godoc
// @Summary Generate a road-trip itinerary with driving segments and rest stops
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 504 {object} utils.APIResponse
// @Router /plans/generate-road-trip-itinerary [post]
func (p *PlanController) GenerateRoadTripItinerary(c *gin.Context) {
	p.generate(c, services.TripModeRoadTrip)
}

func (p *PlanController) generate(c *gin.Context, mode services.TripMode) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	itinerary, err := p.itineraryService.GenerateItinerary(c.Request.Context(), req, mode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
