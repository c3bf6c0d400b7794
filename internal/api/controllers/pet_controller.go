package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pawcation/internal/models/request_models"
	"pawcation/internal/services"
	"pawcation/pkg/utils"
)

// Images larger than this are rejected before touching the AI provider.
const maxImageBytes = 10 << 20

type PetController struct {
	petService       services.PetService
	itineraryService services.ItineraryService
}

func NewPetController(petService services.PetService, itineraryService services.ItineraryService) *PetController {
	return &PetController{
		petService:       petService,
		itineraryService: itineraryService,
	}
}

// CreatePet godoc
// @Summary Register a pet for a user
// @Tags Pets
// @Accept json
// @Produce json
// @Param request body request_models.PetCreateRequest true "Pet payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /pets [post]
func (p *PetController) CreatePet(c *gin.Context) {
	var req request_models.PetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pet, err := p.petService.CreatePet(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, pet, "Pet created successfully")
}

// GetPet godoc
// @Summary Get a pet by ID
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pets/{id} [get]
func (p *PetController) GetPet(c *gin.Context) {
	petID := c.Param("id")
	if petID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Pet ID is required")
		return
	}

	pet, err := p.petService.GetPet(c.Request.Context(), petID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pet, "Pet fetched successfully")
}

// ListPetsByUser godoc
// @Summary List a user's pets
// @Tags Pets
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/pets [get]
func (p *PetController) ListPetsByUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	pets, err := p.petService.ListPetsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pets, "Pets fetched successfully")
}

// UpdatePet godoc
// @Summary Update a pet
// @Tags Pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body request_models.PetUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pets/{id} [put]
func (p *PetController) UpdatePet(c *gin.Context) {
	petID := c.Param("id")
	if petID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Pet ID is required")
		return
	}

	var req request_models.PetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pet, err := p.petService.UpdatePet(c.Request.Context(), petID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pet, "Pet updated successfully")
}

// DeletePet godoc
// @Summary Delete a pet
// @Tags Pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pets/{id} [delete]
func (p *PetController) DeletePet(c *gin.Context) {
	petID := c.Param("id")
	if petID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Pet ID is required")
		return
	}

	if err := p.petService.DeletePet(c.Request.Context(), petID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Pet deleted successfully")
}

// AnalyzeImage godoc
// @Summary Analyze a pet photo into a structured profile
// @Description Classifies breed, age, size, personality, health and appearance from an uploaded dog photo
// @Tags Pets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Pet photo (JPEG or PNG)"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /pets/analyze-image [post]
func (p *PetController) AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required (field 'file')")
		return
	}
	if fileHeader.Size > maxImageBytes {
		utils.RespondError(c, http.StatusBadRequest, "Image exceeds the 10MB limit")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		utils.RespondError(c, http.StatusBadRequest, "Uploaded file must be an image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}

	profile, err := p.itineraryService.AnalyzePetImage(c.Request.Context(), image, mimeType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Pet image analyzed successfully")
}
