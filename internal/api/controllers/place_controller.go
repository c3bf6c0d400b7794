package controllers

import (
	"github.com/gin-gonic/gin"

	"pawcation/internal/services"
	"pawcation/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceService
}

func NewPlaceController(placeService services.PlaceService) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// Autocomplete godoc
// @Summary Autocomplete city names
// @Description Proxies the Places API; falls back to a built-in US city list when no key is configured
// @Tags Places
// @Produce json
// @Param input query string true "Partial city name"
// @Success 200 {object} utils.APIResponse
// @Router /places/autocomplete [get]
func (p *PlaceController) Autocomplete(c *gin.Context) {
	predictions, err := p.placeService.Autocomplete(c.Request.Context(), c.Query("input"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, predictions, "Predictions fetched successfully")
}
