package places_fx

import (
	"os"

	"go.uber.org/fx"

	"pawcation/internal/api/controllers"
	"pawcation/internal/services"
)

var Module = fx.Provide(providePlaceService, providePlaceController)

func providePlaceService() services.PlaceService {
	return services.NewPlaceService(os.Getenv("PLACES_API_KEY"))
}

func providePlaceController(placeService services.PlaceService) *controllers.PlaceController {
	return controllers.NewPlaceController(placeService)
}
