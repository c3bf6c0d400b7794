package plans_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pawcation/internal/api/controllers"
	"pawcation/internal/repositories"
	"pawcation/internal/services"
)

var Module = fx.Provide(providePlanRepo, providePlanService, providePlanController)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	planRepo repositories.PlanRepository,
	memoryRepo repositories.MemoryPhotoRepository,
	userRepo repositories.UserRepository,
) services.PlanService {
	return services.NewPlanService(planRepo, memoryRepo, userRepo)
}

func providePlanController(planService services.PlanService, itineraryService services.ItineraryService) *controllers.PlanController {
	return controllers.NewPlanController(planService, itineraryService)
}
