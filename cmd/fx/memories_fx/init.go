package memories_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pawcation/internal/api/controllers"
	"pawcation/internal/repositories"
	"pawcation/internal/services"
)

var Module = fx.Provide(provideMemoryRepo, provideMemoryService, provideMemoryController)

func provideMemoryRepo(db *gorm.DB) repositories.MemoryPhotoRepository {
	return repositories.NewMemoryPhotoRepository(db)
}

func provideMemoryService(memoryRepo repositories.MemoryPhotoRepository, planRepo repositories.PlanRepository) services.MemoryService {
	return services.NewMemoryService(memoryRepo, planRepo)
}

func provideMemoryController(memoryService services.MemoryService) *controllers.MemoryController {
	return controllers.NewMemoryController(memoryService)
}
