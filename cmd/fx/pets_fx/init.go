package pets_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pawcation/internal/api/controllers"
	"pawcation/internal/repositories"
	"pawcation/internal/services"
)

var Module = fx.Provide(providePetRepo, providePetService, providePetController)

func providePetRepo(db *gorm.DB) repositories.PetRepository {
	return repositories.NewPetRepository(db)
}

func providePetService(petRepo repositories.PetRepository, userRepo repositories.UserRepository) services.PetService {
	return services.NewPetService(petRepo, userRepo)
}

func providePetController(petService services.PetService, itineraryService services.ItineraryService) *controllers.PetController {
	return controllers.NewPetController(petService, itineraryService)
}
