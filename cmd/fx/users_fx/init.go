package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pawcation/internal/api/controllers"
	"pawcation/internal/repositories"
	"pawcation/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideUserService, provideUserController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserService {
	return services.NewUserService(userRepo)
}

func provideUserController(userService services.UserService) *controllers.UserController {
	return controllers.NewUserController(userService)
}
