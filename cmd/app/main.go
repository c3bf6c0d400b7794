package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"pawcation/cmd/fx/ai_fx"
	"pawcation/cmd/fx/db_fx"
	"pawcation/cmd/fx/memories_fx"
	"pawcation/cmd/fx/pets_fx"
	"pawcation/cmd/fx/places_fx"
	"pawcation/cmd/fx/plans_fx"
	"pawcation/cmd/fx/users_fx"
	"pawcation/internal/api/controllers"
	"pawcation/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		users_fx.Module,
		pets_fx.Module,
		plans_fx.Module,
		memories_fx.Module,
		places_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	petController *controllers.PetController,
	planController *controllers.PlanController,
	memoryController *controllers.MemoryController,
	placeController *controllers.PlaceController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, userController, petController, planController, memoryController, placeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	petController *controllers.PetController,
	planController *controllers.PlanController,
	memoryController *controllers.MemoryController,
	placeController *controllers.PlaceController,
) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	usersGroup := api.Group("/users")
	usersGroup.POST("", userController.SignUp)
	usersGroup.POST("/login", userController.Login)
	usersGroup.GET("", userController.ListUsers)
	usersGroup.GET("/:id", userController.GetUser)
	usersGroup.PUT("/:id", userController.UpdateUser)
	usersGroup.DELETE("/:id", userController.DeleteUser)
	usersGroup.GET("/:id/pets", petController.ListPetsByUser)
	usersGroup.GET("/:id/plans", planController.ListPlansByUser)
	usersGroup.GET("/:id/past-trips", planController.ListPastTrips)

	petsGroup := api.Group("/pets")
	petsGroup.POST("", petController.CreatePet)
	petsGroup.POST("/analyze-image", petController.AnalyzeImage)
	petsGroup.GET("/:id", petController.GetPet)
	petsGroup.PUT("/:id", petController.UpdatePet)
	petsGroup.DELETE("/:id", petController.DeletePet)

	plansGroup := api.Group("/plans")
	plansGroup.POST("", planController.CreatePlan)
	plansGroup.POST("/save", planController.SavePlan)
	plansGroup.POST("/generate-itinerary", planController.GenerateItinerary)
	plansGroup.POST("/generate-road-trip-itinerary", planController.GenerateRoadTripItinerary)
	plansGroup.GET("/:id", planController.GetPlan)
	plansGroup.GET("/:id/memories", memoryController.ListMemoriesByPlan)
	plansGroup.PUT("/:id", planController.UpdatePlan)
	plansGroup.DELETE("/:id", planController.DeletePlan)

	memoriesGroup := api.Group("/memories")
	memoriesGroup.POST("", memoryController.CreateMemory)
	memoriesGroup.DELETE("/:id", memoryController.DeleteMemory)

	placesGroup := api.Group("/places")
	placesGroup.GET("/autocomplete", placeController.Autocomplete)
}
