package ai_fx

import (
	"os"

	"go.uber.org/fx"

	"pawcation/internal/repositories"
	"pawcation/internal/services"
	"pawcation/pkg/utils"
)

var Module = fx.Provide(provideAIClient, provideItineraryService)

// provideAIClient reads provider selection from the environment. A missing
// key fails app startup instead of surfacing on the first request.
func provideAIClient() (utils.AIClientInterface, error) {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return utils.NewAIClient(provider, apiKey, os.Getenv("AI_MODEL"))
}

func provideItineraryService(aiClient utils.AIClientInterface, petRepo repositories.PetRepository) services.ItineraryService {
	return services.NewItineraryService(aiClient, petRepo)
}
