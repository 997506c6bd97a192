package coach_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient,
	provideCoachService)

// provideAIClient picks the provider from the environment. Gemini is the
// default because its free tier needs no paid key.
func provideAIClient() (utils.AIClientInterface, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}

	log.Printf("Initializing %s AI client with model: %s", provider, model)
	return utils.NewAIClient(provider, apiKey, model)
}

func provideCoachService(journeyRepo repositories.JourneyRepository, ai utils.AIClientInterface) services.CoachServiceInterface {
	return services.NewCoachService(journeyRepo, ai)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
