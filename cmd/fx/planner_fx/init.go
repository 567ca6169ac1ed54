package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"giramondo/pkg/memcache"
	"giramondo/pkg/utils"
)

var Module = fx.Provide(
	ProvideResponseCache,
	ProvidePlannerClient,
)

// PlannerConfig holds the provider selection read from the environment.
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func ProvideResponseCache() mem.ResponseCache {
	return mem.NewResponseStore()
}

// ProvidePlannerClient builds the AI client for the configured provider.
// Gemini is the default; OpenAI is selected with PLANNER_PROVIDER=openai.
func ProvidePlannerClient(cache mem.ResponseCache) (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIPlannerClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiPlannerClient(config.APIKey, config.Model, cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("PLANNER_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
