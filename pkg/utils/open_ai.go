package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"giramondo/internal/models/plan_models"
)

// OpenAIPlannerClient implements PlannerClientInterface on the OpenAI API,
// reusing the same prompts as the Gemini client so both providers produce
// interchangeable payloads.
type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) PlannerClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlannerClient) GenerateItinerary(ctx context.Context, destination string, days int, opts PlanOptions) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("destination cannot be empty")
	}
	if days < 1 || days > 30 {
		return "", fmt.Errorf("day count must be between 1 and 30, got %d", days)
	}
	return c.complete(ctx, buildItineraryPrompt(destination, days, opts))
}

func (c *OpenAIPlannerClient) GenerateAlternatives(ctx context.Context, destination string, original plan_models.Activity, opts PlanOptions) (string, error) {
	originalJSON, err := json.Marshal(original)
	if err != nil {
		return "", fmt.Errorf("marshal original activity: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("A traveler in %s wants to swap out this activity:\n%s\n\n", destination, originalJSON))
	prompt.WriteString("Suggest 3 replacement activities in the same part of the day, nearby if possible.\n")
	writePlanBias(&prompt, opts)
	prompt.WriteString("\nReturn a JSON array only matching this activity schema, without id, status or start_time:\n")
	prompt.WriteString(activitySchemaExample)

	return c.complete(ctx, prompt.String())
}

func (c *OpenAIPlannerClient) GenerateLocalExperiences(ctx context.Context, destination string) (string, error) {
	prompt := fmt.Sprintf(`Suggest 5 unique, authentic local experiences for a tourist in %s.
Return a JSON array only, each element: {"category":"food|arts_culture|adventure|shopping|wellness","title":"...","description":"1-2 sentences"}.`, destination)
	return c.complete(ctx, prompt)
}

func (c *OpenAIPlannerClient) GeneratePackingList(ctx context.Context, destinations []string, totalDays int, startDate string) (string, error) {
	prompt := fmt.Sprintf(`Build a packing list for a %d-day trip visiting %s, starting %s.
Return a JSON object only, keyed by category, each value an array of {"item":"...","notes":"optional"}.`, totalDays, strings.Join(destinations, ", "), startDate)
	return c.complete(ctx, prompt)
}

func (c *OpenAIPlannerClient) GenerateDestinationImage(ctx context.Context, destination string) ([]byte, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         fmt.Sprintf("A wide, vivid travel photograph of %s, golden hour, no text overlay.", destination),
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		N:              1,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai image: empty response")
	}
	return base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
}

func (c *OpenAIPlannerClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planning engine. You answer with raw JSON only, never prose or markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai returned invalid JSON")
	}
	return content, nil
}
