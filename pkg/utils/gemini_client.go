package utils

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"giramondo/internal/models/plan_models"
	mem "giramondo/pkg/memcache"
)

// GeminiPlannerClient implements PlannerClientInterface on Google's Gemini
// models. All generation runs in JSON mode so the responses need no
// brace-matching archaeology, only fence stripping.
type GeminiPlannerClient struct {
	client     *genai.Client
	model      string
	imageModel string
	cache      mem.ResponseCache
}

const geminiCallTimeout = 30 * time.Second

// NewGeminiPlannerClient creates a Gemini-backed planner. The cache is
// injected rather than package-global so tests can run without one.
func NewGeminiPlannerClient(apiKey, model string, cache mem.ResponseCache) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client:     client,
		model:      model,
		imageModel: "gemini-2.0-flash-preview-image-generation",
		cache:      cache,
	}, nil
}

func (c *GeminiPlannerClient) jsonModel(maxTokens int32) *genai.GenerativeModel {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(maxTokens)
	return m
}

func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, destination string, days int, opts PlanOptions) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("destination cannot be empty")
	}
	if days < 1 || days > 30 {
		return "", fmt.Errorf("day count must be between 1 and 30, got %d", days)
	}

	key := cacheKey("itinerary", destination, fmt.Sprintf("%d", days), opts.Intensity, opts.Budget, strings.Join(opts.Interests, ","))
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			log.Printf("Cache hit for %d-day itinerary: %s", days, destination)
			return cached, nil
		}
	}

	prompt := buildItineraryPrompt(destination, days, opts)

	content, err := c.generateJSON(ctx, prompt, 8000)
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		c.cache.Set(key, content, time.Hour)
	}
	return content, nil
}

func (c *GeminiPlannerClient) GenerateAlternatives(ctx context.Context, destination string, original plan_models.Activity, opts PlanOptions) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", fmt.Errorf("destination cannot be empty")
	}

	originalJSON, err := json.Marshal(original)
	if err != nil {
		return "", fmt.Errorf("marshal original activity: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("A traveler in %s wants to swap out this activity:\n%s\n\n", destination, originalJSON))
	prompt.WriteString("Suggest 3 replacement activities in the same part of the day, nearby if possible.\n")
	writePlanBias(&prompt, opts)
	prompt.WriteString("\nReturn a JSON array only. Each element has the exact keys of the activity schema:\n")
	prompt.WriteString(activitySchemaExample)
	prompt.WriteString("\nDo not include id, status or start_time. JSON only, no markdown.")

	return c.generateJSON(ctx, prompt.String(), 3000)
}

func (c *GeminiPlannerClient) GenerateLocalExperiences(ctx context.Context, destination string) (string, error) {
	prompt := fmt.Sprintf(`Suggest 5 unique, authentic local experiences for a tourist in %s.
Skip the obvious landmarks; focus on food tours, craft workshops, cultural shows, hidden markets or nature outings nearby.
Return a JSON array only, each element: {"category":"food|arts_culture|adventure|shopping|wellness","title":"...","description":"1-2 sentences"}.
No introductory text, no markdown.`, destination)

	return c.generateJSON(ctx, prompt, 2000)
}

func (c *GeminiPlannerClient) GeneratePackingList(ctx context.Context, destinations []string, totalDays int, startDate string) (string, error) {
	prompt := fmt.Sprintf(`Build a packing list for a %d-day trip visiting %s, starting %s.
Account for the season implied by the start date and the mix of city walking, museums and evenings out.
Return a JSON object only, keyed by category ("documents","clothing","electronics",...), each value an array of {"item":"...","notes":"optional short note"}.
No markdown.`, totalDays, strings.Join(destinations, ", "), startDate)

	return c.generateJSON(ctx, prompt, 2000)
}

// GenerateDestinationImage asks an image-capable model for a header shot.
// Any failure is returned to the caller, which falls back to a default
// image without surfacing an error to the user.
func (c *GeminiPlannerClient) GenerateDestinationImage(ctx context.Context, destination string) ([]byte, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	m := c.client.GenerativeModel(c.imageModel)
	prompt := fmt.Sprintf("A wide, vivid travel photograph of %s, golden hour, no text overlay.", destination)

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				return blob.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("gemini image: no image data in response")
}

// generateJSON runs one JSON-mode generation with the shared model tuning
// and validates that the response is syntactically parseable JSON.
func (c *GeminiPlannerClient) generateJSON(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	m := c.jsonModel(maxTokens)
	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)

	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}

const activitySchemaExample = `{
  "time_of_day": "morning|afternoon|evening",
  "name": "string",
  "description": "1-2 sentences",
  "address": "full street address",
  "category": "historic_site|museum|park|restaurant|shopping|scenic_viewpoint|other",
  "estimated_visit_duration": "e.g. '1 hour', '90 minutes', '2.5 hours'",
  "estimated_cost": "e.g. '18 EUR' or 'Free'",
  "ticket_link": "only for paid activities",
  "latitude": 41.89,
  "longitude": 12.49,
  "travel_to_next": {"distance": "1.2 km", "duration": "15 min"}
}`

func buildItineraryPrompt(destination string, days int, opts PlanOptions) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed, optimized %d-day travel itinerary for %s.\n\n", days, destination))
	writePlanBias(&prompt, opts)

	prompt.WriteString(`
Pacing by intensity:
- 'relaxed': 1 morning, 1 afternoon, 1 evening activity per day.
- 'balanced': 2 morning, 1 afternoon, 1 evening.
- 'intense': 2 morning, 2 afternoon, 1 evening.

Day structure rules, follow strictly:
- The first afternoon activity should be a 'restaurant' for a roughly one hour lunch.
- Evening activities usually include dinner.
- Give every activity a realistic estimated_visit_duration.
- Include latitude/longitude whenever you know them.
- ticket_link rule: if estimated_cost is not free, set ticket_link to
  'https://www.getyourguide.com/s/?q=<ACTIVITY NAME>, <DESTINATION>&partner_id=VHSL1EX&cmp=share_to_earn'
  with proper URL escaping; if the activity is free, omit ticket_link entirely.

`)

	prompt.WriteString("Return a JSON array only, one element per day:\n")
	prompt.WriteString(fmt.Sprintf(`[
  {
    "day": 1,
    "title": "A catchy title for the day",
    "weather_advice": "optional short advisory",
    "activities": [%s]
  }
]`, activitySchemaExample))
	prompt.WriteString(fmt.Sprintf("\n\nHard constraints:\n- Exactly %d elements in the array, day numbered 1..%d with no gaps.\n- Every activity tagged with time_of_day.\n- JSON only, no introductory text, no markdown fences.\n", days, days))

	return prompt.String()
}

func writePlanBias(prompt *strings.Builder, opts PlanOptions) {
	if opts.Intensity != "" {
		prompt.WriteString(fmt.Sprintf("Tour intensity: %s.\n", opts.Intensity))
	}
	if opts.Budget != "" {
		prompt.WriteString(fmt.Sprintf("Budget level: %s.\n", opts.Budget))
	}
	if len(opts.Interests) > 0 {
		prompt.WriteString(fmt.Sprintf("Traveler interests: %s.\n", strings.Join(opts.Interests, ", ")))
	}
}

// CleanJSONResponse strips markdown fences and whitespace that models
// occasionally wrap around JSON-mode output.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func cacheKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
