package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"giramondo/internal/models/plan_models"
	"giramondo/internal/models/request_models"
	"giramondo/internal/models/response_models"
	"giramondo/internal/scheduling"
	"giramondo/pkg/utils"
)

// DefaultHeaderImage is served when image generation fails; the failure is
// never surfaced to the user.
const DefaultHeaderImage = "/assets/default-destination.jpg"

// Fixed pause between per-destination generation calls, to stay inside the
// AI service's free-tier rate limits. Deliberately a flat delay, not a
// retry/backoff strategy.
const interCallPause = 1200 * time.Millisecond

type ItineraryServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.TripResponse, error)
	GenerateAlternatives(ctx context.Context, req request_models.AlternativesRequest) ([]plan_models.Activity, error)
	RemoveActivity(trip plan_models.TripItinerary, activityID string) (plan_models.TripItinerary, bool)
	ReplaceActivity(trip plan_models.TripItinerary, activityID string, replacement plan_models.Activity) (plan_models.TripItinerary, bool)
}

type ItineraryService struct {
	planner  utils.PlannerClientInterface
	schedCfg scheduling.Config
	pause    time.Duration
}

func NewItineraryService(planner utils.PlannerClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		planner:  planner,
		schedCfg: scheduling.DefaultConfig(),
		pause:    interCallPause,
	}
}

// GenerateTrip runs the whole generation flow: one AI call per destination
// (sequential, with the fixed pause in between), shape validation and
// scheduling of each raw plan, then the enrichment calls for the first
// destination concurrently. Scheduling runs exactly once here; lifecycle
// edits later never re-enter the scheduler.
func (s *ItineraryService) GenerateTrip(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.TripResponse, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	opts := utils.PlanOptions{
		Intensity: req.Intensity,
		Budget:    req.Budget,
		Interests: req.Interests,
	}

	trip := make(plan_models.TripItinerary, 0, len(req.Destinations))
	for i, dest := range req.Destinations {
		startedAt := time.Now()
		rawJSON, err := s.planner.GenerateItinerary(ctx, dest.Name, dest.Days, opts)
		if err != nil {
			return nil, classifyPlannerError(err)
		}
		log.Printf("Generated %d-day plan for %s in %s", dest.Days, dest.Name, time.Since(startedAt))

		plan, err := parseItineraryJSON(rawJSON)
		if err != nil {
			return nil, err
		}

		trip = append(trip, plan_models.DestinationItinerary{
			Destination: dest.Name,
			Plan:        scheduling.ScheduleItinerary(plan, s.schedCfg),
		})

		if i < len(req.Destinations)-1 {
			if err := sleepCtx(ctx, s.pause); err != nil {
				return nil, err
			}
		}
	}

	resp := &response_models.TripResponse{
		Itineraries: trip,
		HeaderImage: DefaultHeaderImage,
	}
	s.enrich(ctx, req, resp)
	return resp, nil
}

// enrich issues the secondary AI calls concurrently. Each failure only
// blanks its own section; the primary itinerary is already in resp.
func (s *ItineraryService) enrich(ctx context.Context, req request_models.CreateItineraryRequest, resp *response_models.TripResponse) {
	first := req.Destinations[0].Name

	destinations := make([]string, len(req.Destinations))
	totalDays := 0
	for i, d := range req.Destinations {
		destinations[i] = d.Name
		totalDays += d.Days
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		raw, err := s.planner.GenerateLocalExperiences(ctx, first)
		if err != nil {
			log.Printf("Local experiences unavailable for %s: %v", first, err)
			return
		}
		var experiences []plan_models.LocalExperience
		if err := json.Unmarshal([]byte(raw), &experiences); err != nil {
			log.Printf("Unusable local experiences payload: %v", err)
			return
		}
		resp.LocalExperiences = experiences
	}()

	go func() {
		defer wg.Done()
		raw, err := s.planner.GeneratePackingList(ctx, destinations, totalDays, req.StartDate)
		if err != nil {
			log.Printf("Packing list unavailable: %v", err)
			return
		}
		var list plan_models.PackingList
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			log.Printf("Unusable packing list payload: %v", err)
			return
		}
		resp.PackingList = list
	}()

	go func() {
		defer wg.Done()
		img, err := s.planner.GenerateDestinationImage(ctx, first)
		if err != nil || len(img) == 0 {
			// Silent fallback to the default header.
			return
		}
		resp.HeaderImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
	}()

	wg.Wait()
}

func (s *ItineraryService) GenerateAlternatives(ctx context.Context, req request_models.AlternativesRequest) ([]plan_models.Activity, error) {
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.Activity.Name) == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.planner.GenerateAlternatives(ctx, req.Destination, req.Activity, utils.PlanOptions{
		Budget:    req.Budget,
		Interests: req.Interests,
	})
	if err != nil {
		return nil, classifyPlannerError(err)
	}

	var candidates []plan_models.Activity
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, fmt.Errorf("%w: alternatives payload: %v", utils.ErrMalformedPlan, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no alternatives returned", utils.ErrMalformedPlan)
	}

	// Candidates never carry identity, status or a clock time; the caller
	// assigns identity when one is accepted via ReplaceActivity.
	for i := range candidates {
		candidates[i].ID = ""
		candidates[i].Status = ""
		candidates[i].StartTime = ""
		candidates[i].TimeOfDay = normalizeTimeOfDay(string(candidates[i].TimeOfDay))
	}
	return candidates, nil
}

func (s *ItineraryService) RemoveActivity(trip plan_models.TripItinerary, activityID string) (plan_models.TripItinerary, bool) {
	out, found := scheduling.RemoveActivity(trip, activityID)
	if !found {
		log.Printf("Remove requested for unknown activity %q, returning trip unchanged", activityID)
	}
	return out, found
}

func (s *ItineraryService) ReplaceActivity(trip plan_models.TripItinerary, activityID string, replacement plan_models.Activity) (plan_models.TripItinerary, bool) {
	out, found := scheduling.ReplaceActivity(trip, activityID, replacement)
	if !found {
		log.Printf("Replace requested for unknown activity %q, returning trip unchanged", activityID)
	}
	return out, found
}

func validateTripRequest(req request_models.CreateItineraryRequest) error {
	if len(req.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination required", utils.ErrInvalidInput)
	}
	for _, d := range req.Destinations {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: destination name required", utils.ErrInvalidInput)
		}
		if d.Days < 1 || d.Days > 14 {
			return fmt.Errorf("%w: days must be between 1 and 14", utils.ErrInvalidInput)
		}
	}
	return nil
}

// parseItineraryJSON validates the raw AI payload's shape before the
// scheduler ever sees it. Structural corruption is fatal to the generation
// attempt; missing optional fields are not.
func parseItineraryJSON(raw string) (plan_models.ItineraryPlan, error) {
	var plan plan_models.ItineraryPlan
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedPlan, err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: empty plan", utils.ErrMalformedPlan)
	}

	for di := range plan {
		if plan[di].Day == 0 {
			plan[di].Day = di + 1
		}
		for ai := range plan[di].Activities {
			a := &plan[di].Activities[ai]
			if strings.TrimSpace(a.Name) == "" {
				return nil, fmt.Errorf("%w: day %d activity %d has no name", utils.ErrMalformedPlan, plan[di].Day, ai+1)
			}
			a.TimeOfDay = normalizeTimeOfDay(string(a.TimeOfDay))
		}
	}
	return plan, nil
}

// normalizeTimeOfDay maps the model's occasionally creative casing and
// language onto the three buckets. Unrecognized values land in the
// afternoon, the widest window.
func normalizeTimeOfDay(raw string) plan_models.TimeOfDay {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "morning", "mattina":
		return plan_models.Morning
	case "evening", "sera", "night":
		return plan_models.Evening
	default:
		return plan_models.Afternoon
	}
}

func classifyPlannerError(err error) error {
	if utils.IsRateLimitSignal(err) {
		return fmt.Errorf("%w: %v", utils.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", utils.ErrAIServiceUnavailable, err)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
