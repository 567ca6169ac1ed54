package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"giramondo/internal/models/plan_models"
	"giramondo/pkg/utils"
)

// ExportService renders a scheduled trip for sharing: a printable PDF and
// a plain-text summary meant for the clipboard. Both honor the scheduler's
// activity order and skip removed activities.
type ExportServiceInterface interface {
	RenderPDF(trip plan_models.TripItinerary) ([]byte, error)
	BuildSummary(trip plan_models.TripItinerary) string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (s *ExportService) RenderPDF(trip plan_models.TripItinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for _, dest := range trip {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 18)
		pdf.CellFormat(0, 12, fmt.Sprintf("Itinerary for %s", dest.Destination), "", 1, "C", false, 0, "")
		pdf.Ln(2)

		for _, day := range dest.Plan {
			pdf.SetFont("Helvetica", "B", 13)
			pdf.CellFormat(0, 9, fmt.Sprintf("Day %d: %s", day.Day, day.Title), "", 1, "L", false, 0, "")

			if day.WeatherAdvice != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, day.WeatherAdvice, "", "L", false)
			}

			pdf.SetFont("Helvetica", "", 10)
			for _, a := range day.Activities {
				if a.Status != plan_models.StatusActive {
					continue
				}
				pdf.SetFont("Helvetica", "B", 10)
				pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s", timestampLabel(a), a.Name), "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(0, 5, a.Description, "", "L", false)
				if a.Address != "" {
					pdf.SetFont("Helvetica", "I", 9)
					pdf.MultiCell(0, 5, a.Address, "", "L", false)
					pdf.SetFont("Helvetica", "", 10)
				}
				if a.EstimatedCost != "" {
					pdf.CellFormat(0, 5, fmt.Sprintf("Cost: %s", a.EstimatedCost), "", 1, "L", false, 0, "")
				}
				pdf.Ln(1)
			}
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// BuildSummary mirrors the share flow: one block per destination, one
// line per active activity, ordering exactly as scheduled.
func (s *ExportService) BuildSummary(trip plan_models.TripItinerary) string {
	names := make([]string, len(trip))
	for i, dest := range trip {
		names[i] = dest.Destination
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here is my travel itinerary for %s:\n\n", strings.Join(names, ", ")))

	blocks := make([]string, 0, len(trip))
	for _, dest := range trip {
		var block strings.Builder
		block.WriteString(fmt.Sprintf("--- %s ---\n", dest.Destination))

		days := make([]string, 0, len(dest.Plan))
		for _, day := range dest.Plan {
			var lines []string
			for _, a := range day.Activities {
				if a.Status != plan_models.StatusActive {
					continue
				}
				lines = append(lines, fmt.Sprintf("- %s: %s - %s", timestampLabel(a), a.Name, a.Description))
			}
			days = append(days, fmt.Sprintf("Day %d: %s\n%s", day.Day, day.Title, strings.Join(lines, "\n")))
		}
		block.WriteString(strings.Join(days, "\n\n"))
		blocks = append(blocks, block.String())
	}

	b.WriteString(strings.Join(blocks, "\n\n\n"))
	return b.String()
}

// timestampLabel prefers the scheduled clock time; activities inserted by a
// replacement carry none and fall back to their day segment.
func timestampLabel(a plan_models.Activity) string {
	if a.StartTime != "" {
		return a.StartTime
	}
	return string(a.TimeOfDay)
}
