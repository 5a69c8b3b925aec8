package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"learnpath-backend/internal/models"
)

// CoachService phrases a progress report as a short encouraging paragraph.
// Without an API key it runs in dev mode and produces a plain templated
// sentence instead.
type CoachService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewCoachService(apiKey string) (*CoachService, error) {
	if apiKey == "" {
		log.Println("⚠ Study coach running in DEV MODE (templated summaries)")
		return &CoachService{}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.4)

	return &CoachService{client: client, model: model}, nil
}

func (s *CoachService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// SummarizeProgress returns one short paragraph describing the report. Errors
// fall back to the templated sentence so the digest never blocks on the model.
func (s *CoachService) SummarizeProgress(ctx context.Context, fullName string, report models.ProgressReport) string {
	if s.model == nil {
		return templatedSummary(report)
	}

	prompt := fmt.Sprintf(
		"Write one short, encouraging paragraph (max 50 words) for a learner named %s. "+
			"They completed %d of %d activities and %d of %d goals, for %d%% overall progress. "+
			"%d goals are still pending. Plain text only, no markdown.",
		fullName,
		report.CompletedActivities, report.TotalActivities,
		report.CompletedGoals, report.TotalGoals,
		report.OverallProgress,
		len(report.PendingGoals),
	)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("study coach: generation failed, using template: %v", err)
		return templatedSummary(report)
	}

	text := extractText(resp)
	if text == "" {
		return templatedSummary(report)
	}
	return text
}

func templatedSummary(report models.ProgressReport) string {
	return fmt.Sprintf(
		"You're at %d%% overall progress, with %d of %d activities and %d of %d goals completed. Keep going!",
		report.OverallProgress,
		report.CompletedActivities, report.TotalActivities,
		report.CompletedGoals, report.TotalGoals,
	)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
