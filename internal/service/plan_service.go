package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Varun5711/promokit/internal/llm"
	"github.com/Varun5711/promokit/internal/models"
)

// ErrUnparsableResponse means the model replied with something that is not
// the JSON object it was instructed to return.
var ErrUnparsableResponse = errors.New("model response could not be parsed")

const promptTemplate = `
You are a creative marketing AI. For the following product/service, do two things:
1. Write a catchy, engaging social media post (caption) for promotion.
2. Create a practical, step-by-step action plan for the day to promote it, including both online and offline ideas.

Product/Service: %s
About: %s
Promotion Goal: %s

Return a JSON object with:
- socialPosts: array of 1-2 creative post captions
- dayPlan: array of 4-6 actionable steps for the day
Do not include any other text.`

type PlanService struct {
	client *llm.Client
}

func NewPlanService(client *llm.Client) *PlanService {
	return &PlanService{client: client}
}

// GeneratePlan asks the model for a marketing plan. The upstream transport
// error (if any) passes through unwrapped of ErrUnparsableResponse so the
// handler can report infrastructure trouble separately from bad model output.
func (s *PlanService) GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.MarketingPlan, error) {
	prompt := fmt.Sprintf(promptTemplate, req.BusinessName, req.BusinessType, req.Goal)

	content, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(content)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// parsePlan decodes the model output. Models wrap JSON in markdown fences
// often enough that stripping them first is worth the few lines.
func parsePlan(content string) (*models.MarketingPlan, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var plan models.MarketingPlan
	if err := json.Unmarshal([]byte(trimmed), &plan); err != nil {
		return nil, ErrUnparsableResponse
	}
	if plan.SocialPosts == nil && plan.DayPlan == nil {
		return nil, ErrUnparsableResponse
	}

	return &plan, nil
}
