package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Varun5711/promokit/internal/llm"
	"github.com/Varun5711/promokit/internal/models"
)

func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "marketing AI") {
			t.Errorf("prompt not forwarded to provider: %s", body)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newPlanService(upstreamURL string) *PlanService {
	client := llm.NewClient(llm.Config{
		APIKey:         "test-key",
		Model:          "gpt-4",
		CompletionsURL: upstreamURL,
	})
	return NewPlanService(client)
}

func TestGeneratePlan(t *testing.T) {
	content := `{"socialPosts":["Visit our bakery!"],"dayPlan":["Post on social media","Hand out flyers"]}`
	server := fakeCompletionServer(t, content)
	defer server.Close()

	svc := newPlanService(server.URL)

	plan, err := svc.GeneratePlan(context.Background(), planRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.SocialPosts) != 1 || plan.SocialPosts[0] != "Visit our bakery!" {
		t.Errorf("unexpected social posts: %v", plan.SocialPosts)
	}
	if len(plan.DayPlan) != 2 {
		t.Errorf("unexpected day plan: %v", plan.DayPlan)
	}
}

func TestGeneratePlan_FencedJSON(t *testing.T) {
	content := "```json\n{\"socialPosts\":[\"Post\"],\"dayPlan\":[\"Step\"]}\n```"
	server := fakeCompletionServer(t, content)
	defer server.Close()

	svc := newPlanService(server.URL)

	plan, err := svc.GeneratePlan(context.Background(), planRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.SocialPosts) != 1 || len(plan.DayPlan) != 1 {
		t.Errorf("unexpected plan: %+v", plan)
	}
}

func TestGeneratePlan_UnparsableOutput(t *testing.T) {
	server := fakeCompletionServer(t, "Here is your marketing plan: buy ads.")
	defer server.Close()

	svc := newPlanService(server.URL)

	_, err := svc.GeneratePlan(context.Background(), planRequest())
	if !errors.Is(err, ErrUnparsableResponse) {
		t.Errorf("expected ErrUnparsableResponse, got %v", err)
	}
}

func TestGeneratePlan_NonPlanJSON(t *testing.T) {
	server := fakeCompletionServer(t, `{"unrelated":true}`)
	defer server.Close()

	svc := newPlanService(server.URL)

	_, err := svc.GeneratePlan(context.Background(), planRequest())
	if !errors.Is(err, ErrUnparsableResponse) {
		t.Errorf("expected ErrUnparsableResponse, got %v", err)
	}
}

func TestGeneratePlan_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newPlanService(server.URL)

	_, err := svc.GeneratePlan(context.Background(), planRequest())
	if err == nil {
		t.Fatal("expected error for failing upstream")
	}
	if errors.Is(err, ErrUnparsableResponse) {
		t.Error("upstream failure must not be reported as a parse failure")
	}
}

func planRequest() models.PlanRequest {
	return models.PlanRequest{
		BusinessName: "Corner Bakery",
		BusinessType: "Local bakery selling fresh bread",
		Goal:         "More walk-in customers",
	}
}
