package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Varun5711/promokit/internal/logger"
	"github.com/Varun5711/promokit/internal/models"
	"github.com/Varun5711/promokit/internal/service"
)

const (
	msgUnparsableAI  = "AI response could not be parsed."
	msgUpstreamError = "AI request failed"
)

type PlanHandler struct {
	plans *service.PlanService
	log   *logger.Logger
}

func NewPlanHandler(plans *service.PlanService) *PlanHandler {
	return &PlanHandler{
		plans: plans,
		log:   logger.New("plan-handler"),
	}
}

// GeneratePlan forwards the campaign details to the model provider and
// relays its JSON plan. Model output that fails to parse is a 500 with the
// fixed message; a failed call to the provider itself is a 502.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("Failed to decode plan request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := h.plans.GeneratePlan(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnparsableResponse) {
			h.log.Error("Unparsable model output for %q", req.BusinessName)
			respondError(w, http.StatusInternalServerError, msgUnparsableAI)
			return
		}
		h.log.Error("Plan generation failed: %v", err)
		respondError(w, http.StatusBadGateway, msgUpstreamError)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}
