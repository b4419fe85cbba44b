package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Varun5711/promokit/internal/config"
	"github.com/Varun5711/promokit/internal/handlers"
	"github.com/Varun5711/promokit/internal/llm"
	"github.com/Varun5711/promokit/internal/logger"
	"github.com/Varun5711/promokit/internal/middleware"
	"github.com/Varun5711/promokit/internal/service"
)

func main() {
	log := logger.New("planner-service")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if cfg.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set")
	}

	client := llm.NewClient(llm.Config{
		APIKey:         cfg.OpenAI.APIKey,
		Model:          cfg.OpenAI.Model,
		Temperature:    cfg.OpenAI.Temperature,
		CompletionsURL: cfg.OpenAI.CompletionsURL,
		HTTPClient:     &http.Client{Timeout: cfg.OpenAI.Timeout},
	})

	planHandler := handlers.NewPlanHandler(service.NewPlanService(client))

	mux := http.NewServeMux()
	mux.HandleFunc("/generate-plan", planHandler.GeneratePlan)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:    ":" + cfg.Services.PlannerServicePort,
		Handler: middleware.CORS(mux),
	}

	go func() {
		log.Info("Planner service listening on port %s", cfg.Services.PlannerServicePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down planner service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Planner service stopped")
}
