package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Varun5711/promokit/internal/auth"
	"github.com/Varun5711/promokit/internal/clickhouse"
	"github.com/Varun5711/promokit/internal/config"
	"github.com/Varun5711/promokit/internal/database"
	"github.com/Varun5711/promokit/internal/events"
	"github.com/Varun5711/promokit/internal/handlers"
	"github.com/Varun5711/promokit/internal/logger"
	"github.com/Varun5711/promokit/internal/middleware"
	"github.com/Varun5711/promokit/internal/redis"
	"github.com/Varun5711/promokit/internal/service"
	"github.com/Varun5711/promokit/internal/storage"
)

func main() {
	log := logger.New("auth-service")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatal("%v", err)
	}

	var store storage.UserStore
	if cfg.Database.PrimaryDSN != "" {
		dbManager, err := database.NewDBManager(ctx, database.Config{
			PrimaryDSN:      cfg.Database.PrimaryDSN,
			ReplicaDSNs:     cfg.Database.ReplicaDSNs,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer dbManager.Close()

		if err := dbManager.InitSchema(ctx); err != nil {
			log.Fatal("Failed to init schema: %v", err)
		}

		store = storage.NewPostgresUserStore(dbManager)
	} else {
		log.Warn("DB_PRIMARY_DSN not set, using in-memory store (accounts are lost on restart)")
		store = storage.NewMemoryUserStore()
	}

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	users := service.NewUserService(store, hasher, jwtManager)

	var producer *events.Producer
	var limiter *middleware.RateLimiter
	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, running without rate limiting and auth events: %v", err)
	} else {
		defer redisClient.Close()
		producer = events.NewProducer(redisClient.GetClient(), cfg.Redis.StreamName)
		limiter = middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	var analytics *clickhouse.Client
	if ch, err := clickhouse.NewClient(cfg.ClickHouse); err != nil {
		log.Warn("ClickHouse unavailable, /stats/signups disabled: %v", err)
	} else {
		defer ch.Close()
		analytics = ch
	}

	authHandler := handlers.NewAuthHandler(users, producer)
	statsHandler := handlers.NewStatsHandler(analytics)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	limited := func(h http.HandlerFunc) http.HandlerFunc {
		if limiter == nil {
			return h
		}
		return limiter.Middleware(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/signup", limited(authHandler.Signup))
	mux.HandleFunc("/login", limited(authHandler.Login))
	mux.HandleFunc("/me", authHandler.Me)
	mux.HandleFunc("/stats/signups", authMiddleware.RequireAuth(statsHandler.SignupStats))
	mux.HandleFunc("/stats/devices", authMiddleware.RequireAuth(statsHandler.DeviceStats))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:    ":" + cfg.Services.AuthServicePort,
		Handler: middleware.CORS(mux),
	}

	go func() {
		log.Info("Auth service listening on port %s", cfg.Services.AuthServicePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auth service...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Auth service stopped")
}
