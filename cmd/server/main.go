package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnpath-backend/internal/config"
	"learnpath-backend/internal/database"
	"learnpath-backend/internal/handlers"
	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/repository"
	"learnpath-backend/internal/router"
	"learnpath-backend/internal/services"
	"learnpath-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting LearnPath Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	activityRepo := repository.NewActivityRepo(pool)
	goalRepo := repository.NewGoalRepo(pool)
	resourceRepo := repository.NewResourceRepo(pool)
	feedbackRepo := repository.NewFeedbackRepo(pool)
	recRepo := repository.NewRecommendationRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.FrontendURL)
	authService := services.NewAuthService(userRepo, redisClients.Cache, jwtAuth, emailService)

	coachService, err := services.NewCoachService(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Study coach initialization failed: %v", err)
	}
	defer coachService.Close()
	log.Println("✓ Study coach initialized")

	recommendationService := services.NewRecommendationService(
		resourceRepo,
		activityRepo,
		feedbackRepo,
		recRepo,
		userRepo,
		redisClients.Cache,
		redisClients.PubSub,
	)
	progressService := services.NewProgressService(activityRepo, goalRepo)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	resourceHandler := handlers.NewResourceHandler(resourceRepo, recommendationService, cfg.PopularResourceCount, cfg.RecentResourceCount)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	progressHandler := handlers.NewProgressHandler(progressService)
	userHandler := handlers.NewUserHandler(userRepo)

	// ──── Step 5: Start Digest Scheduler ────
	digestScheduler := services.NewDigestScheduler(userRepo, progressService, coachService, emailService)
	digestScheduler.Start()
	log.Println("✓ Digest scheduler started")

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, cfg.JWTSecret)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		activityHandler,
		goalHandler,
		resourceHandler,
		recommendationHandler,
		progressHandler,
		userHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		digestScheduler.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ LearnPath Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
