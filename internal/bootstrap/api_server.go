package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-dashboard/config"
	_ "finance-dashboard/docs" // Swagger docs
	"finance-dashboard/internal/ai"
	"finance-dashboard/internal/api/rest"
	"finance-dashboard/internal/auth"
	"finance-dashboard/internal/kafka"
	"finance-dashboard/internal/redis"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/storage/sqlite"
)

// StartAPIServer wires the dependencies and runs the HTTP server until a
// shutdown signal arrives. SQLite, the token service and the AI gateway are
// required; Kafka and Redis are optional and only logged when absent.
func StartAPIServer() {
	cfg := config.Load()

	storage, err := sqlite.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer storage.Close()

	userRepo := sqlite.NewUserRepository(storage)
	transactionRepo := sqlite.NewTransactionRepository(storage)

	tokens, err := auth.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTAlgorithm,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	aiClient, err := ai.NewClient(cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	// Kafka is optional: without brokers the audit trail is skipped.
	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		log.Println("Connecting to Kafka...")
		p, err := kafka.NewProducer(cfg)
		if err != nil {
			log.Printf("Warning: Failed to create Kafka producer (audit events disabled): %v", err)
		} else {
			producer = p
			defer producer.Close()
		}
	} else {
		log.Println("KAFKA_BROKERS not set, audit events disabled")
	}

	// Redis is optional: without it chat history is not stored.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		log.Println("Connecting to Redis...")
		rc, err := redis.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (chat history disabled): %v", err)
		} else {
			redisClient = rc
			defer redisClient.Close()
		}
	} else {
		log.Println("REDIS_HOST not set, chat history disabled")
	}

	authService := services.NewAuthService(userRepo)
	transactionService := services.NewTransactionService(transactionRepo, producer, cfg.Categories)
	dashboardService := services.NewDashboardService(transactionRepo)
	aiChatService := services.NewAIChatService(aiClient, transactionRepo, redisClient)

	handlers := rest.NewHandlers(authService, tokens, transactionService, dashboardService, aiChatService, cfg.Categories)
	router := rest.SetupRouter(handlers, tokens, userRepo, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Finance Dashboard API starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
