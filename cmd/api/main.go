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

	"github.com/hackforge-dev/admin-api/internal/config"
	"github.com/hackforge-dev/admin-api/internal/infrastructure/discord"
	"github.com/hackforge-dev/admin-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/hackforge-dev/admin-api/internal/infrastructure/jwt"
	"github.com/hackforge-dev/admin-api/internal/infrastructure/webpush"
	transporthttp "github.com/hackforge-dev/admin-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// Discord announcement notifier (optional — graceful fallback).
	var chatNotifier discord.Notifier
	if n, err := discord.NewNotifier(cfg); err == nil {
		chatNotifier = n
	} else {
		log.Printf("WARN: Discord notifier not available: %v", err)
	}

	// Web-push sender (optional — graceful fallback).
	var pushSender webpush.Sender
	if s, err := webpush.NewSender(cfg); err == nil {
		pushSender = s
	} else {
		log.Printf("WARN: web-push sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		AnnouncementRepo: dynamo.NewAnnouncementRepo(dynamoClient, cfg.DynamoTables.Announcements),
		SubscriptionRepo: dynamo.NewSubscriptionRepo(dynamoClient, cfg.DynamoTables.PushSubscriptions),
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		ChatNotifier:     chatNotifier,
		PushSender:       pushSender,
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		// Create-announcement responses wait for the notification fan-out,
		// which is itself bounded by cfg.NotifyTimeout per attempt.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
