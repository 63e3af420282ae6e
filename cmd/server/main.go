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

	"github.com/Akshat-Vision/Sarvam/internal/config"
	"github.com/Akshat-Vision/Sarvam/internal/database"
	"github.com/Akshat-Vision/Sarvam/internal/handlers"
	"github.com/Akshat-Vision/Sarvam/internal/middleware"
	"github.com/Akshat-Vision/Sarvam/internal/router"
	"github.com/Akshat-Vision/Sarvam/internal/services"
)

func main() {
	log.Println("🚀 Starting Chatbot API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Open SQLite Database ────
	db, err := database.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("✗ SQLite connection failed: %v", err)
	}
	log.Println("✓ SQLite connected")

	// ──── Step 3: Run Database Migrations ────
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Step 4: Initialize Together AI Client ────
	togetherService := services.NewTogetherService(cfg.TogetherAPIKey, cfg.UpstreamTimeout)
	log.Println("✓ Together AI client initialized")

	// ──── Initialize Handlers ────
	limiter := middleware.NewRateLimiter(cfg.ChatRateLimit, cfg.ChatRateWindow)
	chatHandler := handlers.NewChatHandler(togetherService, limiter)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlive the upstream timeout so a slow Together AI call
		// is not cut off mid-response.
		WriteTimeout: cfg.UpstreamTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chatbot API ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/chat/", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
