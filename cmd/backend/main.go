package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"getjoy-backend/backend"
	"getjoy-backend/config"
	"getjoy-backend/middleware"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and record table migrated.")

	store := backend.NewStore(config.DB)

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "data/db.json"
	}
	if _, err := os.Stat(seedFile); err == nil {
		if err := backend.Seed(store, seedFile); err != nil {
			log.Fatalf("❌ Seeding from %s failed: %v", seedFile, err)
		}
	} else {
		log.Printf("⚠️  seed file %s not found; starting with whatever the database holds", seedFile)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	backend.NewHandler(store).Register(r)

	port := os.Getenv("BACKEND_PORT")
	if port == "" {
		port = "3000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Collection store starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
