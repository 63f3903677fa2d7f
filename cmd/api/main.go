package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"getjoy-backend/client"
	"getjoy-backend/config"
	"getjoy-backend/controllers"
	"getjoy-backend/models"
	"getjoy-backend/routes"
	"getjoy-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	api := client.New(cfg.StoreURL, cfg.StoreTimeout)

	// Initialize services
	userService := services.NewUserService(api, cfg.SessionFile)
	likeService := services.NewLikeService(api)
	hotelService := services.NewHotelService(api)
	destinationService := services.NewDestinationService(api, hotelService)
	bookingService := services.NewBookingService(api, hotelService, destinationService)

	userService.Subscribe(func(u *models.User) {
		if u == nil {
			log.Println("session: signed out")
			return
		}
		log.Printf("session: %s signed in", u.Email)
	})

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	destinationController := controllers.NewDestinationController(destinationService, userService)
	hotelController := controllers.NewHotelController(hotelService)
	likeController := controllers.NewLikeController(likeService, destinationService, userService)
	bookingController := controllers.NewBookingController(bookingService, userService)

	// Build router
	router := routes.SetupRouter(
		authController,
		destinationController,
		hotelController,
		likeController,
		bookingController,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 API server starting on %s (store at %s)", addr, cfg.StoreURL)
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
