package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"getjoy-backend/controllers"
	"getjoy-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller onto the API surface.
func SetupRouter(
	ac *controllers.AuthController,
	dc *controllers.DestinationController,
	hc *controllers.HotelController,
	lc *controllers.LikeController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/signup", ac.Signup)
			auth.POST("/logout", ac.Logout)
			auth.GET("/me", ac.Me)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", dc.List)
			destinations.GET("/:id", dc.GetByID)
			destinations.GET("/:id/hotels", hc.ListForDestination)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("/:id", hc.GetWithRooms)
		}

		likes := api.Group("/likes")
		{
			likes.GET("", lc.Liked)
			likes.GET("/status", lc.Status)
			likes.POST("", lc.Like)
			likes.POST("/remove", lc.Unlike)
			likes.POST("/toggle", lc.Toggle)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.POST("", bc.Create)
			bookings.GET("/:id", bc.Get)
			bookings.POST("/:id/cancel", bc.Cancel)
			bookings.DELETE("/:id", bc.Delete)
		}
	}

	return r
}
