package routes

import (
	"net/http"
	"time"

	"octobridge/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerBundle groups the handlers the routes need.
type HandlerBundle struct {
	Product      *handlers.ProductHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Registry     *prometheus.Registry
}

// RegisterOctoRoutes registers the supplier adapter endpoints.
func RegisterOctoRoutes(r *gin.Engine, hb *HandlerBundle) {
	octo := r.Group("/api/octo")
	{
		octo.GET("/template", hb.Product.CredentialTemplateHandler)
		octo.POST("/credentials/validate", hb.Product.ValidateCredentialsHandler)
		octo.POST("/products/search", hb.Product.SearchProductsHandler)
		octo.POST("/pickups", hb.Product.PickupPointsHandler)
		octo.POST("/booking-fields", hb.Product.BookingFieldsHandler)
		octo.POST("/availability/search", hb.Availability.SearchHandler)
		octo.POST("/availability/calendar", hb.Availability.CalendarHandler)
		octo.POST("/bookings", hb.Booking.CreateHandler)
		octo.POST("/bookings/cancel", hb.Booking.CancelHandler)
		octo.POST("/bookings/search", hb.Booking.SearchHandler)
	}
}

// RegisterHealthRoute exposes a liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterOctoRoutes(r, hb)
	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(hb.Registry, promhttp.HandlerOpts{})))
}
