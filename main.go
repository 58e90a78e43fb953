package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"octobridge/config"
	"octobridge/handlers"
	"octobridge/middleware"
	"octobridge/routes"
	"octobridge/services/availability"
	"octobridge/services/booking"
	"octobridge/services/octo"
	"octobridge/services/product"
	"octobridge/services/token"
	"octobridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.JWTSecret == "" {
		logger.Sugar().Fatal("main: JWT_SECRET must be set; capability tokens cannot be signed without it")
	}

	cacheClient := utils.NewCacheClient()

	registry := prometheus.NewRegistry()
	metrics := utils.NewMetrics(registry)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	supplierClient := octo.NewClient(
		config.AppConfig.OctoEndpoint,
		config.AppConfig.OctoEnv,
		config.AppConfig.AcceptLanguage,
		time.Duration(config.AppConfig.SupplierTimeoutSec)*time.Second,
		logger,
		metrics,
	)

	codec := token.NewCodec(
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.TokenTTLHours)*time.Hour,
	)

	// services.
	productService := &product.DefaultProductService{
		Client:   supplierClient,
		Cache:    cacheClient,
		CacheTTL: time.Duration(config.AppConfig.ProductCacheTTLMins) * time.Minute,
		Logger:   logger,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Client:      supplierClient,
		Products:    productService,
		Codec:       codec,
		Concurrency: config.AppConfig.AvailabilityConcurrency,
		Logger:      logger,
	}
	bookingService := &booking.DefaultBookingService{
		Client: supplierClient,
		Codec:  codec,
		Logger: logger,
	}

	handlerBundle := &routes.HandlerBundle{
		Product:      handlers.NewProductHandler(productService, logger),
		Availability: handlers.NewAvailabilityHandler(availabilityService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Registry:     registry,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
