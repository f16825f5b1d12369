// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/config"
	"github.com/J-Hunxho/LowkeyLuxuryMain/handlers"
	"github.com/J-Hunxho/LowkeyLuxuryMain/middleware"
	"github.com/J-Hunxho/LowkeyLuxuryMain/routes"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/auth"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/booking"
	ai "github.com/J-Hunxho/LowkeyLuxuryMain/services/intelligence"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// State stores. Everything here is transient by design; Redis is only for
	// sharing session state between instances.
	var userStore auth.UserStore
	var sessionStore booking.SessionStore
	var transcriptStore ai.TranscriptStore
	if config.AppConfig.SessionBackend == "redis" {
		userStore = auth.NewRedisUserStore(utils.GetAuthCacheClient())
		sessionStore = booking.NewRedisSessionStore(utils.GetBookingCacheClient(), 30*time.Minute)
		transcriptStore = ai.NewRedisTranscriptStore(utils.GetChatCacheClient(), 30*time.Minute)
	} else {
		userStore = auth.NewMemoryUserStore()
		sessionStore = booking.NewMemorySessionStore()
		transcriptStore = ai.NewMemoryTranscriptStore()
	}

	// Services.
	authService := auth.NewDefaultAuthService(userStore)

	wizardService := &booking.DefaultWizardService{
		Store:    sessionStore,
		Payments: booking.NewMockPaymentProcessor(logger, 2*time.Second),
		Bookings: booking.NewMockBookingCreator(logger, 1*time.Second),
	}

	chatService := &ai.DefaultChatService{Store: transcriptStore}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		generator, err := ai.NewGeminiClient(key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		chatService.Generator = generator
	} else {
		logger.Sugar().Warn("GEMINI_API_KEY is missing. Chat functionality is disabled.")
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(authService),
		Booking: handlers.NewBookingHandler(wizardService, logger),
		Chat:    handlers.NewChatHandler(chatService),
	}

	// Register routes with the assembled handler bundle.
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
