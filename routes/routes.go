package routes

import (
	"net/http"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/handlers"
	"github.com/J-Hunxho/LowkeyLuxuryMain/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the mock auth endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.CurrentUserHandler)
	}
}

// RegisterCatalogRoutes registers the static service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		api.GET("", handlers.ListServicesHandler)
		api.GET("/:id", handlers.GetServiceHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard. The
// group uses optional authentication: unauthenticated visitors can browse and
// start a session, and the wizard itself gates the transitions that need a
// signed-in user.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.OptionalAuthMiddleware())
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.POST("/session/:sessionID/service", hb.Booking.SelectService)
		bookingGroup.POST("/session/:sessionID/tier", hb.Booking.SelectTier)
		bookingGroup.POST("/session/:sessionID/schedule", hb.Booking.SetSchedule)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.Back)
		bookingGroup.POST("/session/:sessionID/payment", hb.Booking.ConfirmPayment)
		bookingGroup.POST("/session/:sessionID/reset", hb.Booking.ResetSession)
	}
}

// RegisterChatRoutes registers the chat proxy endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.Chat.CreateSessionHandler)
		api.GET("/session/:sessionID", hb.Chat.GetTranscriptHandler)
		api.POST("/session/:sessionID/message", hb.Chat.SendMessageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lowkey Luxury"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
