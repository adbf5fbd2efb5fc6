package routes

import (
	"net/http"
	"time"

	"venuehub/handlers"
	"venuehub/middleware"
	"venuehub/models"
	"venuehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterSpaceRoutes registers space browsing and host management endpoints.
func RegisterSpaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/spaces")
	{
		// Public browsing endpoints.
		api.GET("", hb.ListSpacesHandler)
		api.GET("/:id", hb.GetSpaceHandler)

		// Host management requires authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateSpaceHandler)
		protected.PUT("/:id", hb.UpdateSpaceHandler)
		protected.DELETE("/:id", hb.DeleteSpaceHandler)
		protected.PUT("/:id/availability", hb.SetAvailabilityHandler)
		protected.GET("/:id/bookings", hb.SpaceBookingsHandler)
	}

	mine := r.Group("/api/my-spaces")
	{
		mine.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		mine.GET("", hb.MySpacesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/quote", hb.QuoteBookingHandler)
		api.POST("", hb.SubmitBookingHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("/:id/checkout", hb.CreateCheckoutHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterWebhookRoutes sets up gateway callback endpoints. These are
// authenticated by signature, not bearer token, so they sit outside the
// auth middleware.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/stripe", hb.StripeWebhookHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.PUT("/stripe-config", hb.SaveStripeConfigHandler)
		adminGroup.GET("/stripe-config", hb.GetStripeConfigHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm VenueHub",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterSpaceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
