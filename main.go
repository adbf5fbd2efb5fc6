// File: venuehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuehub/config"
	"venuehub/cron"
	"venuehub/database"
	bookingRepoPkg "venuehub/database/repository/booking"
	paymentConfigRepoPkg "venuehub/database/repository/paymentconfig"
	spaceRepoPkg "venuehub/database/repository/space"
	userRepoPkg "venuehub/database/repository/user"
	"venuehub/handlers"
	"venuehub/middleware"
	"venuehub/routes"
	"venuehub/services/booking"
	"venuehub/services/payment"
	"venuehub/services/space"
	"venuehub/services/user"
	"venuehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	spaceRepo := spaceRepoPkg.NewMongoSpaceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentConfigRepo := paymentConfigRepoPkg.NewMongoPaymentConfigRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	spaceService := &space.DefaultSpaceService{
		Repo:   spaceRepo,
		Users:  userRepo,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:       bookingRepo,
		Spaces:         spaceRepo,
		ServiceFeeRate: config.AppConfig.ServiceFeeRate,
		Logger:         logger,
	}

	gateway := &payment.StripeGateway{
		Config: paymentConfigRepo,
	}

	credentialsService := &payment.DefaultCredentialsService{
		Repo:    paymentConfigRepo,
		Gateway: gateway,
		Logger:  logger,
	}

	reconcileService := &payment.DefaultReconcileService{
		Bookings:  bookingRepo,
		Config:    paymentConfigRepo,
		Cache:     utils.GetCacheClient(),
		Scheduler: cron.NewAsynqScheduler(),
		Logger:    logger,
	}

	// Background worker: delayed re-applies and the periodic sweep.
	cron.InitReconcileWorker(reconcileService)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler: handlers.AuthenticateUserHandler(userService),
		GetProfileHandler:       handlers.GetProfileHandler(),
		RevokeTokenHandler:      handlers.RevokeTokenHandler(userService),

		// Space endpoints.
		ListSpacesHandler:      handlers.ListSpacesHandler(spaceService),
		GetSpaceHandler:        handlers.GetSpaceHandler(spaceService),
		CreateSpaceHandler:     handlers.CreateSpaceHandler(spaceService),
		UpdateSpaceHandler:     handlers.UpdateSpaceHandler(spaceService),
		DeleteSpaceHandler:     handlers.DeleteSpaceHandler(spaceService),
		SetAvailabilityHandler: handlers.SetAvailabilityHandler(spaceService),
		MySpacesHandler:        handlers.MySpacesHandler(spaceService),

		// Booking endpoints.
		QuoteBookingHandler:   handlers.QuoteBookingHandler(bookingService),
		SubmitBookingHandler:  handlers.SubmitBookingHandler(bookingService),
		CreateCheckoutHandler: handlers.CreateCheckoutHandler(bookingService, spaceService, gateway, bookingRepo),
		MyBookingsHandler:     handlers.MyBookingsHandler(bookingService),
		SpaceBookingsHandler:  handlers.SpaceBookingsHandler(bookingService),
		GetBookingHandler:     handlers.GetBookingHandler(bookingService),
		CancelBookingHandler:  handlers.CancelBookingHandler(bookingService),

		// Payment endpoints.
		StripeWebhookHandler:    handlers.StripeWebhookHandler(reconcileService),
		SaveStripeConfigHandler: handlers.SaveStripeConfigHandler(credentialsService),
		GetStripeConfigHandler:  handlers.GetStripeConfigHandler(credentialsService),
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
