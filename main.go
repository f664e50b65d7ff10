package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autocare/config"
	"autocare/cron"
	"autocare/database"
	adminRepoPkg "autocare/database/repository/admin"
	bookingRepoPkg "autocare/database/repository/booking"
	cartRepoPkg "autocare/database/repository/cart"
	catalogRepoPkg "autocare/database/repository/catalog"
	newsletterRepoPkg "autocare/database/repository/newsletter"
	userRepoPkg "autocare/database/repository/user"
	"autocare/handlers"
	"autocare/middleware"
	"autocare/routes"
	"autocare/services/admin"
	"autocare/services/booking"
	"autocare/services/cart"
	"autocare/services/catalog"
	"autocare/services/newsletter"
	"autocare/services/notification"
	"autocare/services/tasks"
	"autocare/services/user"
	"autocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient := database.InitDB()
	db := mongoClient.Database(config.AppConfig.DatabaseName)
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	adminRepo := adminRepoPkg.NewMongoAdminRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	cartRepo := cartRepoPkg.NewMongoCartRepo(db)
	newsletterRepo := newsletterRepoPkg.NewMongoNewsletterRepo(db)

	// Notification relay, bridged across instances through Redis.
	relay := notification.NewBroadcastRelay(utils.GetRelayClient())

	// Services.
	tokenTTL := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	userService := &user.DefaultUserService{Repo: userRepo, TokenTTL: tokenTTL}
	adminService := &admin.DefaultAdminService{Repo: adminRepo, TokenTTL: tokenTTL}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		UserRepo:  userRepo,
		Catalog:   catalogService,
		Notifier:  relay,
		Reminders: tasks.NewAsynqReminderScheduler(),
	}
	cartService := &cart.DefaultCartService{Repo: cartRepo, Catalog: catalogService}
	newsletterService := &newsletter.DefaultNewsletterService{Repo: newsletterRepo}

	// Provision the configured admin account.
	if err := adminService.Seed(config.AppConfig.AdminName, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to seed admin account: %v", err)
	}

	// Reminder worker feeding the relay.
	cron.InitReminderWorker(relay)

	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient(), utils.GetRelayClient()}, mongoClient)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:       handlers.NewAuthHandler(userService),
		User:       handlers.NewUserHandler(userService, bookingService),
		Booking:    handlers.NewBookingHandler(bookingService),
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Cart:       handlers.NewCartHandler(cartService),
		Admin:      handlers.NewAdminHandler(adminService, userService, bookingService, catalogService),
		Notify:     handlers.NewNotifyHandler(relay),
		Newsletter: handlers.NewNewsletterHandler(newsletterService),
		UserGate:   middleware.RequireAuth(user.Namespace, userRepo),
		AdminGate:  middleware.RequireAuth(admin.Namespace, adminRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
