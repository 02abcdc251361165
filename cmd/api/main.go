package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tixnaija/internal/config"
	"tixnaija/internal/database"
	"tixnaija/internal/middleware"
	"tixnaija/internal/modules/admin"
	"tixnaija/internal/modules/auth"
	"tixnaija/internal/modules/blog"
	"tixnaija/internal/modules/catalog"
	"tixnaija/internal/modules/events"
	"tixnaija/internal/modules/notification"
	"tixnaija/internal/modules/orders"
	"tixnaija/internal/modules/payment"
	"tixnaija/internal/modules/settings"
	"tixnaija/internal/paystack"
	jwtsvc "tixnaija/internal/pkg/jwt"
	"tixnaija/internal/push"
	"tixnaija/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	subscriptionRepo := repository.NewPushSubscriptionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Core services
	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	settingsService := settings.NewService(settingRepo, &log, cfg.SettingsCacheTTL)

	var sender interface {
		Send(ctx context.Context, subscription, title, body, link string) error
	}
	if cfg.FirebaseCredentials != "" {
		fcm, err := push.NewFCMSender(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			log.Fatal().Err(err).Msg("firebase init failed")
		}
		sender = fcm
	} else {
		log.Warn().Msg("FIREBASE_CREDENTIALS_FILE not set, push deliveries will be logged only")
		sender = push.NewLogSender(&log)
	}

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, subscriptionRepo, sender, hub, &log)

	authService := auth.NewService(userRepo, jwtService)
	eventService := events.NewService(eventRepo, notificationService, &log)
	catalogService := catalog.NewService(catalogRepo)
	orderService := orders.NewService(orderRepo, eventRepo, settingsService, &log)
	paymentService := payment.NewService(settingsService, paystack.NewClient(), orderRepo, notificationService, &log)
	blogService := blog.NewService(postRepo)
	adminService := admin.NewService(userRepo, &log)

	// Handlers
	cookieMaxAge := int(cfg.JWTAccessTTL / time.Second)
	cookieSecure := cfg.AppEnv != "dev"

	authHandler := auth.NewHandler(authService, cookieMaxAge, cookieSecure)
	eventHandler := events.NewHandler(eventService)
	catalogHandler := catalog.NewHandler(catalogService)
	orderHandler := orders.NewHandler(orderService)
	paymentHandler := payment.NewHandler(paymentService)
	settingsHandler := settings.NewHandler(settingsService)
	notificationHandler := notification.NewHandler(notificationService, hub)
	blogHandler := blog.NewHandler(blogService)
	adminHandler := admin.NewHandler(adminService)

	router := gin.New()
	router.Use(middleware.RequestLogger(&log))
	router.Use(corsMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SessionResolver(jwtService, userRepo))

	v1 := router.Group("/api/v1")

	// Public surface: no gate, identity optional.
	authHandler.RegisterPublicRoutes(v1)
	eventHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)
	blogHandler.RegisterPublicRoutes(v1)
	paymentHandler.RegisterPublicRoutes(v1)
	settingsHandler.RegisterPublicRoutes(v1)

	// Any signed-in user.
	protected := v1.Group("")
	protected.Use(middleware.Require(middleware.AnyUser))
	authHandler.RegisterProtectedRoutes(protected)
	orderHandler.RegisterProtectedRoutes(protected)
	notificationHandler.RegisterProtectedRoutes(protected)

	// Event organizers.
	organizer := v1.Group("/organizer")
	organizer.Use(middleware.Require(middleware.OrganizerOnly))
	eventHandler.RegisterOrganizerRoutes(organizer)

	// Platform staff and up.
	staff := v1.Group("/admin")
	staff.Use(middleware.Require(middleware.StaffOrAbove))
	eventHandler.RegisterAdminRoutes(staff)
	catalogHandler.RegisterAdminRoutes(staff)
	blogHandler.RegisterStaffRoutes(staff)
	notificationHandler.RegisterAdminRoutes(staff)
	orderHandler.RegisterAdminRoutes(staff)

	// Super admin only.
	superAdmin := v1.Group("/admin")
	superAdmin.Use(middleware.Require(middleware.SuperAdminOnly))
	settingsHandler.RegisterAdminRoutes(superAdmin)
	adminHandler.RegisterRoutes(superAdmin)

	// Server-rendered admin pages go through the redirect gate instead of
	// the JSON one.
	adminPages := router.Group("/admin")
	adminPages.Use(middleware.RequirePage(middleware.StaffOrAbove))
	adminPages.GET("/", func(c *gin.Context) {
		c.String(200, "admin dashboard")
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if os.Getenv("APP_ENV") == "dev" || os.Getenv("APP_ENV") == "" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}
