package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"cafehub/pkg/cache"
	"cafehub/pkg/cart"
	"cafehub/pkg/config"
	"cafehub/pkg/controllers/dashboard"
	"cafehub/pkg/controllers/storefront"
	"cafehub/pkg/controllers/superadmin"
	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/realtime"
	"cafehub/pkg/routes"
	"cafehub/pkg/services"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	log.Println("🔌 Initializing database connection...")
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	if config.IsDevelopment() {
		if err := database.AutoMigrate(); err != nil {
			log.Printf("⚠️ Failed to run migrations: %v", err)
		}
	}

	// Redis backs the read caches and the cart mirror; without it the
	// app still runs, with in-process carts and no caching
	var rdb *redis.Client
	if config.AppConfig.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️  Warning: Redis unreachable, running without cache: %v", err)
			rdb = nil
		} else {
			log.Println("✅ Redis connected")
		}
	} else {
		log.Println("⚠️  REDIS_ADDR not set, running without cache")
	}

	store := cache.New(rdb)
	var carts cart.Store
	if rdb != nil {
		carts = cart.NewRedisStore(rdb)
	} else {
		carts = cart.NewMemoryStore()
	}

	// Initialize Cloud Storage for menu and logo images
	if err := services.InitGCSStorage(context.Background()); err != nil {
		log.Printf("⚠️  Warning: Cloud Storage initialization failed: %v", err)
	} else {
		log.Println("✅ Cloud Storage initialized successfully")
	}

	// Initialize push notifications
	push, err := services.NewPushService(context.Background(), database.DB, config.AppConfig.GoogleApplicationCredentials)
	if err != nil {
		log.Printf("⚠️  Warning: FCM initialization failed: %v", err)
		push, _ = services.NewPushService(context.Background(), database.DB, "")
	} else if push.Enabled() {
		log.Println("✅ FCM initialized successfully")
	} else {
		log.Println("⚠️  FCM credentials not set, push notifications disabled")
	}

	// Initialize Razorpay service
	if err := services.InitRazorpay(); err != nil {
		log.Printf("⚠️  Warning: Razorpay initialization failed: %v", err)
	}

	telegram := services.NewTelegramService(config.AppConfig.TelegramAPIBase)

	// Realtime hub and the order event bridge
	hub := realtime.NewHub()
	go hub.Run()
	bridge := realtime.NewBridge(hub, store, push, telegram)

	// Set Gin mode based on environment
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.ErrorMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Session middleware
	sessionStore := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	router.Use(sessions.Sessions("session", sessionStore))

	setupCORS(router)

	router.MaxMultipartMemory = 10 << 20 // 10 MB

	storefrontCtl := storefront.NewController(carts, bridge, telegram)
	dashboardCtl := dashboard.NewController(store, bridge, push)
	superadminCtl := superadmin.NewController(store)

	setupRoutes(router, storefrontCtl, dashboardCtl, superadminCtl, store, hub)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server running in %s mode\n", config.AppConfig.Environment)
		log.Printf("📡 Server listening on http://localhost:%s\n", config.AppConfig.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// setupCORS configures CORS for the dashboard and storefront clients
func setupCORS(router *gin.Engine) {
	isProduction := config.IsProduction()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "X-Cart-Session"},
		ExposeHeaders:    []string{"X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if isProduction {
		allowOrigins := parseOrigins(config.AppConfig.AllowedOrigins)
		if len(allowOrigins) == 0 {
			allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
		}
		corsConfig.AllowOrigins = allowOrigins
		log.Printf("🔒 CORS enabled for origins: %v\n", allowOrigins)
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
		log.Println("🔓 CORS enabled for all origins (development mode)")
	}

	router.Use(cors.New(corsConfig))
}

// parseOrigins splits comma-separated origin string
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes sets up all application routes
func setupRoutes(
	router *gin.Engine,
	storefrontCtl *storefront.Controller,
	dashboardCtl *dashboard.Controller,
	superadminCtl *superadmin.Controller,
	store *cache.Cache,
	hub *realtime.Hub,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "CafeHub server is running...")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		routes.RegisterAuthRoutes(api)
		routes.RegisterStorefrontRoutes(api, storefrontCtl)
		routes.RegisterDashboardRoutes(api, dashboardCtl, store, hub)
		routes.RegisterSuperAdminRoutes(api, superadminCtl)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":      "ok",
				"environment": config.AppConfig.Environment,
				"database":    "connected",
			})
		})
	}

	router.NoRoute(middleware.NotFoundHandler())
}
