package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/healthtrack/backend/internal/application/identity"
	journalapp "github.com/healthtrack/backend/internal/application/journal"
	reportapp "github.com/healthtrack/backend/internal/application/report"
	"github.com/healthtrack/backend/internal/infrastructure/auth"
	"github.com/healthtrack/backend/internal/infrastructure/config"
	csvimport "github.com/healthtrack/backend/internal/infrastructure/import"
	"github.com/healthtrack/backend/internal/infrastructure/logger"
	"github.com/healthtrack/backend/internal/infrastructure/persistence"
	"github.com/healthtrack/backend/internal/infrastructure/storage"
	"github.com/healthtrack/backend/internal/interfaces/http/handler"
	"github.com/healthtrack/backend/internal/interfaces/http/middleware"
	"github.com/healthtrack/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting HealthTrack Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	healthLogRepo := persistence.NewGormHealthLogRepository(db.DB)

	// Token blacklist: Redis when enabled, in-process otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Using Redis token blacklist",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	// Profile picture storage backend
	avatars, err := newAvatarStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize avatar storage", zap.Error(err))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	profileService := identityapp.NewProfileService(userRepo, avatars, log)
	logService := journalapp.NewLogService(healthLogRepo, log)
	importProcessor := csvimport.NewImportProcessor(
		csvimport.WithMaxFileSize(cfg.HTTP.MaxBodySize),
	)
	importService := journalapp.NewImportService(healthLogRepo, importProcessor, log)
	chartService := reportapp.NewChartService(healthLogRepo, log)
	exportService := reportapp.NewExportService(healthLogRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	logsHandler := handler.NewLogsHandler(logService)
	reportHandler := handler.NewReportHandler(chartService, exportService, importService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (registration, login, current user)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
		log.Info("auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)

	// Profile routes
	profileRoutes := router.NewDomainGroup("profile", "/profile")
	profileRoutes.GET("", profileHandler.GetProfile)
	profileRoutes.PUT("", profileHandler.UpdateProfile)

	// Journal domain (daily logs, CSV export/import)
	logRoutes := router.NewDomainGroup("logs", "/logs")
	logRoutes.POST("", logsHandler.SubmitLog)
	logRoutes.GET("", logsHandler.ListLogs)
	logRoutes.GET("/export", reportHandler.ExportCSV)
	logRoutes.POST("/import", reportHandler.ImportCSV)

	// Chart routes
	chartRoutes := router.NewDomainGroup("charts", "/charts")
	chartRoutes.GET("", reportHandler.GetChartSeries)
	chartRoutes.GET("/html", reportHandler.GetChartsHTML)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(profileRoutes).
		Register(logRoutes).
		Register(chartRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newAvatarStorage selects the profile picture backend from config
func newAvatarStorage(cfg *config.Config, log *zap.Logger) (storage.AvatarStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		s3Storage, err := storage.NewS3AvatarStorage(&cfg.Storage)
		if err != nil {
			return nil, err
		}
		log.Info("Using S3 avatar storage",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
		)
		return s3Storage, nil
	default:
		localStorage, err := storage.NewLocalAvatarStorage(cfg.Storage.LocalPath)
		if err != nil {
			return nil, err
		}
		log.Info("Using local avatar storage", zap.String("path", cfg.Storage.LocalPath))
		return localStorage, nil
	}
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		resp := gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}
		if stats, err := db.Stats(); err == nil {
			resp["db_pool"] = gin.H{
				"open":    stats.OpenConnections,
				"in_use":  stats.InUse,
				"idle":    stats.Idle,
				"waiting": stats.WaitCount,
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
