package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"udaan-cms/internal/config"
	"udaan-cms/internal/handler"
	"udaan-cms/internal/infrastructure/database"
	"udaan-cms/internal/logger"
	"udaan-cms/internal/metrics"
	"udaan-cms/internal/middleware"
	"udaan-cms/internal/repository"
	"udaan-cms/internal/service"
	"udaan-cms/internal/token"
	"udaan-cms/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database; one pool for the whole process
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Initialize validator and token service
	v := validator.NewValidator()
	tokens := token.NewService(cfg.AuthSecret, cfg.SessionTTL)

	// Initialize services
	postService := service.NewPostService(postRepo, v)
	authService := service.NewAuthService(userRepo, tokens, v)
	bootstrapService := service.NewBootstrapService(
		func() error { return database.Migrate(cfg.MigrationsPath, poolCfg.URL()) },
		userRepo,
		cfg.AdminUsername,
		cfg.AdminPassword,
	)

	// Initialize schema and seed the default admin at startup
	if err := bootstrapService.Run(context.Background()); err != nil {
		logger.Fatal("Failed to initialize database",
			slog.String("error", err.Error()))
	}

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService)
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.IsProduction())
	adminHandler := handler.NewAdminHandler(bootstrapService, pool)
	healthHandler := handler.NewHealthHandler(pool)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Limit(), authHandler.Login)
			auth.GET("/logout", authHandler.Logout)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/validate", authHandler.Validate)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", middleware.OptionalAuth(tokens), postHandler.ListPosts)
			posts.GET("/:id", middleware.OptionalAuth(tokens), postHandler.GetPost)
			posts.POST("", middleware.RequireAuth(tokens), postHandler.CreatePost)
			posts.PUT("/:id", middleware.RequireAuth(tokens), postHandler.UpdatePost)
			posts.DELETE("/:id", middleware.RequireAuth(tokens), postHandler.DeletePost)
		}

		api.POST("/init-db", adminHandler.InitDB)
		api.GET("/test-db", adminHandler.TestDB)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
