package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/config"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/handler"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/middleware"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/shared/telegram"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting assembly production monitor",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Vehicle{},
		&entity.ProductionStatus{},
		&entity.Request{},
		&entity.ChangeLog{},
		&entity.PartLocation{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	seedMasterAdmin(db, zapLogger)

	rdb := initRedis(cfg.Redis)

	bot := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if bot.Configured() {
		zapLogger.Info("Telegram notification client initialized")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger, bot)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// seedMasterAdmin creates the bootstrap account when no master admin
// exists yet
func seedMasterAdmin(db *gorm.DB, zapLogger *zap.Logger) {
	var count int64
	db.Model(&entity.User{}).Where("role = ?", entity.RoleMasterAdmin).Count(&count)
	if count > 0 {
		return
	}

	username := config.GetEnvOrDefault("MASTER_ADMIN_USERNAME", "master")
	password := os.Getenv("MASTER_ADMIN_PASSWORD")
	if password == "" {
		zapLogger.Warn("MASTER_ADMIN_PASSWORD not set, skipping master admin seed")
		return
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     username,
		PasswordHash: service.HashPassword(password),
		Role:         entity.RoleMasterAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		zapLogger.Warn("Failed to seed master admin", zap.Error(err))
		return
	}
	zapLogger.Info("Seeded master admin account", zap.String("username", username))
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			authorized.GET("/dashboard", h.Dashboard.Overview)

			vehicles := authorized.Group("/vehicles")
			{
				vehicles.GET("", h.Vehicle.List)
				vehicles.POST("", middleware.RequireRole(entity.RoleAdmin), h.Vehicle.Create)
				vehicles.DELETE("/:number", middleware.RequireRole(entity.RoleAdmin), h.Vehicle.Delete)
			}

			production := authorized.Group("/production")
			{
				production.GET("", h.Production.List)
				production.PUT("/:number/stations/:station", middleware.RequireRole(entity.RoleAdmin), h.Production.UpdateStatus)
			}

			requests := authorized.Group("/requests")
			{
				requests.GET("", h.Request.List)
				requests.POST("", middleware.RequireRole(entity.RoleAdmin, entity.RoleCustomer), h.Request.Create)
				requests.POST("/:id/deliver", middleware.RequireRole(entity.RoleAdmin), h.Request.Deliver)
				requests.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Request.Delete)
			}

			// user management is master admin only
			users := authorized.Group("/users")
			users.Use(middleware.RequireRole())
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.DELETE("/:id", h.User.Delete)
				users.PUT("/:id/role", h.User.UpdateRole)
				users.PUT("/:id/password", h.User.ResetPassword)
			}

			changeLogs := authorized.Group("/change-logs")
			changeLogs.Use(middleware.RequireRole(entity.RoleAdmin))
			{
				changeLogs.GET("", h.ChangeLog.List)
				changeLogs.GET("/notify", h.ChangeLog.NotifyStatus)
				changeLogs.PUT("/notify", middleware.RequireRole(), h.ChangeLog.SetNotify)
			}

			exports := authorized.Group("/exports")
			{
				exports.GET("/workbook", h.Export.Workbook)
				exports.GET("/requests.pdf", h.Export.RequestsPDF)
				exports.GET("/analytics.pdf", h.Export.AnalyticsPDF)
			}

			authorized.GET("/parts/:part_no/locations", h.PartLocation.Lookup)
		}
	}
}
