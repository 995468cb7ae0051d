package main

import (
	"log"
	"os"
	"strings"

	"novelshorts/internal/config"
	"novelshorts/internal/handler"
	"novelshorts/internal/middleware"
	"novelshorts/internal/model"
	"novelshorts/internal/repository"
	"novelshorts/internal/service"
	"novelshorts/pkg/database"
	"novelshorts/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(database.Options{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
	})
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	redisClient := newRedisClient(cfg.RedisURL, logger)
	meiliClient := newMeiliClient(cfg.MeiliSearchHost, cfg.MeiliMasterKey)
	mediaStorage := newMediaStorage(logger)

	observer := service.NewZapObserver(logger)

	userRepo := repository.NewUserRepository(db)
	novelRepo := repository.NewNovelRepository(db)
	shortsRepo := repository.NewShortsRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, observer)
	interactionService := service.NewInteractionService(interactionRepo, observer)
	commentService := service.NewCommentService(commentRepo, redisClient, cfg.RateLimitComment, observer)
	catalogService := service.NewCatalogService(shortsRepo, novelRepo, commentRepo, interactionRepo, observer)
	searchService := service.NewSearchService(meiliClient, shortsRepo, observer)
	adminService := service.NewAdminService(novelRepo, shortsRepo, mediaStorage, searchService, cfg.CloudinaryUploadFolder, observer)
	activityService := service.NewActivityService(userRepo, observer)

	authHandler := handler.NewAuthHandler(authService)
	shortsHandler := handler.NewShortsHandler(catalogService, interactionService, searchService)
	commentHandler := handler.NewCommentHandler(commentService, interactionService)
	adminHandler := handler.NewAdminHandler(adminService)
	activityHandler := handler.NewActivityHandler(activityService)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Code"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.RequireAuth(authService), authHandler.Logout)
		}

		// Catalog reads carry viewer state when a token is present but never
		// require one.
		public := api.Group("")
		public.Use(middleware.OptionalAuth(authService))
		{
			public.GET("/shorts", shortsHandler.ListShorts)
			public.GET("/shorts/search", shortsHandler.SearchShorts)
			public.GET("/shorts/:shorts_no", shortsHandler.GetShorts)
			public.GET("/shorts/:shorts_no/comments", commentHandler.ListComments)
			public.GET("/novels/:novel_no", shortsHandler.GetNovelDetail)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authService))
		{
			protected.POST("/shorts/:shorts_no/like", shortsHandler.LikeShorts)
			protected.DELETE("/shorts/:shorts_no/like", shortsHandler.UnlikeShorts)
			protected.POST("/shorts/:shorts_no/save", shortsHandler.SaveShorts)
			protected.DELETE("/shorts/:shorts_no/save", shortsHandler.UnsaveShorts)

			protected.POST("/shorts/:shorts_no/comments", commentHandler.CreateComment)
			protected.PUT("/comments/:comment_no", commentHandler.UpdateComment)
			protected.DELETE("/comments/:comment_no", commentHandler.DeleteComment)
			protected.POST("/comments/:comment_no/like", commentHandler.LikeComment)
			protected.DELETE("/comments/:comment_no/like", commentHandler.UnlikeComment)

			protected.POST("/user/activity", activityHandler.LogActivity)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminGate(cfg.AdminCode))
		{
			admin.POST("/novels", adminHandler.CreateNovel)
			admin.POST("/shorts", adminHandler.CreateShorts)
			admin.GET("/novels/export", adminHandler.ExportNovelsCSV)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRedisClient(redisURL string, logger *zap.Logger) *redis.Client {
	if redisURL == "" {
		logger.Warn("REDIS_URL not set, rate limiting disabled")
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	return redis.NewClient(opts)
}

func newMeiliClient(host, masterKey string) meilisearch.ServiceManager {
	if host == "" {
		return nil
	}
	return meilisearch.New(host, meilisearch.WithAPIKey(masterKey))
}

func newMediaStorage(logger *zap.Logger) storage.MediaStorage {
	if os.Getenv("CLOUDINARY_URL") == "" {
		logger.Warn("CLOUDINARY_URL not set, media uploads disabled")
		return nil
	}
	media, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Fatal("failed to initialize cloudinary storage", zap.Error(err))
	}
	return media
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Novel{},
		&model.Shorts{},
		&model.Comment{},
		&model.ShortsLike{},
		&model.ShortsSave{},
		&model.CommentLike{},
		&model.UserActivityLog{},
	)
}
