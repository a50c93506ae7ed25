package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/database"
	"travel-vote-api/internal/handler"
	"travel-vote-api/internal/metrics"
	"travel-vote-api/internal/middleware"
	"travel-vote-api/internal/repository"
	"travel-vote-api/internal/service"
	"travel-vote-api/internal/storage"
)

const serviceName = "travel-vote-api"

// TokenManager issues and verifies access tokens
type TokenManager interface {
	service.TokenIssuer
	middleware.TokenParser
}

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	BasePath       string
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer // nil serves the default registry
	Storage        storage.FileStorage
	MediaRoot      string // served under MediaPath when set (local driver)
	MediaPath      string
	MaxUploadSize  int64
	Tokens         TokenManager
	Admins         service.AdminPolicy
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	metricsHandler := promhttp.Handler()
	if cfg.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), cfg.DB, 2*time.Second); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MediaRoot != "" {
		mediaPath := cfg.MediaPath
		if mediaPath == "" {
			mediaPath = "/media"
		}
		r.Static(mediaPath, cfg.MediaRoot)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	accommodationRepo := repository.NewAccommodationRepository(cfg.DB)
	imageRepo := repository.NewImageRepository(cfg.DB)
	voteRepo := repository.NewVoteRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, voteRepo, commentRepo, cfg.Admins, cfg.Tokens, cfg.Metrics, cfg.Logger)
	accommodationService := service.NewAccommodationService(accommodationRepo, imageRepo, voteRepo, cfg.Storage, cfg.MaxUploadSize, cfg.Metrics, cfg.Logger)
	voteService := service.NewVoteService(voteRepo, userRepo, accommodationRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, userRepo, accommodationRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	accommodationHandler := handler.NewAccommodationHandler(accommodationService)
	voteHandler := handler.NewVoteHandler(voteService)
	commentHandler := handler.NewCommentHandler(commentService)

	requireAuth := middleware.Auth(cfg.Tokens)
	requireAdmin := middleware.RequireAdmin(cfg.Tokens)

	api := r.Group(cfg.BasePath)

	// Also expose metrics under the base path for ingress setups that only route it
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// ============================================================
	// User routes
	// ============================================================
	users := api.Group("/users")
	{
		users.GET("/", userHandler.ListUsers)
		users.POST("/", userHandler.RegisterUser)
		users.POST("/login/", userHandler.Login)
		users.GET("/stats/", userHandler.GetUserStats)
		users.GET("/:id/", userHandler.GetUser)
		users.PUT("/:id/", requireAuth, userHandler.UpdateUser)
		users.PATCH("/:id/", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id/", requireAdmin, userHandler.DeleteUser)
		users.GET("/:id/check-admin/", userHandler.CheckAdmin)
		users.GET("/:id/activity/", userHandler.GetUserActivity)
		users.GET("/:id/votes/", voteHandler.ListVotesByUser)
		users.GET("/:id/comments/", commentHandler.ListCommentsByUser)
	}

	// ============================================================
	// Accommodation routes
	// ============================================================
	accommodations := api.Group("/accommodations")
	{
		accommodations.GET("/", accommodationHandler.ListAccommodations)
		accommodations.POST("/", requireAdmin, accommodationHandler.CreateAccommodation)
		accommodations.GET("/stats/", accommodationHandler.GetAccommodationStats)
		accommodations.GET("/popular/", accommodationHandler.GetPopularAccommodations)
		accommodations.DELETE("/images/:id/", requireAdmin, accommodationHandler.DeleteImage)
		accommodations.GET("/:id/", accommodationHandler.GetAccommodation)
		accommodations.PUT("/:id/", requireAdmin, accommodationHandler.UpdateAccommodation)
		accommodations.PATCH("/:id/", requireAdmin, accommodationHandler.UpdateAccommodation)
		accommodations.DELETE("/:id/", requireAdmin, accommodationHandler.DeleteAccommodation)
		accommodations.GET("/:id/images/", accommodationHandler.ListImages)
		accommodations.POST("/:id/images/upload/", requireAdmin, accommodationHandler.UploadImage)
		accommodations.GET("/:id/votes/", voteHandler.ListVotesByAccommodation)
		accommodations.GET("/:id/comments/", commentHandler.ListCommentsByAccommodation)
	}

	// ============================================================
	// Vote routes
	// ============================================================
	votes := api.Group("/votes")
	{
		votes.GET("/", voteHandler.ListVotes)
		votes.POST("/", voteHandler.CastVote)
		votes.GET("/stats/", voteHandler.GetVoteStats)
		votes.GET("/:id/", voteHandler.GetVote)
		votes.PUT("/:id/", voteHandler.UpdateVote)
		votes.PATCH("/:id/", voteHandler.UpdateVote)
		votes.DELETE("/:id/", voteHandler.DeleteVote)
	}

	// ============================================================
	// Comment routes
	// ============================================================
	comments := api.Group("/comments")
	{
		comments.GET("/", commentHandler.ListComments)
		comments.POST("/", commentHandler.CreateComment)
		comments.GET("/stats/", commentHandler.GetCommentStats)
		comments.GET("/:id/", commentHandler.GetComment)
		comments.PUT("/:id/", commentHandler.UpdateComment)
		comments.PATCH("/:id/", commentHandler.UpdateComment)
		comments.DELETE("/:id/", commentHandler.DeleteComment)
	}

	return r
}
