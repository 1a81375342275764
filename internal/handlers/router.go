package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/apptrackr/backend/internal/auth"
	"github.com/apptrackr/backend/internal/middleware"
	"github.com/apptrackr/backend/internal/models"
	"github.com/apptrackr/backend/internal/services"
)

type RouterConfig struct {
	DB         *gorm.DB
	Auth       *auth.Manager
	DemoEmail  string
	CORSOrigin string
	Logger     zerolog.Logger

	// limiter for the unauthenticated auth routes; nil disables limiting
	AuthLimiter *middleware.RateLimiter
}

// NewRouter assembles the full API surface under /api/v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.SecureHeaders())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	users := services.NewUserService(cfg.DB)
	jobs := services.NewRecordService[models.Job, *models.Job](cfg.DB, "job")
	interviews := services.NewRecordService[models.Interview, *models.Interview](cfg.DB, "interview")

	authHandler := NewAuthHandler(users, cfg.Auth, cfg.DemoEmail)
	jobHandler := NewRecordHandler(jobs, "job", "jobs", "totalJobs")
	interviewHandler := NewRecordHandler(interviews, "interview", "interviews", "totalInterviews")

	gate := middleware.Authenticate(cfg.Auth)

	var limited gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.AuthLimiter != nil {
		limited = middleware.RateLimit(cfg.AuthLimiter)
	}

	api := r.Group("/api/v1")
	api.GET("/health", HealthCheck)

	authGrp := api.Group("/auth")
	authGrp.POST("/register", limited, authHandler.Register)
	authGrp.POST("/login", limited, authHandler.Login)
	authGrp.POST("/logout", authHandler.Logout)
	authGrp.GET("/info", gate, authHandler.Info)
	authGrp.PATCH("/updateUser", gate, middleware.RequireWritable(), authHandler.UpdateUser)
	authGrp.PATCH("/updatePassword", gate, middleware.RequireWritable(), authHandler.UpdatePassword)

	jobHandler.Register(api.Group("/jobs", gate))
	interviewHandler.Register(api.Group("/interviews", gate))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Route does not exist"})
	})
	return r
}
