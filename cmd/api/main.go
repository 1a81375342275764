package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/apptrackr/backend/internal/auth"
	"github.com/apptrackr/backend/internal/config"
	"github.com/apptrackr/backend/internal/database"
	"github.com/apptrackr/backend/internal/handlers"
	"github.com/apptrackr/backend/internal/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("configuration")
	}

	log := newLogger(cfg)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection")
	}
	log.Info().Msg("database connection established")

	authManager := auth.NewManager(cfg.JWTSecret, cfg.JWTLifetime, cfg.CookieSecure)

	// 10 requests per 15 minutes per IP on register/login
	authLimiter := middleware.NewRateLimiter(10, 15*time.Minute)
	defer authLimiter.Stop()

	gin.SetMode(gin.ReleaseMode)
	r := handlers.NewRouter(handlers.RouterConfig{
		DB:          db,
		Auth:        authManager,
		DemoEmail:   cfg.DemoUserEmail,
		CORSOrigin:  cfg.CORSOrigin,
		Logger:      log,
		AuthLimiter: authLimiter,
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.LogFormat == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
