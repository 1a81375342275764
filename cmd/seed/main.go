// Command seed loads mock interview data for a user, for local development
// and demo accounts.
//
//	go run ./cmd/seed -file mock-data.json -email demo@example.com
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/apptrackr/backend/internal/config"
	"github.com/apptrackr/backend/internal/database"
	"github.com/apptrackr/backend/internal/models"
)

func main() {
	file := flag.String("file", "mock-data.json", "JSON array of records to load")
	email := flag.String("email", "", "owner of the seeded records")
	flag.Parse()

	_ = godotenv.Load()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	if *email == "" {
		log.Fatal().Msg("-email is required")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection")
	}

	var owner models.User
	if err := db.Where("email = ?", *email).First(&owner).Error; err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("owner lookup")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("read mock data")
	}

	var metas []models.RecordMeta
	if err := json.Unmarshal(raw, &metas); err != nil {
		log.Fatal().Err(err).Msg("parse mock data")
	}

	loaded := 0
	for _, meta := range metas {
		meta.CreatedBy = owner.ID
		if err := models.ValidateMeta(&meta, models.InterviewTypes); err != nil {
			log.Warn().Err(err).Msg("skipping invalid record")
			continue
		}
		rec := models.Interview{RecordMeta: meta}
		if err := db.Create(&rec).Error; err != nil {
			log.Fatal().Err(err).Msg("insert record")
		}
		loaded++
	}
	log.Info().Int("records", loaded).Msg("seed complete")
}
