package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apptrackr/backend/internal/models"
)

// testDB opens a throwaway SQLite database with the full schema. The query
// builder sticks to portable SQL (LOWER ... LIKE) so the same code paths run
// here and on Postgres.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Interview{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func interviewService(t *testing.T) *RecordService[models.Interview, *models.Interview] {
	return NewRecordService[models.Interview, *models.Interview](testDB(t), "interview")
}

func validInterviewMeta() models.RecordMeta {
	return models.RecordMeta{
		Company:  "Acme",
		Position: "Engineer",
		Status:   models.StatusPending,
		Type:     "Onsite",
		Date:     "2024-01-10",
		Time:     "13:30",
	}
}

func mustCreate(t *testing.T, s *RecordService[models.Interview, *models.Interview], userID uint, mutate func(*models.RecordMeta)) *models.Interview {
	t.Helper()
	meta := validInterviewMeta()
	if mutate != nil {
		mutate(&meta)
	}
	rec, err := s.Create(userID, meta)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return rec
}
