package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/apptrackr/backend/internal/apierrors"
	"github.com/apptrackr/backend/internal/dtos"
	"github.com/apptrackr/backend/internal/models"
)

// RecordPtr constrains PT to "pointer to the record struct".
type RecordPtr[T any] interface {
	*T
	models.Record
}

// RecordService is the one data-access layer for both record kinds. Every
// query is scoped by created_by, and the id+owner lookup lives in a single
// place so an ownership mismatch is always indistinguishable from a missing
// row.
type RecordService[T any, PT RecordPtr[T]] struct {
	DB *gorm.DB

	// singular noun used in not-found messages ("job", "interview")
	name string
}

func NewRecordService[T any, PT RecordPtr[T]](db *gorm.DB, name string) *RecordService[T, PT] {
	return &RecordService[T, PT]{DB: db, name: name}
}

// scoped builds the filter predicate shared by the page query and the count.
func (s *RecordService[T, PT]) scoped(userID uint, q ListQuery) *gorm.DB {
	tx := s.DB.Model(new(T)).Where("created_by = ?", userID)
	if q.Status != "" && q.Status != "All" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Type != "" && q.Type != "All" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(company) LIKE ? OR LOWER(position) LIKE ?", pattern, pattern)
	}
	return tx
}

// List returns one page of matching records (date/time in display form), the
// total match count, and the page count.
func (s *RecordService[T, PT]) List(userID uint, q ListQuery) ([]dtos.RecordResponse, int64, int, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	var total int64
	if err := s.scoped(userID, q).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	tx := s.scoped(userID, q)
	switch q.Sort {
	case "Latest":
		tx = tx.Order("date DESC")
	case "a-z":
		tx = tx.Order("position ASC")
	}

	var recs []T
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&recs).Error; err != nil {
		return nil, 0, 0, err
	}

	out := make([]dtos.RecordResponse, 0, len(recs))
	for i := range recs {
		out = append(out, toDisplayResponse[T, PT](&recs[i]))
	}
	numOfPages := int(math.Ceil(float64(total) / float64(q.Limit)))
	return out, total, numOfPages, nil
}

// Create stores a validated record owned by userID, overriding any
// client-supplied owner.
func (s *RecordService[T, PT]) Create(userID uint, meta models.RecordMeta) (PT, error) {
	var rec T
	pt := PT(&rec)
	*pt.Meta() = meta
	pt.Meta().CreatedBy = userID

	if err := models.ValidateMeta(pt.Meta(), pt.TypeSet()); err != nil {
		var zero PT
		return zero, apierrors.BadRequest(err.Error())
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		var zero PT
		return zero, err
	}
	return pt, nil
}

// Get returns the record only if it exists and belongs to userID.
func (s *RecordService[T, PT]) Get(userID, id uint) (PT, error) {
	return s.findOwned(userID, id)
}

// Update applies a partial replacement and re-validates the whole record.
func (s *RecordService[T, PT]) Update(userID, id uint, req *dtos.UpdateRecordRequest) (PT, error) {
	var zero PT
	pt, err := s.findOwned(userID, id)
	if err != nil {
		return zero, err
	}

	req.Apply(pt.Meta())
	pt.Meta().CreatedBy = userID
	if err := models.ValidateMeta(pt.Meta(), pt.TypeSet()); err != nil {
		return zero, apierrors.BadRequest(err.Error())
	}
	if err := s.DB.Save(pt).Error; err != nil {
		return zero, err
	}
	return pt, nil
}

// Delete removes the record if owned by userID.
func (s *RecordService[T, PT]) Delete(userID, id uint) error {
	pt, err := s.findOwned(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(pt).Error
}

// Stats computes the per-status histogram and the 12 most recent monthly
// buckets over the caller's records.
func (s *RecordService[T, PT]) Stats(userID uint) (*dtos.StatsResponse, error) {
	var rows []models.RecordMeta
	err := s.DB.Model(new(T)).
		Select("status", "date").
		Where("created_by = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(rows))
	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, row.Status)
		if d, err := models.ParseDate(row.Date); err == nil {
			dates = append(dates, d)
		}
	}

	return &dtos.StatsResponse{
		DefaultStats:        ComputeStatusStats(statuses),
		MonthlyApplications: ComputeMonthlyStats(dates),
	}, nil
}

func (s *RecordService[T, PT]) findOwned(userID, id uint) (PT, error) {
	var rec T
	var zero PT
	err := s.DB.Where("id = ? AND created_by = ?", id, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, apierrors.NotFound(fmt.Sprintf("no %s with id %d", s.name, id))
	}
	if err != nil {
		return zero, err
	}
	return PT(&rec), nil
}

func toDisplayResponse[T any, PT RecordPtr[T]](rec *T) dtos.RecordResponse {
	pt := PT(rec)
	m := pt.Meta()
	return dtos.RecordResponse{
		ID:        pt.GetID(),
		Company:   m.Company,
		Position:  m.Position,
		Status:    m.Status,
		Type:      m.Type,
		Date:      FormatDisplayDate(m.Date),
		Time:      FormatDisplayTime(m.Time),
		CreatedBy: m.CreatedBy,
	}
}
