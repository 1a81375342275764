package dtos

import (
	"github.com/apptrackr/backend/internal/models"
)

// CreateRecordRequest covers both jobs and interviews; the enum sets differ
// per kind and are checked by models.ValidateMeta, not by binding tags.
// Any client-supplied owner field is ignored.
type CreateRecordRequest struct {
	Company  string `json:"company" binding:"required"`
	Position string `json:"position" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

func (r *CreateRecordRequest) Meta() models.RecordMeta {
	return models.RecordMeta{
		Company:  r.Company,
		Position: r.Position,
		Status:   r.Status,
		Type:     r.Type,
		Date:     r.Date,
		Time:     r.Time,
	}
}

// UpdateRecordRequest is a partial replacement: only non-nil fields are
// applied, then the whole record is re-validated.
type UpdateRecordRequest struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
	Type     *string `json:"type"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
}

// Apply copies the provided fields onto m.
func (r *UpdateRecordRequest) Apply(m *models.RecordMeta) {
	if r.Company != nil {
		m.Company = *r.Company
	}
	if r.Position != nil {
		m.Position = *r.Position
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
	if r.Date != nil {
		m.Date = *r.Date
	}
	if r.Time != nil {
		m.Time = *r.Time
	}
}

// RecordResponse is a list entry with date/time in display form.
type RecordResponse struct {
	ID        uint   `json:"id"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedBy uint   `json:"createdBy"`
}

// StatusStats always carries all four statuses, absent ones as zero.
type StatusStats struct {
	Pending   int `json:"Pending"`
	Rejected  int `json:"Rejected"`
	Cleared   int `json:"Cleared"`
	Scheduled int `json:"Scheduled"`
}

// MonthlyCount is one month bucket, labelled like "Jan 2024".
type MonthlyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	DefaultStats        StatusStats    `json:"defaultStats"`
	MonthlyApplications []MonthlyCount `json:"monthlyApplications"`
}
