package models

import (
	"time"
)

// Shared status values for both record kinds.
const (
	StatusScheduled = "Scheduled"
	StatusPending   = "Pending"
	StatusRejected  = "Rejected"
	StatusCleared   = "Cleared"
)

// Statuses is the closed set of valid record statuses.
var Statuses = []string{StatusScheduled, StatusPending, StatusRejected, StatusCleared}

// InterviewTypes and JobTypes are the closed type sets per record kind.
var (
	InterviewTypes = []string{"Onsite", "Online"}
	JobTypes       = []string{"Full-time", "Part-time", "Remote", "Internship"}
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"size:50;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"size:100;not null" json:"-"`
}

// RecordMeta is the shape shared by jobs and interviews. Date and Time are
// stored as the client-submitted strings; display formatting happens at the
// response edge, never at rest.
type RecordMeta struct {
	Company  string `gorm:"size:50;not null" json:"company"`
	Position string `gorm:"size:50;not null" json:"position"`
	Status   string `gorm:"size:20;not null" json:"status"`
	Type     string `gorm:"size:20;not null" json:"type"`
	Date     string `gorm:"size:30;not null" json:"date"`
	Time     string `gorm:"size:5;not null" json:"time"`

	// Owner; every query over records is scoped by this column.
	CreatedBy uint `gorm:"index;not null" json:"createdBy"`
}

// Record is implemented by *Job and *Interview so the ownership-scoped
// data access layer can be written once.
type Record interface {
	GetID() uint
	Meta() *RecordMeta
	TypeSet() []string
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RecordMeta
}

func (j *Job) GetID() uint       { return j.ID }
func (j *Job) Meta() *RecordMeta { return &j.RecordMeta }
func (j *Job) TypeSet() []string { return JobTypes }

type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RecordMeta
}

func (i *Interview) GetID() uint       { return i.ID }
func (i *Interview) Meta() *RecordMeta { return &i.RecordMeta }
func (i *Interview) TypeSet() []string { return InterviewTypes }
