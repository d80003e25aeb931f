package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidationReport is one batch run: how many records came in and how many
// failed, with the per-record issues attached.
type ValidationReport struct {
	ID           string            `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Source       string            `json:"source" gorm:"not null"`
	TotalRecords int               `json:"total_records" gorm:"not null"`
	InvalidCount int               `json:"invalid_count" gorm:"not null"`
	Valid        bool              `json:"valid" gorm:"not null"`
	Issues       []ValidationIssue `json:"issues" gorm:"foreignKey:ReportID"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ValidationIssue is one invalid record. RecordIndex is the record's 1-based
// position within its batch; ReportID is null for issues raised by the
// streaming worker, which has no batch report.
type ValidationIssue struct {
	ID          string        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReportID    *string       `json:"report_id"`
	RecordIndex int           `json:"record_index" gorm:"not null"`
	Severity    IssueSeverity `json:"severity" gorm:"not null"`
	Explanation string        `json:"explanation" gorm:"not null"`
	IsResolved  bool          `json:"is_resolved" gorm:"default:false"`
	ResolvedAt  *time.Time    `json:"resolved_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type IssueSeverity string

const (
	IssueSeverityLow      IssueSeverity = "LOW"
	IssueSeverityMedium   IssueSeverity = "MEDIUM"
	IssueSeverityHigh     IssueSeverity = "HIGH"
	IssueSeverityCritical IssueSeverity = "CRITICAL"
)

func (r *ValidationReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

func (i *ValidationIssue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
