package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ImportStatusProcessing = "processing"
	ImportStatusCompleted  = "completed"
	ImportStatusFailed     = "failed"
)

// ImportBatch records one committed statement import
type ImportBatch struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_import_batches_account" json:"account_id"`
	FileName         string     `gorm:"type:varchar(255)" json:"file_name"`
	Schema           string     `gorm:"type:varchar(50)" json:"schema"`
	Status           string     `gorm:"type:varchar(20);not null;default:'processing';index" json:"status"`
	RowCount         int        `gorm:"not null;default:0" json:"row_count"`
	Created          int        `gorm:"not null;default:0" json:"created"`
	Skipped          int        `gorm:"not null;default:0" json:"skipped"`
	Projected        int        `gorm:"not null;default:0" json:"projected"`
	Failed           int        `gorm:"not null;default:0" json:"failed"`
	ProjectedSkipped int        `gorm:"not null;default:0" json:"projected_skipped"`
	ErrorMessage     string     `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt        time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	CreatedAt        time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}

func (*ImportBatch) TableName() string {
	return "import_batches"
}

func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = ImportStatusProcessing
	}
	if b.StartedAt.IsZero() {
		b.StartedAt = time.Now()
	}
	return nil
}

// Duration returns how long the import ran, zero while it is still processing
func (b *ImportBatch) Duration() time.Duration {
	if b.FinishedAt == nil {
		return 0
	}
	return b.FinishedAt.Sub(b.StartedAt)
}

func (b *ImportBatch) IsFinished() bool {
	return b.Status == ImportStatusCompleted || b.Status == ImportStatusFailed
}
