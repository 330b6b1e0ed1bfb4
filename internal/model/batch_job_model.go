package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	BatchPending    = "pending"
	BatchProcessing = "processing"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

type BatchJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Title     *string   `gorm:"type:varchar(255)" json:"title"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BatchJob) TableName() string { return "batch_jobs" }
