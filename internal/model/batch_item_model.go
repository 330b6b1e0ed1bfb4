package model

import (
	"time"

	"github.com/google/uuid"
)

// BatchItem is one (question, answer) row within a job. RowIndex matches
// the position of the row in the submitted list; the unique index on
// (batch_job_id, row_index) lets results be written back by that pair.
type BatchItem struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchJobID      uuid.UUID `gorm:"type:uuid;not null;index:uniq_batch_item_row,unique,priority:1" json:"batch_job_id"`
	RowIndex        int       `gorm:"not null;index:uniq_batch_item_row,unique,priority:2" json:"row_index"`
	Question        string    `gorm:"type:text;not null" json:"question"`
	Answer          string    `gorm:"type:text;not null" json:"answer"`
	ProcessedAnswer *string   `gorm:"type:text" json:"processed_answer"`
	Status          string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (BatchItem) TableName() string { return "batch_items" }
