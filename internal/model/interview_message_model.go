package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// InterviewMessage is one turn of a transcript. Rows are append-only and
// ordered by the autoincrement id, so two turns written in the same
// millisecond still replay in insert order.
type InterviewMessage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	InterviewID uuid.UUID `gorm:"type:uuid;index;not null" json:"interview_id"`
	Role        string    `gorm:"type:varchar(16);not null" json:"role"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func (InterviewMessage) TableName() string { return "interview_messages" }
