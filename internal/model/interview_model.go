package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
)

// StartTriggerMessage is the sentinel the client sends to open a session
// without a real user utterance. It is hidden from transcripts and exports.
const StartTriggerMessage = "Iniciar entrevista"

type Interview struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Title           *string    `gorm:"type:varchar(255)" json:"title"`
	Status          string     `gorm:"type:varchar(50);not null;default:in_progress" json:"status"`
	IdentifierLabel *string    `gorm:"type:varchar(100)" json:"identifier_label"`
	IdentifierValue *string    `gorm:"type:varchar(255)" json:"identifier_value"`
	Sector          *string    `gorm:"type:varchar(100)" json:"sector"`
	BrandType       *string    `gorm:"type:varchar(50)" json:"brand_type"`
	CurrentStage    *string    `gorm:"type:varchar(100)" json:"current_stage"`
	Synthesis       *Synthesis `gorm:"type:jsonb" json:"synthesis"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Interview) TableName() string { return "interviews" }

// Synthesis is the consolidated output of a completed interview. It is a
// closed structure rather than a free map so the export transform is total.
type Synthesis struct {
	BrandKey             map[string]string `json:"brand_key,omitempty"`
	PositioningStatement string            `json:"positioning_statement,omitempty"`
	Variations           *Variations       `json:"variations,omitempty"`
	UVP                  string            `json:"uvp,omitempty"`
	Decisions            map[string]string `json:"decisions,omitempty"`
	ContinuitySummary    map[string]string `json:"continuity_summary,omitempty"`
}

// Variations are the three stylistic renderings of the positioning statement.
type Variations struct {
	Precise string `json:"precise,omitempty"`
	Bold    string `json:"bold,omitempty"`
	Premium string `json:"premium,omitempty"`
}

func (s Synthesis) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Synthesis) Scan(value any) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Synthesis", value)
	}
	return json.Unmarshal(data, s)
}
