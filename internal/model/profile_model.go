package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors an account at the hosted auth provider. The row is
// created lazily the first time a token for that subject is seen.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	FullName  *string   `gorm:"type:varchar(255)" json:"full_name"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
