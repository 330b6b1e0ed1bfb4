package repository

import (
	"context"

	"github.com/brandlab/positioning-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

// Ensure inserts the profile if the subject has never been seen, otherwise
// returns the stored row. Email and name come from the token and are only
// written on first sight; is_admin is managed through the admin endpoints.
func (r *ProfileRepository) Ensure(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(p).Error
	if err != nil {
		return nil, err
	}
	var stored model.Profile
	if err := r.db.WithContext(ctx).First(&stored, "id = ?", p.ID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin).Error
}
