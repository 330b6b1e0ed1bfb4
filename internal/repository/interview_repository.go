package repository

import (
	"context"
	"time"

	"github.com/brandlab/positioning-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	var iv model.Interview
	err := r.db.WithContext(ctx).First(&iv, "id = ?", id).Error
	return &iv, err
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

// PartialUpdate applies only the given columns; absent columns stay as they
// are. updated_at is always bumped.
func (r *InterviewRepository) PartialUpdate(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Interview, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.WithContext(ctx).Model(&model.Interview{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *InterviewRepository) InsertMessage(ctx context.Context, m *model.InterviewMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListMessages returns a transcript in insert order. The autoincrement id,
// not the wall clock, is the ordering key.
func (r *InterviewRepository) ListMessages(ctx context.Context, interviewID uuid.UUID) ([]model.InterviewMessage, error) {
	var msgs []model.InterviewMessage
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("id ASC").
		Find(&msgs).Error
	return msgs, err
}

// ListAllWithOwner joins every interview against its owning profile for the
// admin overview. It returns the requested page plus the overall count.
func (r *InterviewRepository) ListAllWithOwner(ctx context.Context, limit, offset int) ([]InterviewOwnerRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Interview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []InterviewOwnerRow
	err := r.db.WithContext(ctx).Model(&model.Interview{}).
		Select("interviews.*, profiles.email AS owner_email, profiles.full_name AS owner_full_name").
		Joins("JOIN profiles ON profiles.id = interviews.user_id").
		Order("interviews.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

type InterviewOwnerRow struct {
	model.Interview
	OwnerEmail    string  `json:"owner_email"`
	OwnerFullName *string `json:"owner_full_name"`
}
