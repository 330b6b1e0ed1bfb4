package repository

import (
	"context"
	"time"

	"github.com/brandlab/positioning-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db}
}

func (r *BatchRepository) CreateJob(ctx context.Context, job *model.BatchJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *BatchRepository) CreateItems(ctx context.Context, items []model.BatchItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *BatchRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*model.BatchJob, error) {
	var j model.BatchJob
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

func (r *BatchRepository) ListJobsByUser(ctx context.Context, userID uuid.UUID) ([]model.BatchJob, error) {
	var jobs []model.BatchJob
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *BatchRepository) ListItems(ctx context.Context, jobID uuid.UUID) ([]model.BatchItem, error) {
	var items []model.BatchItem
	err := r.db.WithContext(ctx).
		Where("batch_job_id = ?", jobID).
		Order("row_index ASC").
		Find(&items).Error
	return items, err
}

// SetItemResult writes the processed text against (job, row index). The
// unique index on that pair makes the addressed update safe under the
// single-writer-per-job assumption.
func (r *BatchRepository) SetItemResult(ctx context.Context, jobID uuid.UUID, rowIndex int, processed string) error {
	return r.db.WithContext(ctx).Model(&model.BatchItem{}).
		Where("batch_job_id = ? AND row_index = ?", jobID, rowIndex).
		Updates(map[string]any{
			"processed_answer": processed,
			"status":           model.BatchCompleted,
		}).Error
}

func (r *BatchRepository) SetJobStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.BatchJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
