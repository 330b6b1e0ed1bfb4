package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/brandlab/positioning-api/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmitFunc delivers one stream event to the client. A non-nil error means
// nobody is listening anymore and the run must stop.
type EmitFunc func(event string, data any) error

type ProcessorUsecase struct {
	batches   *repository.BatchRepository
	textModel service.TextModel
}

func NewProcessorUsecase(batches *repository.BatchRepository, textModel service.TextModel) *ProcessorUsecase {
	return &ProcessorUsecase{batches: batches, textModel: textModel}
}

// CreateJob persists the job plus one pending item per submitted row.
// row_index is the position of the row in the submitted list.
func (uc *ProcessorUsecase) CreateJob(ctx context.Context, userID uuid.UUID, title *string, prompt string, rows []dto.BatchRow) (*model.BatchJob, error) {
	jobTitle := ""
	if title != nil {
		jobTitle = *title
	}
	if jobTitle == "" {
		jobTitle = "Batch " + time.Now().Format("2006-01-02")
	}

	job := &model.BatchJob{
		ID:     uuid.New(),
		UserID: userID,
		Title:  &jobTitle,
		Prompt: prompt,
		Status: model.BatchProcessing,
	}
	if err := uc.batches.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	items := make([]model.BatchItem, 0, len(rows))
	for i, row := range rows {
		items = append(items, model.BatchItem{
			BatchJobID: job.ID,
			RowIndex:   i,
			Question:   row.Question,
			Answer:     row.Answer,
			Status:     model.BatchPending,
		})
	}
	if err := uc.batches.CreateItems(ctx, items); err != nil {
		return nil, err
	}
	return job, nil
}

// Run processes the rows strictly in index order, one model call at a time.
// Interleaving on the stream is progress[i], result[i], progress[i+1], ...
// closed by exactly one done or error event. An emit failure (the client
// went away) aborts the loop and leaves the job failed.
func (uc *ProcessorUsecase) Run(ctx context.Context, job *model.BatchJob, rows []dto.BatchRow, emit EmitFunc) {
	total := len(rows)
	for i, row := range rows {
		if err := emit("progress", dto.ProgressEvent{Current: i + 1, Total: total, Question: row.Question}); err != nil {
			uc.abandon(ctx, job, i, err)
			return
		}

		prompt := fmt.Sprintf("%s\n\n---\nQuestion: %s\nAnswer: %s", job.Prompt, row.Question, row.Answer)
		processed, err := uc.textModel.GenerateText(ctx, prompt)
		if err != nil {
			uc.failWith(ctx, job, emit, err)
			return
		}

		if err := uc.batches.SetItemResult(ctx, job.ID, i, processed); err != nil {
			uc.failWith(ctx, job, emit, err)
			return
		}

		if err := emit("result", dto.ResultEvent{Index: i, Question: row.Question, Answer: row.Answer, Processed: processed}); err != nil {
			uc.abandon(ctx, job, i, err)
			return
		}
	}

	if err := uc.batches.SetJobStatus(ctx, job.ID, model.BatchCompleted); err != nil {
		uc.failWith(ctx, job, emit, err)
		return
	}
	_ = emit("done", dto.DoneEvent{JobID: job.ID.String(), TotalProcessed: total})
}

func (uc *ProcessorUsecase) GetJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) (*dto.JobWithItems, error) {
	job, err := uc.batches.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.UserID != userID {
		return nil, ErrNotFound
	}
	items, err := uc.batches.ListItems(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &dto.JobWithItems{Job: job, Items: items}, nil
}

func (uc *ProcessorUsecase) ListJobs(ctx context.Context, userID uuid.UUID) ([]model.BatchJob, error) {
	return uc.batches.ListJobsByUser(ctx, userID)
}

// failWith marks the job failed and sends the terminal error event.
func (uc *ProcessorUsecase) failWith(ctx context.Context, job *model.BatchJob, emit EmitFunc, cause error) {
	if err := uc.batches.SetJobStatus(ctx, job.ID, model.BatchFailed); err != nil {
		log.Printf("batch %s: mark failed: %v", job.ID, err)
	}
	_ = emit("error", dto.ErrorEvent{Error: cause.Error()})
}

// abandon handles a dead client: no more events can be delivered, so the
// job is marked failed and the loop stops consuming model calls.
func (uc *ProcessorUsecase) abandon(ctx context.Context, job *model.BatchJob, row int, cause error) {
	log.Printf("batch %s: client gone at row %d: %v", job.ID, row, cause)
	if err := uc.batches.SetJobStatus(ctx, job.ID, model.BatchFailed); err != nil {
		log.Printf("batch %s: mark failed: %v", job.ID, err)
	}
}
