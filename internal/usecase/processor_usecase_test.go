package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scriptedTextModel struct {
	prompts []string
	failAt  int // 1-based call number that errors, 0 for never
}

func (m *scriptedTextModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.failAt != 0 && len(m.prompts) == m.failAt {
		return "", errors.New("model unavailable")
	}
	return fmt.Sprintf("processed %d", len(m.prompts)), nil
}

type capturedEvent struct {
	name string
	data any
}

func collectEvents(events *[]capturedEvent) EmitFunc {
	return func(event string, data any) error {
		*events = append(*events, capturedEvent{name: event, data: data})
		return nil
	}
}

func newProcessorFixture(t *testing.T, failAt int) (*ProcessorUsecase, *scriptedTextModel, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	tm := &scriptedTextModel{failAt: failAt}
	uc := NewProcessorUsecase(repository.NewBatchRepository(db), tm)
	return uc, tm, db
}

var sampleRows = []dto.BatchRow{
	{Question: "Qual seu publico?", Answer: "Jovens urbanos"},
	{Question: "Qual seu diferencial?", Answer: "Entrega rapida"},
}

func TestCreateJobPersistsPendingItems(t *testing.T) {
	uc, _, db := newProcessorFixture(t, 0)
	userID := uuid.New()

	job, err := uc.CreateJob(context.Background(), userID, nil, "Resuma:", sampleRows)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if job.Status != model.BatchProcessing {
		t.Fatalf("job status = %q, want processing", job.Status)
	}
	if job.Title == nil || !strings.HasPrefix(*job.Title, "Batch ") {
		t.Fatalf("default title not applied: %v", job.Title)
	}

	var items []model.BatchItem
	if err := db.Where("batch_job_id = ?", job.ID).Order("row_index ASC").Find(&items).Error; err != nil {
		t.Fatalf("query items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, item := range items {
		if item.RowIndex != i {
			t.Errorf("item %d has row_index %d", i, item.RowIndex)
		}
		if item.Status != model.BatchPending {
			t.Errorf("item %d status = %q, want pending", i, item.Status)
		}
		if item.ProcessedAnswer != nil {
			t.Errorf("item %d already has a processed answer", i)
		}
	}
}

func TestRunEmitsInOrderAndPersistsResults(t *testing.T) {
	uc, tm, db := newProcessorFixture(t, 0)
	job, err := uc.CreateJob(context.Background(), uuid.New(), nil, "Resuma:", sampleRows)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	var events []capturedEvent
	uc.Run(context.Background(), job, sampleRows, collectEvents(&events))

	wantOrder := []string{"progress", "result", "progress", "result", "done"}
	if len(events) != len(wantOrder) {
		t.Fatalf("expected %d events, got %d: %+v", len(wantOrder), len(events), events)
	}
	for i, name := range wantOrder {
		if events[i].name != name {
			t.Errorf("event %d = %q, want %q", i, events[i].name, name)
		}
	}

	first := events[0].data.(dto.ProgressEvent)
	if first.Current != 1 || first.Total != 2 || first.Question != sampleRows[0].Question {
		t.Errorf("bad first progress event: %+v", first)
	}
	res := events[1].data.(dto.ResultEvent)
	if res.Index != 0 || res.Processed == "" {
		t.Errorf("bad first result event: %+v", res)
	}
	done := events[4].data.(dto.DoneEvent)
	if done.JobID != job.ID.String() || done.TotalProcessed != 2 {
		t.Errorf("bad done event: %+v", done)
	}

	// prompt frame wraps the job prompt around each row
	want := fmt.Sprintf("Resuma:\n\n---\nQuestion: %s\nAnswer: %s", sampleRows[0].Question, sampleRows[0].Answer)
	if tm.prompts[0] != want {
		t.Errorf("prompt frame mismatch:\n got %q\nwant %q", tm.prompts[0], want)
	}

	var items []model.BatchItem
	db.Where("batch_job_id = ?", job.ID).Order("row_index ASC").Find(&items)
	for i, item := range items {
		emitted := events[i*2+1].data.(dto.ResultEvent)
		if item.ProcessedAnswer == nil || *item.ProcessedAnswer != emitted.Processed {
			t.Errorf("item %d persisted answer differs from streamed one", i)
		}
		if item.Status != model.BatchCompleted {
			t.Errorf("item %d status = %q, want completed", i, item.Status)
		}
	}

	stored, _ := uc.batches.FindJobByID(context.Background(), job.ID)
	if stored.Status != model.BatchCompleted {
		t.Fatalf("job status = %q, want completed", stored.Status)
	}
}

func TestRunModelFailureMarksJobFailed(t *testing.T) {
	uc, _, _ := newProcessorFixture(t, 2)
	job, err := uc.CreateJob(context.Background(), uuid.New(), nil, "Resuma:", sampleRows)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	var events []capturedEvent
	uc.Run(context.Background(), job, sampleRows, collectEvents(&events))

	last := events[len(events)-1]
	if last.name != "error" {
		t.Fatalf("expected terminal error event, got %q", last.name)
	}
	if msg := last.data.(dto.ErrorEvent).Error; msg == "" {
		t.Fatal("error event carries no message")
	}
	for _, ev := range events {
		if ev.name == "done" {
			t.Fatal("done must not follow a failure")
		}
	}

	stored, _ := uc.batches.FindJobByID(context.Background(), job.ID)
	if stored.Status != model.BatchFailed {
		t.Fatalf("job status = %q, want failed", stored.Status)
	}
}

func TestRunStopsWhenClientDisconnects(t *testing.T) {
	uc, tm, _ := newProcessorFixture(t, 0)
	job, err := uc.CreateJob(context.Background(), uuid.New(), nil, "Resuma:", sampleRows)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	// the second emit (first result) fails, as a closed connection would
	var emits int
	uc.Run(context.Background(), job, sampleRows, func(event string, data any) error {
		emits++
		if emits >= 2 {
			return errors.New("connection closed")
		}
		return nil
	})

	if len(tm.prompts) != 1 {
		t.Fatalf("expected processing to stop after the dead emit, got %d model calls", len(tm.prompts))
	}
	stored, _ := uc.batches.FindJobByID(context.Background(), job.ID)
	if stored.Status != model.BatchFailed {
		t.Fatalf("job status = %q, want failed", stored.Status)
	}
}

func TestGetJobHidesOtherUsersJobs(t *testing.T) {
	uc, _, _ := newProcessorFixture(t, 0)
	owner := uuid.New()
	job, err := uc.CreateJob(context.Background(), owner, nil, "Resuma:", sampleRows)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	if _, err := uc.GetJob(context.Background(), uuid.New(), job.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got %v", err)
	}
	data, err := uc.GetJob(context.Background(), owner, job.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(data.Items))
	}
	if data.Items[0].RowIndex != 0 || data.Items[1].RowIndex != 1 {
		t.Fatal("items not ordered by row_index")
	}
}
