package usecase

import (
	"context"
	"errors"

	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/brandlab/positioning-api/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("forbidden")
)

type InterviewUsecase struct {
	interviews *repository.InterviewRepository
	chatModel  service.ChatModel
}

func NewInterviewUsecase(interviews *repository.InterviewRepository, chatModel service.ChatModel) *InterviewUsecase {
	return &InterviewUsecase{interviews: interviews, chatModel: chatModel}
}

func (uc *InterviewUsecase) Create(ctx context.Context, userID uuid.UUID) (*model.Interview, error) {
	iv := &model.Interview{
		ID:     uuid.New(),
		UserID: userID,
		Status: model.InterviewInProgress,
	}
	if err := uc.interviews.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (uc *InterviewUsecase) List(ctx context.Context, userID uuid.UUID) ([]model.Interview, error) {
	return uc.interviews.ListByUser(ctx, userID)
}

// Get returns the interview with its transcript. Non-owners without the
// admin flag get a not-found, never a hint that the record exists.
func (uc *InterviewUsecase) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID, isAdmin bool) (*dto.InterviewWithMessages, error) {
	iv, err := uc.findOwned(ctx, userID, id, isAdmin)
	if err != nil {
		return nil, err
	}
	msgs, err := uc.interviews.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InterviewWithMessages{Interview: iv, Messages: msgs}, nil
}

// Update applies a partial update; fields absent from the request are left
// untouched, so repeated calls with the same body converge on the same row.
func (uc *InterviewUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateInterviewRequest) (*model.Interview, error) {
	if _, err := uc.findOwned(ctx, userID, id, false); err != nil {
		return nil, err
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return uc.interviews.FindByID(ctx, id)
	}
	return uc.interviews.PartialUpdate(ctx, id, updates)
}

// Respond forwards one turn to the chat model. When an interview id is
// given, the incoming message and the reply are appended to its transcript,
// in that order, after the model call succeeds.
func (uc *InterviewUsecase) Respond(ctx context.Context, userID uuid.UUID, interviewID *uuid.UUID, message string, history []dto.ChatTurn) (string, error) {
	if interviewID != nil {
		if _, err := uc.findOwned(ctx, userID, *interviewID, false); err != nil {
			return "", err
		}
	}

	turns := make([]service.Turn, 0, len(history))
	for _, t := range history {
		turns = append(turns, service.Turn{Role: t.Role, Content: t.Content})
	}

	reply, err := uc.chatModel.Chat(ctx, turns, message)
	if err != nil {
		return "", err
	}

	if interviewID != nil {
		userMsg := &model.InterviewMessage{InterviewID: *interviewID, Role: model.RoleUser, Content: message}
		if err := uc.interviews.InsertMessage(ctx, userMsg); err != nil {
			return "", err
		}
		modelMsg := &model.InterviewMessage{InterviewID: *interviewID, Role: model.RoleModel, Content: reply}
		if err := uc.interviews.InsertMessage(ctx, modelMsg); err != nil {
			return "", err
		}
	}

	return reply, nil
}

func (uc *InterviewUsecase) ListAllWithOwner(ctx context.Context, page, pageSize int) ([]repository.InterviewOwnerRow, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return uc.interviews.ListAllWithOwner(ctx, pageSize, (page-1)*pageSize)
}

// ExportData loads the interview and transcript for the export endpoint.
// Owners and admins may export; other callers get ErrForbidden.
func (uc *InterviewUsecase) ExportData(ctx context.Context, userID uuid.UUID, id uuid.UUID, isAdmin bool) (*model.Interview, []model.InterviewMessage, error) {
	iv, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if iv.UserID != userID && !isAdmin {
		return nil, nil, ErrForbidden
	}
	msgs, err := uc.interviews.ListMessages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return iv, msgs, nil
}

func (uc *InterviewUsecase) findOwned(ctx context.Context, userID uuid.UUID, id uuid.UUID, isAdmin bool) (*model.Interview, error) {
	iv, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if iv.UserID != userID && !isAdmin {
		return nil, ErrNotFound
	}
	return iv, nil
}
