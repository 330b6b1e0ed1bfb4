package handler

import (
	"time"

	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/middleware"
	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	uc *usecase.InterviewUsecase
}

func NewChatHandler(uc *usecase.InterviewUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/chat", middleware.RateLimiter(20, 1*time.Minute), h.Chat)
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Message == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Message is required",
		})
	}

	var interviewID *uuid.UUID
	if req.InterviewID != nil && *req.InterviewID != "" {
		id, err := uuid.Parse(*req.InterviewID)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "Invalid interview id",
			}, err)
		}
		interviewID = &id
	}

	reply, err := h.uc.Respond(c.Context(), currentUser(c), interviewID, req.Message, req.History)
	if err != nil {
		return usecaseError(c, err, "failed to generate reply")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success generate reply",
		Data:    dto.ChatResponse{Reply: reply},
	})
}
