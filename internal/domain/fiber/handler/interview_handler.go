package handler

import (
	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/interview", h.Create)
	api.Get("/interviews", h.List)
	api.Get("/interview/:id", h.Get)
	api.Patch("/interview/:id", h.Update)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	iv, err := h.uc.Create(c.Context(), currentUser(c))
	if err != nil {
		return usecaseError(c, err, "failed to create interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create interview",
		Data:    iv,
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	interviews, err := h.uc.List(c.Context(), currentUser(c))
	if err != nil {
		return usecaseError(c, err, "failed to list interviews")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get interviews",
		Data:    interviews,
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	}
	data, err := h.uc.Get(c.Context(), currentUser(c), id, currentIsAdmin(c))
	if err != nil {
		return usecaseError(c, err, "failed to get interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get interview",
		Data:    data,
	})
}

func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	}
	var req dto.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	iv, err := h.uc.Update(c.Context(), currentUser(c), id, &req)
	if err != nil {
		return usecaseError(c, err, "failed to update interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update interview",
		Data:    iv,
	})
}
