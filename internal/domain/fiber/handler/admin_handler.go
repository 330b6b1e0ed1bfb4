package handler

import (
	"github.com/brandlab/positioning-api/internal/middleware"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/brandlab/positioning-api/internal/response"
	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	interviews *usecase.InterviewUsecase
	profiles   *repository.ProfileRepository
}

func NewAdminHandler(interviews *usecase.InterviewUsecase, profiles *repository.ProfileRepository) *AdminHandler {
	return &AdminHandler{interviews: interviews, profiles: profiles}
}

func (h *AdminHandler) RegisterRoutes(api fiber.Router) {
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Get("/interviews", h.Interviews)
	admin.Get("/users", h.Users)
	admin.Patch("/users/:id", h.SetUserAdmin)
}

func (h *AdminHandler) Interviews(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	rows, total, err := h.interviews.ListAllWithOwner(c.Context(), page, pageSize)
	if err != nil {
		return usecaseError(c, err, "failed to list interviews")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get interviews",
		Data:       rows,
		Pagination: response.NewPagination(page, pageSize, total),
	})
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	profiles, err := h.profiles.List(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list users",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get users",
		Data:    profiles,
	})
}

func (h *AdminHandler) SetUserAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	}
	var req struct {
		IsAdmin *bool `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsAdmin == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "is_admin is required",
		}, err)
	}
	if err := h.profiles.SetAdmin(c.Context(), id, *req.IsAdmin); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to update user",
		}, err)
	}
	profile, err := h.profiles.FindByID(c.Context(), id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load user",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update user",
		Data:    profile,
	})
}
