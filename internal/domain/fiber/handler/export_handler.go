package handler

import (
	"github.com/brandlab/positioning-api/internal/export"
	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExportHandler struct {
	uc *usecase.InterviewUsecase
}

func NewExportHandler(uc *usecase.InterviewUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/export/:interviewId", h.Export)
}

func (h *ExportHandler) Export(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("interviewId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	}

	iv, msgs, err := h.uc.ExportData(c.Context(), currentUser(c), id, currentIsAdmin(c))
	if err != nil {
		return usecaseError(c, err, "failed to load interview for export")
	}

	wb, err := export.InterviewWorkbook(iv, msgs)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to build workbook",
		}, err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to write workbook",
		}, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(iv)+`"`)
	return c.Send(buf.Bytes())
}
