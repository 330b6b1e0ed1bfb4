package handler

import (
	"bufio"
	"context"
	"time"

	"github.com/brandlab/positioning-api/internal/dto"
	"github.com/brandlab/positioning-api/internal/middleware"
	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type ProcessorHandler struct {
	uc *usecase.ProcessorUsecase
}

func NewProcessorHandler(uc *usecase.ProcessorUsecase) *ProcessorHandler {
	return &ProcessorHandler{uc: uc}
}

func (h *ProcessorHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/processor", middleware.RateLimiter(5, 1*time.Minute), h.Process)
	api.Post("/processor/parse", h.Parse)
	api.Get("/processor/jobs", h.Jobs)
	api.Get("/processor/jobs/:id", h.Job)
}

// Process validates and persists the job, then streams row-by-row progress
// as server-sent events. Validation failures are plain JSON errors; once
// streaming starts, failures arrive as a terminal error event instead.
func (h *ProcessorHandler) Process(c *fiber.Ctx) error {
	var req dto.ProcessorRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Prompt == "" || len(req.Rows) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Prompt and rows are required",
		})
	}

	job, err := h.uc.CreateJob(c.Context(), currentUser(c), req.Title, req.Prompt, req.Rows)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create batch job",
		}, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	// The Fiber ctx is recycled once this handler returns, so the stream
	// closure must not touch c. Everything it needs is captured here.
	uc := h.uc
	rows := req.Rows
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		sse := util.NewSSEWriter(w)
		uc.Run(context.Background(), job, rows, sse.Emit)
	}))
	return nil
}

// Parse converts raw pasted CSV/TSV text into rows without creating a job.
func (h *ProcessorHandler) Parse(c *fiber.Ctx) error {
	rows := util.ParseBatchRows(string(c.Body()))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success parse rows",
		Data:    fiber.Map{"rows": rows},
	})
}

func (h *ProcessorHandler) Jobs(c *fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context(), currentUser(c))
	if err != nil {
		return usecaseError(c, err, "failed to list batch jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get batch jobs",
		Data:    jobs,
	})
}

func (h *ProcessorHandler) Job(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	}
	data, err := h.uc.GetJob(c.Context(), currentUser(c), id)
	if err != nil {
		return usecaseError(c, err, "failed to get batch job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get batch job",
		Data:    data,
	})
}
