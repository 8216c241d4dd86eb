package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"view-analytics-service/internal/views/core/domain"
	"view-analytics-service/internal/views/core/usecase"
)

type RecordViewUseCase interface {
	Execute(ctx context.Context, in usecase.RecordViewInput) (bool, error)
	BulkRecordViews(ctx context.Context, in usecase.BulkRecordViewsInput) (usecase.BulkRecordViewsResult, error)
}

type ViewHandler struct {
	uc  RecordViewUseCase
	log *zap.Logger
}

func NewViewHandler(uc RecordViewUseCase, log *zap.Logger) *ViewHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ViewHandler{uc: uc, log: log}
}

func (h *ViewHandler) Register(r fiber.Router) {
	r.Post("/views", h.CreateView)
	r.Post("/views/bulk", h.BulkCreateViews)
}

// CreateView godoc
// @Summary Record a blog view
// @Description Stores a single view; repeating the same view is idempotent
// @Tags Views
// @Accept json
// @Produce json
// @Param request body CreateViewRequest true "View payload"
// @Success 201 {object} CreateViewResponse
// @Success 200 {object} CreateViewResponse "Duplicate view"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views [post]
func (h *ViewHandler) CreateView(c *fiber.Ctx) error {
	var req CreateViewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.uc.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateViewResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateViewResponse{Status: "created"})
}

// BulkCreateViews godoc
// @Summary Bulk record blog views
// @Description Validates every view, then stores the batch in one statement
// @Tags Views
// @Accept json
// @Produce json
// @Param request body BulkCreateViewsRequest true "Bulk view payload"
// @Success 201 {object} BulkCreateViewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views/bulk [post]
func (h *ViewHandler) BulkCreateViews(c *fiber.Ctx) error {
	var req BulkCreateViewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	inputs := make([]usecase.RecordViewInput, len(req.Views))
	for i, v := range req.Views {
		inputs[i] = toInput(v)
	}

	result, err := h.uc.BulkRecordViews(c.UserContext(), usecase.BulkRecordViewsInput{Views: inputs})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateViewsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func toInput(req CreateViewRequest) usecase.RecordViewInput {
	in := usecase.RecordViewInput{
		BlogID:    req.BlogID,
		UserID:    req.UserID,
		CountryID: req.CountryID,
	}
	if req.ViewedAt != nil {
		in.ViewedAt = *req.ViewedAt
	}
	return in
}

func (h *ViewHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidView),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrBatchTooLong),
		errors.Is(err, domain.ErrUnknownReference):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_view",
			Message: err.Error(),
		})
	default:
		h.log.Error("Failed to record views", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
