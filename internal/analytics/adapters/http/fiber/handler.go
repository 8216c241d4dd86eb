package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
	"view-analytics-service/internal/analytics/core/usecase"
)

type GetBlogViewsUseCase interface {
	Execute(ctx context.Context, in usecase.BlogViewsInput) (domain.Page[domain.GroupRow], error)
}

type GetTopUseCase interface {
	Execute(ctx context.Context, in usecase.TopInput) (domain.Page[domain.RankRow], error)
}

type GetPerformanceUseCase interface {
	Execute(ctx context.Context, in usecase.PerformanceInput) (domain.Page[domain.SeriesRow], error)
}

type AnalyticsHandler struct {
	blogViews   GetBlogViewsUseCase
	top         GetTopUseCase
	performance GetPerformanceUseCase
	log         *zap.Logger
}

func NewAnalyticsHandler(blogViews GetBlogViewsUseCase, top GetTopUseCase, performance GetPerformanceUseCase, log *zap.Logger) *AnalyticsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyticsHandler{
		blogViews:   blogViews,
		top:         top,
		performance: performance,
		log:         log,
	}
}

// Register mounts the analytics routes on r.
func (h *AnalyticsHandler) Register(r fiber.Router) {
	g := r.Group("/analytics")
	g.Get("/blog-views", h.GetBlogViews)
	g.Get("/top", h.GetTop)
	g.Get("/performance", h.GetPerformance)
}

// GetBlogViews godoc
// @Summary Blog views grouped by location or viewer
// @Description Counts distinct blogs viewed (y) and total views (z) per group over the selected time range
// @Tags Analytics
// @Produce json
// @Param object_type query string true "Group by: location | actor (aliases: country | user)"
// @Param range query string false "Range: day | week | month | year | all" default(month)
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC 3339"
// @Param end_date query string false "Exclusive end, YYYY-MM-DD or RFC 3339"
// @Param filters query string false "JSON filter expression"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size, 1-100" default(10)
// @Success 200 {object} BlogViewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/blog-views [get]
func (h *AnalyticsHandler) GetBlogViews(c *fiber.Ctx) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	in := usecase.BlogViewsInput{
		ObjectType: c.Query("object_type"),
		Window:     windowParams(c),
		Filters:    []byte(c.Query("filters")),
		Page:       page,
	}

	res, err := h.blogViews.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toBlogViewsResponse(res))
}

// GetTop godoc
// @Summary Top 10 actors, locations or blogs by views
// @Description Actors are ranked by views of the blogs they own
// @Tags Analytics
// @Produce json
// @Param top query string true "Rank: actor | location | content (aliases: user | country | blog)"
// @Param range query string false "Range: day | week | month | year | all" default(all)
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC 3339"
// @Param end_date query string false "Exclusive end, YYYY-MM-DD or RFC 3339"
// @Param filters query string false "JSON filter expression"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size, 1-100" default(10)
// @Success 200 {object} TopResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/top [get]
func (h *AnalyticsHandler) GetTop(c *fiber.Ctx) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	in := usecase.TopInput{
		Top:     c.Query("top"),
		Window:  windowParams(c),
		Filters: []byte(c.Query("filters")),
		Page:    page,
	}

	res, err := h.top.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTopResponse(res))
}

// GetPerformance godoc
// @Summary Views per period with growth
// @Description Without bounds the window is the trailing 30 days, 12 weeks, 12 months or 3 years
// @Tags Analytics
// @Produce json
// @Param compare query string true "Granularity: day | week | month | year"
// @Param user_id query int false "Only count views of this user's blogs"
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC 3339"
// @Param end_date query string false "Exclusive end, YYYY-MM-DD or RFC 3339"
// @Param filters query string false "JSON filter expression"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size, 1-100" default(10)
// @Success 200 {object} PerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) GetPerformance(c *fiber.Ctx) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, &usecase.ValidationError{Param: "user_id", Value: raw, Err: usecase.ErrInvalidUserID})
		}
		userID = &id
	}

	in := usecase.PerformanceInput{
		Compare:   c.Query("compare"),
		UserID:    userID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Filters:   []byte(c.Query("filters")),
		Page:      page,
	}

	res, err := h.performance.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toPerformanceResponse(res))
}

func windowParams(c *fiber.Ctx) usecase.Window {
	return usecase.Window{
		Range:     c.Query("range"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

// pageParams parses page and page_size. Zero is reserved for "use the
// default", so an explicit 0 is rejected here.
func pageParams(c *fiber.Ctx) (usecase.PageRequest, error) {
	var p usecase.PageRequest
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			return p, &usecase.ValidationError{Param: "page", Value: raw, Err: usecase.ErrInvalidPage}
		}
		p.Page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			return p, &usecase.ValidationError{Param: "page_size", Value: raw, Err: usecase.ErrPageSizeOutOfBounds}
		}
		p.PageSize = n
	}
	return p, nil
}

func (h *AnalyticsHandler) fail(c *fiber.Ctx, err error) error {
	if usecase.IsInvalidInput(err) {
		return badRequest(c, err)
	}
	h.log.Error("Analytics request failed",
		zap.String("path", c.Path()),
		zap.String("request_id", requestID(c)),
		zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func badRequest(c *fiber.Ctx, err error) error {
	code := "invalid_parameter"
	var (
		fe *filter.Error
		te *timerange.Error
	)
	switch {
	case errors.As(err, &fe):
		code = "invalid_filter"
	case errors.As(err, &te):
		code = "invalid_time_range"
	}
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: err.Error(),
		Param:   usecase.InvalidParam(err),
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
