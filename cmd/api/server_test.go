package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	analyticsHttp "view-analytics-service/internal/analytics/adapters/http/fiber"
	"view-analytics-service/internal/analytics/adapters/memory"
	"view-analytics-service/internal/analytics/core/domain"
	analyticsUsecase "view-analytics-service/internal/analytics/core/usecase"
	"view-analytics-service/internal/telemetry"
	viewsHttp "view-analytics-service/internal/views/adapters/http/fiber"
	viewsDomain "view-analytics-service/internal/views/core/domain"
	viewsUsecase "view-analytics-service/internal/views/core/usecase"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	return f.err
}

type nopViewRepo struct{}

func (nopViewRepo) InsertView(ctx context.Context, v *viewsDomain.View) (bool, error) {
	return true, nil
}

func (nopViewRepo) InsertViews(ctx context.Context, views []viewsDomain.View) (int, error) {
	return len(views), nil
}

func newTestServer(t *testing.T, db pinger) *server {
	t.Helper()

	now := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	alice := domain.Actor{ID: 10, Username: "alice"}
	usa := domain.Location{ID: 1, Name: "USA", Code: "US"}
	post := domain.Content{ID: 100, Title: "Go Generics", Owner: alice, Location: usa}
	store := memory.NewEventStore(
		domain.Event{ID: 1, OccurredAt: now.Add(-time.Hour), Content: post, Actor: alice, Location: usa},
		domain.Event{ID: 2, OccurredAt: now.Add(-2 * time.Hour), Content: post, Actor: alice, Location: usa},
	)

	deps := analyticsUsecase.Deps{
		Reader: store,
		Clock:  analyticsUsecase.ClockFunc(func() time.Time { return now }),
	}
	return &server{
		log:     zap.NewNop(),
		metrics: telemetry.New(),
		db:      db,
		analytics: analyticsHttp.NewAnalyticsHandler(
			analyticsUsecase.NewGetBlogViewsUseCase(deps),
			analyticsUsecase.NewGetTopUseCase(deps),
			analyticsUsecase.NewGetPerformanceUseCase(deps),
			nil,
		),
		views: viewsHttp.NewViewHandler(viewsUsecase.NewRecordViewUseCase(nopViewRepo{}, nil, nil), nil),
	}
}

func TestServer_Healthz(t *testing.T) {
	app := newTestServer(t, &fakePinger{}).app()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = newTestServer(t, &fakePinger{err: errors.New("down")}).app()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_AnalyticsRouteEndToEnd(t *testing.T) {
	app := newTestServer(t, &fakePinger{}).app()

	params := url.Values{}
	params.Set("top", "user")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/analytics/top?"+params.Encode(), nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err, "request id should be a uuid")

	var body struct {
		Count   int `json:"count"`
		Results []struct {
			X string `json:"x"`
			Y string `json:"y"`
			Z int64  `json:"z"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "alice", body.Results[0].X)
	assert.Equal(t, "1", body.Results[0].Y)
	assert.EqualValues(t, 2, body.Results[0].Z)
}

func TestServer_RecoversFromPanics(t *testing.T) {
	srv := newTestServer(t, &fakePinger{})
	app := srv.app()
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/panic",status="500"} 1`)
}
