package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"view-analytics-service/internal/views/core/domain"
	"view-analytics-service/internal/views/core/usecase"
)

type fakeRecordViewUseCase struct {
	ExecuteFunc   func(ctx context.Context, in usecase.RecordViewInput) (bool, error)
	BulkFunc      func(ctx context.Context, in usecase.BulkRecordViewsInput) (usecase.BulkRecordViewsResult, error)
	LastInput     usecase.RecordViewInput
	LastBulkInput usecase.BulkRecordViewsInput
}

func (f *fakeRecordViewUseCase) Execute(ctx context.Context, in usecase.RecordViewInput) (bool, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeRecordViewUseCase) BulkRecordViews(ctx context.Context, in usecase.BulkRecordViewsInput) (usecase.BulkRecordViewsResult, error) {
	f.LastBulkInput = in
	if f.BulkFunc != nil {
		return f.BulkFunc(ctx, in)
	}
	return usecase.BulkRecordViewsResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc RecordViewUseCase) *fiber.App {
	app := fiber.New()
	NewViewHandler(uc, nil).Register(app)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	var respJSON map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	return resp, respJSON
}

func TestCreateView_Created(t *testing.T) {
	at := time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)
	fakeUC := &fakeRecordViewUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.RecordViewInput) (bool, error) {
			return true, nil
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/views", CreateViewRequest{
		BlogID: 100, UserID: 11, CountryID: 2, ViewedAt: &at,
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusCreated, resp.StatusCode, body)
	}
	if body["status"] != "created" {
		t.Errorf("expected status=created, got %v", body["status"])
	}
	if in := fakeUC.LastInput; in.BlogID != 100 || in.UserID != 11 || in.CountryID != 2 || !in.ViewedAt.Equal(at) {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestCreateView_DuplicateWithoutTimestamp(t *testing.T) {
	fakeUC := &fakeRecordViewUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/views", `{"blog_id":1,"user_id":2,"country_id":3}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", body["status"])
	}
	if !fakeUC.LastInput.ViewedAt.IsZero() {
		t.Errorf("expected zero viewed_at to be passed through, got %s", fakeUC.LastInput.ViewedAt)
	}
}

func TestCreateView_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid json", `{"blog_id":`, nil, http.StatusBadRequest, "invalid_json"},
		{"invalid view", `{"blog_id":0}`, usecase.ErrInvalidView, http.StatusBadRequest, "invalid_view"},
		{"future", `{"blog_id":1,"user_id":2,"country_id":3}`, usecase.ErrFutureTime, http.StatusBadRequest, "invalid_view"},
		{"unknown blog", `{"blog_id":9,"user_id":2,"country_id":3}`, fmt.Errorf("%w: fk", domain.ErrUnknownReference), http.StatusBadRequest, "invalid_view"},
		{"db", `{"blog_id":1,"user_id":2,"country_id":3}`, errors.New("db down"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeUC := &fakeRecordViewUseCase{
				ExecuteFunc: func(ctx context.Context, in usecase.RecordViewInput) (bool, error) {
					return false, tt.err
				},
			}
			app := setupTestApp(fakeUC)

			resp, body := doRequest(t, app, http.MethodPost, "/views", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if body["error"] != tt.wantError {
				t.Errorf("expected error=%s, got %v", tt.wantError, body["error"])
			}
		})
	}
}

func TestBulkCreateViews_Success(t *testing.T) {
	fakeUC := &fakeRecordViewUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkRecordViewsInput) (usecase.BulkRecordViewsResult, error) {
			return usecase.BulkRecordViewsResult{Created: 1, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/views/bulk",
		`{"views":[{"blog_id":1,"user_id":2,"country_id":3},{"blog_id":1,"user_id":2,"country_id":3,"viewed_at":"2024-02-10T08:30:00Z"}]}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	if body["created"] != 1.0 || body["duplicates"] != 1.0 {
		t.Errorf("unexpected body: %v", body)
	}
	if got := len(fakeUC.LastBulkInput.Views); got != 2 {
		t.Fatalf("expected 2 views, got %d", got)
	}
	if fakeUC.LastBulkInput.Views[1].ViewedAt.IsZero() {
		t.Errorf("expected viewed_at to be parsed")
	}
}

func TestBulkCreateViews_EmptyBatch(t *testing.T) {
	fakeUC := &fakeRecordViewUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkRecordViewsInput) (usecase.BulkRecordViewsResult, error) {
			return usecase.BulkRecordViewsResult{}, usecase.ErrEmptyBatch
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/views/bulk", `{"views":[]}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "invalid_view" {
		t.Errorf("expected error=invalid_view, got %v", body["error"])
	}
}
