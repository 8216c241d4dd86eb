package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"view-analytics-service/internal/views/core/domain"
	"view-analytics-service/internal/views/core/ports"
)

var (
	ErrInvalidView  = errors.New("blog_id, user_id and country_id must be positive")
	ErrFutureTime   = errors.New("viewed_at cannot be in the future")
	ErrEmptyBatch   = errors.New("views list is required")
	ErrBatchTooLong = errors.New("too many views in one batch")
)

// MaxBatch bounds a bulk request.
const MaxBatch = 1000

type RecordViewUseCase struct {
	repo ports.ViewRepositoryPort
	now  func() time.Time
	log  *zap.Logger
}

func NewRecordViewUseCase(repo ports.ViewRepositoryPort, now func() time.Time, log *zap.Logger) *RecordViewUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordViewUseCase{repo: repo, now: now, log: log}
}

type RecordViewInput struct {
	BlogID    int64
	UserID    int64
	CountryID int64
	// ViewedAt defaults to the current time when zero.
	ViewedAt time.Time
}

func (uc *RecordViewUseCase) Execute(ctx context.Context, in RecordViewInput) (bool, error) {
	v, err := uc.build(in, uc.now())
	if err != nil {
		return false, err
	}

	created, err := uc.repo.InsertView(ctx, &v)
	if err != nil {
		return false, err
	}

	if !created {
		uc.log.Debug("Duplicate view ignored", zap.String("dedupe_key", v.DedupeKey))
	}
	return created, nil
}

type BulkRecordViewsInput struct {
	Views []RecordViewInput
}

type BulkRecordViewsResult struct {
	Created    int
	Duplicates int
}

// BulkRecordViews validates every view before writing any of them.
func (uc *RecordViewUseCase) BulkRecordViews(ctx context.Context, in BulkRecordViewsInput) (BulkRecordViewsResult, error) {
	var res BulkRecordViewsResult

	if len(in.Views) == 0 {
		return res, ErrEmptyBatch
	}
	if len(in.Views) > MaxBatch {
		return res, fmt.Errorf("%w: %d > %d", ErrBatchTooLong, len(in.Views), MaxBatch)
	}

	now := uc.now()
	views := make([]domain.View, 0, len(in.Views))
	for i, item := range in.Views {
		v, err := uc.build(item, now)
		if err != nil {
			return res, fmt.Errorf("views[%d]: %w", i, err)
		}
		views = append(views, v)
	}

	created, err := uc.repo.InsertViews(ctx, views)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = len(views) - created
	uc.log.Info("Recorded view batch",
		zap.Int("created", res.Created),
		zap.Int("duplicates", res.Duplicates))
	return res, nil
}

func (uc *RecordViewUseCase) build(in RecordViewInput, now time.Time) (domain.View, error) {
	if in.BlogID <= 0 || in.UserID <= 0 || in.CountryID <= 0 {
		return domain.View{}, ErrInvalidView
	}

	viewedAt := in.ViewedAt
	if viewedAt.IsZero() {
		viewedAt = now
	}
	if viewedAt.After(now) {
		return domain.View{}, ErrFutureTime
	}
	viewedAt = viewedAt.UTC()

	return domain.View{
		BlogID:    in.BlogID,
		UserID:    in.UserID,
		CountryID: in.CountryID,
		ViewedAt:  viewedAt,
		DedupeKey: buildDedupeKey(in, viewedAt),
	}, nil
}

func buildDedupeKey(in RecordViewInput, t time.Time) string {
	// blog_id + user_id + country_id + unix_timestamp
	return fmt.Sprintf("%d|%d|%d|%d",
		in.BlogID,
		in.UserID,
		in.CountryID,
		t.Unix(),
	)
}
