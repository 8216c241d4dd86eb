package domain

import (
	"errors"
	"time"
)

// ErrUnknownReference is returned by a repository when a view points at a
// blog, user or country that does not exist.
var ErrUnknownReference = errors.New("referenced blog, user or country does not exist")

type View struct {
	BlogID    int64
	UserID    int64
	CountryID int64
	ViewedAt  time.Time
	DedupeKey string
}
