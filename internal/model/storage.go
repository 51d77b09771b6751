package model

import (
	"context"
	"io"
)

// Storage is an object store used to archive person reports.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Exists(ctx context.Context, key string) (bool, error)
}
