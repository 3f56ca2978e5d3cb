package service

import (
	"context"
	"io"
)

// FileStore defines the interface to the blob store holding uploaded images.
// The domain only ever keeps the stable key returned by Save; raw bytes never
// enter the relational store.
type FileStore interface {
	// Save stores the content under a stable, collision-free key derived from
	// the given filename and returns that key.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Delete removes a stored blob. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
