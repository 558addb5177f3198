package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is where processed avatars end up.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSize returns the size of a file in bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local or s3
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for S3
	Region     string // for S3
	AccessKey  string // for S3
	SecretKey  string // for S3
	Endpoint   string // for S3-compatible stores (R2, MinIO)
	PublicRead bool
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
