package storage

import (
	"context"
	"fmt"
	"io"
)

// ImageStorage defines the contract for poster/image storage backends.
type ImageStorage interface {
	// UploadImage uploads an image from the reader and returns the URL it
	// will be served from. folder is a logical folder (e.g. "posters").
	UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteImage deletes an image using the URL previously returned.
	DeleteImage(ctx context.Context, fileURL string) error
}

// New selects a backend by driver name: "local" keeps files on disk under
// baseDir and serves them from /uploads, "cloudinary" uses the Cloudinary API
// configured through environment variables.
func New(driver, baseDir string) (ImageStorage, error) {
	switch driver {
	case "", "local":
		return NewLocalStorage(baseDir)
	case "cloudinary":
		return NewCloudinaryStorage()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
