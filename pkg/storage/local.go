package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// localStorage writes images under baseDir; the server exposes that directory
// at /uploads, so returned URLs are "/uploads/<folder>/<name>".
type localStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (ImageStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := s.baseDir
	if folder != "" {
		dir = filepath.Join(s.baseDir, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create folder: %w", err)
		}
	}

	name := uuid.NewString() + ext
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if folder != "" {
		return "/uploads/" + folder + "/" + name, nil
	}
	return "/uploads/" + name, nil
}

func (s *localStorage) DeleteImage(ctx context.Context, fileURL string) error {
	rel, ok := strings.CutPrefix(fileURL, "/uploads/")
	if !ok {
		return fmt.Errorf("not a local upload URL: %s", fileURL)
	}

	// Refuse anything that escapes the upload directory.
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("invalid upload path: %s", fileURL)
	}

	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
