package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedType = errors.New("uploaded file type is not supported")
)

// Storage persists uploaded profile photos and returns a public path.
type Storage interface {
	SaveProfilePhoto(file *multipart.FileHeader) (string, error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStorage writes uploads under baseDir/profiles and serves them through
// the /uploads static route.
type LocalStorage struct {
	baseDir string
	maxSize int64
}

func NewLocalStorage(baseDir string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "profiles"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, maxSize: maxSize}, nil
}

func (s *LocalStorage) SaveProfilePhoto(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.baseDir, "profiles", name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write uploaded file: %w", err)
	}

	return "/uploads/profiles/" + name, nil
}
