package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks alcyxob/gymflow/internal/storage FileStorage

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// ObjectExists reports whether the object was uploaded.
	ObjectExists(ctx context.Context, objectKey string) (bool, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrStorageDisabled        = errors.New("file storage is not configured")
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var documentExtensions = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
}

// TrainerProfileImageKey builds a fresh object key for a trainer's profile image.
func TrainerProfileImageKey(trainerID, contentType string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}
	return path.Join("trainers", trainerID, "profile", uuid.NewString()+"."+ext), nil
}

// CertificationDocumentKey builds a fresh object key for a scanned certificate.
func CertificationDocumentKey(trainerID, contentType string) (string, error) {
	ext, ok := documentExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContentType, contentType)
	}
	return path.Join("trainers", trainerID, "certifications", uuid.NewString()+"."+ext), nil
}

// BelongsToTrainer reports whether key was issued under trainerID's prefix.
func BelongsToTrainer(key, trainerID string) bool {
	return strings.HasPrefix(key, path.Join("trainers", trainerID)+"/")
}
