package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"alcyxob/gymflow/internal/config"

	"go.uber.org/zap"
)

func TestObjectKeys(t *testing.T) {
	key, err := TrainerProfileImageKey("t1", "image/PNG")
	if err != nil {
		t.Fatalf("TrainerProfileImageKey: %v", err)
	}
	if !strings.HasPrefix(key, "trainers/t1/profile/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("unexpected key %q", key)
	}
	if !BelongsToTrainer(key, "t1") || BelongsToTrainer(key, "t10") {
		t.Errorf("BelongsToTrainer mismatch for %q", key)
	}

	other, _ := TrainerProfileImageKey("t1", "image/png")
	if other == key {
		t.Errorf("keys should be unique per upload")
	}

	if _, err := TrainerProfileImageKey("t1", "application/pdf"); !errors.Is(err, ErrUnsupportedContentType) {
		t.Errorf("expected ErrUnsupportedContentType, got %v", err)
	}
	doc, err := CertificationDocumentKey("t1", "application/pdf")
	if err != nil || !strings.HasPrefix(doc, "trainers/t1/certifications/") || !strings.HasSuffix(doc, ".pdf") {
		t.Errorf("unexpected certification key %q, err %v", doc, err)
	}
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	if _, err := NewS3Storage(context.Background(), config.S3Config{}, zap.NewNop()); !errors.Is(err, ErrStorageDisabled) {
		t.Fatalf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestPresignedURLsAreSignedLocally(t *testing.T) {
	cfg := config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "trainer-media",
		PresignExpiry:   10 * time.Minute,
	}
	fs, err := NewS3Storage(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewS3Storage: %v", err)
	}

	put, err := fs.GeneratePresignedUploadURL(context.Background(), "trainers/t1/profile/a.png", "image/png", 0)
	if err != nil {
		t.Fatalf("GeneratePresignedUploadURL: %v", err)
	}
	u, err := url.Parse(put)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if u.Host != "localhost:9000" || u.Path != "/trainer-media/trainers/t1/profile/a.png" {
		t.Errorf("unexpected upload url %s", put)
	}
	if u.Query().Get("X-Amz-Expires") != "600" || u.Query().Get("X-Amz-Signature") == "" {
		t.Errorf("upload url not signed with configured expiry: %s", put)
	}

	get, err := fs.GeneratePresignedDownloadURL(context.Background(), "trainers/t1/profile/a.png", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedDownloadURL: %v", err)
	}
	if !strings.Contains(get, "X-Amz-Expires=60") {
		t.Errorf("download url should use the explicit expiry: %s", get)
	}
}
