package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/config"
)

// ObjectStore is the blob storage boundary used for submission and document files.
type ObjectStore interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error
	SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, objectPath string) error
}

// New builds the store selected by config.StorageDriver.
func New(ctx context.Context) (ObjectStore, error) {
	switch config.StorageDriver {
	case "", "minio":
		return NewMinioStore(ctx, MinioOptions{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			UseSSL:    config.MinioUseSSL,
		})
	case "s3":
		return NewS3Store(ctx, S3Options{
			Endpoint:     config.S3Endpoint,
			Region:       config.S3Region,
			AccessKey:    config.S3AccessKey,
			SecretKey:    config.S3SecretKey,
			Bucket:       config.S3Bucket,
			UsePathStyle: config.S3UsePathStyle,
		})
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}
}

// Ext returns the lower-cased extension of name without the dot, or "bin".
func Ext(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}

// SubmissionPath is the object path of a document submission:
// {taskId}/{attachmentId}/{unixMillis}.{ext}
func SubmissionPath(taskID, attachmentID uuid.UUID, at time.Time, fileName string) string {
	return fmt.Sprintf("%s/%s/%d.%s", taskID, attachmentID, at.UnixMilli(), Ext(fileName))
}

// DocumentPath is the object path of a library document: {department}/{fileName}
func DocumentPath(department, fileName string) string {
	return strings.ToLower(strings.TrimSpace(department)) + "/" + fileName
}
