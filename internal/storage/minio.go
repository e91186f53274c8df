package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// Insecure skips TLS verification for self-signed deployments.
	Insecure bool
}

type MinioStore struct {
	client *minioSDK.Client
	bucket string
}

// NewMinioStore connects to MinIO and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, opts MinioOptions) (*MinioStore, error) {
	mopts := &minioSDK.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	}
	if opts.Insecure {
		mopts.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	client, err := minioSDK.New(opts.Endpoint, mopts)
	if err != nil {
		return nil, fmt.Errorf("connect to MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Printf("[storage] bucket created: %s", opts.Bucket)
	} else {
		log.Printf("[storage] bucket already exists: %s", opts.Bucket)
	}

	return &MinioStore{client: client, bucket: opts.Bucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error {
	if strings.TrimSpace(objectPath) == "" {
		return fmt.Errorf("object name cannot be empty")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectPath, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectPath, ttl, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *MinioStore) Remove(ctx context.Context, objectPath string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectPath, minioSDK.RemoveObjectOptions{})
}
