// Package storage archives uploaded crop photos in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"kisan-backend/internal/vision"
)

var ErrEmptyImage = errors.New("image is empty")

// ImageStore keeps a copy of an analysed image and returns where it lives.
type ImageStore interface {
	SaveImage(ctx context.Context, userID, analysisID string, data []byte) (string, error)
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Enabled reports whether enough is configured to talk to a bucket.
func (c S3Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != "" && strings.TrimSpace(c.Bucket) != ""
}

type S3ImageStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
	region   string
	useSSL   bool
	logger   *zap.Logger

	mu          sync.Mutex
	bucketReady bool
}

func NewS3ImageStore(cfg S3Config, logger *zap.Logger) (*S3ImageStore, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "ap-south-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	logger.Info("Image archive initialized", zap.String("endpoint", endpoint), zap.String("bucket", bucket))
	return &S3ImageStore{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
		region:   region,
		useSSL:   cfg.UseSSL,
		logger:   logger,
	}, nil
}

// ensureBucket creates the bucket on first use. A failed check is retried on
// the next call.
func (s *S3ImageStore) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bucketReady {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return err
		}
	}
	s.bucketReady = true
	return nil
}

func (s *S3ImageStore) SaveImage(ctx context.Context, userID, analysisID string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if err := s.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensure bucket: %w", err)
	}

	mtype := mimetype.Detect(data)
	key := ObjectKey(userID, analysisID, mtype.Extension())
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mtype.String(),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	s.logger.Debug("Image archived", zap.String("key", key), zap.Int("bytes", len(data)))
	return ObjectURL(s.endpoint, s.bucket, key, s.useSSL), nil
}

// ObjectKey is crops/<user>/<analysis><ext>. Anonymous uploads, and user ids
// that could escape their prefix, go under "anonymous".
func ObjectKey(userID, analysisID, ext string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.ContainsAny(userID, `/\`) || strings.Contains(userID, "..") {
		userID = "anonymous"
	}
	return "crops/" + userID + "/" + analysisID + ext
}

func ObjectURL(endpoint, bucket, key string, useSSL bool) string {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, strings.TrimSuffix(endpoint, "/"), bucket, key)
}

// DecodeImage decodes base64 image data, with or without a data-URI prefix.
func DecodeImage(encoded string) ([]byte, error) {
	raw := vision.StripDataURI(encoded)
	if raw == "" {
		return nil, ErrEmptyImage
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	return data, nil
}
