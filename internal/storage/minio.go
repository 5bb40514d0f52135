package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage stores media blobs in an S3-compatible object store.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

var _ FileStorage = (*MinioStorage)(nil)

// MinioConfig holds connection parameters for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStorage connects to the object store and ensures the bucket exists.
func NewMinioStorage(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// Store uploads the blob under a fresh unique object key and returns the
// bucket-qualified path recorded on the content record.
func (s *MinioStorage) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := detectMediaType(src)
	if err != nil {
		return "", err
	}

	key := uuid.New().String() + mtype.Extension()
	opts := minio.PutObjectOptions{ContentType: mtype.String()}
	if _, err := s.client.PutObject(ctx, s.bucket, key, src, file.Size, opts); err != nil {
		return "", fmt.Errorf("upload media to object store: %w", err)
	}
	return s.bucket + "/" + key, nil
}
