// Package service holds the external collaborators behind small interfaces so
// handlers can be tested without S3 or ffmpeg on the machine
package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	awsc "bitwise74/streamhub-api/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

const minMultipartSize = 12 << 20

// Storage uploads local files to the object store and returns their public
// URL. A failed upload is fatal to whichever operation requested it.
type Storage interface {
	Upload(ctx context.Context, key, path, contentType string) (url string, err error)
	Delete(ctx context.Context, keys ...string) error
}

type S3Storage struct {
	Client    *s3.Client
	Bucket    *string
	PublicURL string
}

func NewS3Storage(c *awsc.S3Client, publicURL string) *S3Storage {
	return &S3Storage{
		Client:    c.C,
		Bucket:    c.Bucket,
		PublicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *S3Storage) Upload(ctx context.Context, key, path, contentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for upload, %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file for upload, %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        s.Bucket,
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(stat.Size()),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	}

	if stat.Size() > minMultipartSize {
		zap.L().Debug("Using multipart upload", zap.String("key", key), zap.Int64("size", stat.Size()))

		uploader := manager.NewUploader(s.Client, func(u *manager.Uploader) {
			u.Concurrency = 5
			u.PartSize = 6 << 20
		})

		_, err = uploader.Upload(ctx, input)
	} else {
		_, err = s.Client.PutObject(ctx, input)
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload %s, %w", key, err)
	}

	return s.PublicURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for i := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: &keys[i]})
	}

	_, err := s.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: s.Bucket,
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		return fmt.Errorf("failed to delete objects, %w", err)
	}

	return nil
}

// ObjectKey extracts the store key from a public URL produced by Upload.
func ObjectKey(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}

	return url
}
