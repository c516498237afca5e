package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-admin/internal/config"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client     objectPutter
	bucket     string
	publicBase string
	newID      func() string
}

// NewS3Uploader monta o client a partir da configuração. Endpoint
// preenchido indica um serviço compatível (MinIO, R2) com path-style.
func NewS3Uploader(cfg config.S3Config) *S3Uploader {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return newS3Uploader(s3.New(opts), cfg.Bucket, publicBase(cfg))
}

func newS3Uploader(client objectPutter, bucket, base string) *S3Uploader {
	return &S3Uploader{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(base, "/"),
		newID:      uuid.NewString,
	}
}

func publicBase(cfg config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (u *S3Uploader) Upload(ctx context.Context, folder Folder, src io.Reader) (*Image, error) {
	body, err := Normalize(src)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.webp", folder, u.newID())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Image{URL: u.publicBase + "/" + key, ID: key}, nil
}

// FromConfig escolhe o uploader disponível.
func FromConfig(cfg config.S3Config) Uploader {
	if !cfg.Enabled() {
		return Disabled{}
	}
	return NewS3Uploader(cfg)
}
