// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the subset of *s3.Client used by [s3FileStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3FileStorage keeps blobs in a bucket of an S3-compatible object store
// (AWS S3, MinIO).
type s3FileStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3FileStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS chain applies.
// A non-empty Endpoint switches to path-style addressing for MinIO.
func NewS3FileStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3FileStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3FileStorage(client, cfg.Bucket, logger), nil
}

func newS3FileStorage(client s3API, bucket string, logger *logger.Logger) *s3FileStorage {
	return &s3FileStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (s *s3FileStorage) Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	if !validFileKey(key) {
		return ErrInvalidFileKey
	}
	if contentType == "" {
		contentType = contentTypeOf(key)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3FileStorage.Save").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("error uploading object: %w", err)
	}
	return nil
}

func (s *s3FileStorage) Open(ctx context.Context, key string) (models.Blob, error) {
	if !validFileKey(key) {
		return models.Blob{}, ErrInvalidFileKey
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return models.Blob{}, ErrFileNotFound
		}
		return models.Blob{}, fmt.Errorf("error downloading object: %w", err)
	}

	blob := models.Blob{
		Content:     out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if blob.ContentType == "" {
		blob.ContentType = contentTypeOf(key)
	}
	return blob, nil
}

func (s *s3FileStorage) Delete(ctx context.Context, key string) error {
	if !validFileKey(key) {
		return ErrInvalidFileKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("error deleting object: %w", err)
	}
	return nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
