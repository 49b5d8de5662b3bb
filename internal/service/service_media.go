// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

// MediaURLPrefix is the public path stored blobs are served under.
const MediaURLPrefix = "/media/"

const defaultContentType = "application/octet-stream"

// MediaURL returns the public URL of the blob stored under key.
func MediaURL(key string) string {
	return MediaURLPrefix + key
}

type mediaService struct {
	files     store.FileStorage
	validator validators.Validator
	keys      *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewMediaService(files store.FileStorage, logger *logger.Logger) MediaService {
	return &mediaService{
		files:     files,
		validator: validators.NewRequestValidator(),
		keys:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *mediaService) Upload(ctx context.Context, file models.MediaFile) (string, error) {
	if err := s.validator.Validate(ctx, file); err != nil {
		return "", fmt.Errorf("invalid upload: %w", err)
	}

	key, err := saveFile(ctx, s.files, s.keys, file)
	if err != nil {
		return "", err
	}
	return MediaURL(key), nil
}

func (s *mediaService) Open(ctx context.Context, key string) (models.Blob, error) {
	return s.files.Open(ctx, key)
}

// saveFile stores file under a fresh "<uuid>_<name>" key and returns the key.
func saveFile(ctx context.Context, files store.FileStorage, keys *utils.UUIDGenerator, file models.MediaFile) (string, error) {
	key := keys.Generate() + "_" + sanitizeFileName(file.FileName)

	if err := files.Save(ctx, key, file.Content, file.Size, contentTypeOf(file)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "service.saveFile").Str("file", file.FileName).Msg("error storing file")
		return "", fmt.Errorf("storing %q: %w", file.FileName, err)
	}
	return key, nil
}

// removeFiles deletes blobs whose owning rows are gone. Failures only leave
// orphaned blobs behind, so they are logged and not returned.
func removeFiles(ctx context.Context, files store.FileStorage, keys ...string) {
	for _, key := range keys {
		if err := files.Delete(ctx, key); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("error removing stored file")
		}
	}
}

// sanitizeFileName keeps the base name of an uploaded file and replaces
// every character outside [A-Za-z0-9._-] with an underscore.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func contentTypeOf(file models.MediaFile) string {
	if file.ContentType != "" {
		return file.ContentType
	}
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(file.FileName))); byExt != "" {
		return byExt
	}
	return defaultContentType
}
