// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MediaService: &mockMediaService{
			uploadFn: func(_ context.Context, file models.MediaFile) (string, error) {
				assert.Equal(t, "cover art.png", file.FileName)
				return service.MediaURL("0190_cover_art.png"), nil
			},
		},
	})

	req := multipartRequest(t, http.MethodPost, "/api/upload", aliceToken, nil,
		formPart{"file", "cover art.png", "image/png", "png"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/media/0190_cover_art.png", resp.URL)
}

func TestServeMedia(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MediaService: &mockMediaService{
			openFn: func(_ context.Context, key string) (models.Blob, error) {
				if key != "0190_cover_art.png" {
					return models.Blob{}, store.ErrFileNotFound
				}
				return models.Blob{
					Content:     io.NopCloser(strings.NewReader("png")),
					ContentType: "image/png",
					Size:        3,
				}, nil
			},
		},
	})

	rec := serve(t, router, http.MethodGet, "/media/0190_cover_art.png", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "png", rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/media/missing.png", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FILE_NOT_FOUND", decodeErrorResponse(t, rec).Code)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestServeBlob_ClosesContent(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader("data")}
	rec := httptest.NewRecorder()

	serveBlob(rec, httptest.NewRequest(http.MethodGet, "/", nil), models.Blob{Content: body}, "")

	assert.True(t, body.closed)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "data", rec.Body.String())
}
