package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory; larger
// files spill to temporary files managed by mime/multipart.
const multipartMemory = 8 << 20

// callerID returns the id of the authenticated principal, or 0 for an
// anonymous request.
func callerID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

// pathID parses a positive integer path parameter such as {postId}.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// pathIndex parses a zero-based index path parameter.
func pathIndex(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return index, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// parseMultipart parses a multipart body bounded by the upload limit.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isBodyTooLarge(err) {
			return fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, h.maxUploadBytes)
		}
		return fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	return nil
}

// formFiles opens every file sent under field. The returned closer releases
// all of them and must be called once the files have been consumed.
func formFiles(r *http.Request, field string) ([]models.MediaFile, func(), error) {
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[field]
	}

	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]models.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("%w: opening %q: %w", ErrInvalidMultipartForm, fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, models.MediaFile{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}
	return files, closeAll, nil
}

// formFile opens the single file sent under field.
func formFile(r *http.Request, field string) (models.MediaFile, func(), error) {
	files, closeAll, err := formFiles(r, field)
	if err != nil {
		return models.MediaFile{}, closeAll, err
	}
	if len(files) == 0 {
		return models.MediaFile{}, closeAll, fmt.Errorf("%w: field %q", ErrMissingFile, field)
	}
	return files[0], closeAll, nil
}

// formBool reads a checkbox-style form value; absent means false.
func formBool(r *http.Request, field string) (bool, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidMultipartForm, field, raw)
	}
	return v, nil
}

// isBodyTooLarge reports whether err came from the MaxBytesReader limit.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
