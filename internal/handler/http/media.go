package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
	"github.com/go-chi/chi/v5"
)

// upload stores a single multipart "file" and returns its public URL.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	file, closeFile, err := formFile(r, "file")
	defer closeFile()
	if err != nil {
		writeError(w, r, err)
		return
	}

	url, err := h.services.MediaService.Upload(r.Context(), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, models.UploadResponse{URL: url}, http.StatusOK)
}

func (h *Handler) serveMedia(w http.ResponseWriter, r *http.Request) {
	blob, err := h.services.MediaService.Open(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	serveBlob(w, r, blob, blob.ContentType)
}
