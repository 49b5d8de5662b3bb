// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) addMaterial(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.parseMultipart(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	file, closeFile, err := formFile(r, "file")
	defer closeFile()
	if err != nil {
		writeError(w, r, err)
		return
	}

	material, err := h.services.LearningPlanService.AddMaterial(r.Context(), callerID(r), planID, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, material, http.StatusCreated)
}

func (h *Handler) downloadMaterial(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	index, err := pathIndex(r, "index")
	if err != nil {
		writeError(w, r, err)
		return
	}

	material, blob, err := h.services.LearningPlanService.OpenMaterial(r.Context(), callerID(r), planID, index)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contentType := material.ContentType
	if contentType == "" {
		contentType = blob.ContentType
	}
	w.Header().Set("Content-Disposition", contentDisposition(contentType, material.FileName))
	serveBlob(w, r, blob, contentType)
}

func (h *Handler) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	index, err := pathIndex(r, "index")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LearningPlanService.DeleteMaterial(r.Context(), callerID(r), planID, index); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contentDisposition shows images and PDFs in the browser and offers
// everything else as a download.
func contentDisposition(contentType, fileName string) string {
	disposition := "attachment"
	if strings.HasPrefix(contentType, "image/") || contentType == "application/pdf" {
		disposition = "inline"
	}
	if fileName == "" {
		return disposition
	}
	return mime.FormatMediaType(disposition, map[string]string{"filename": fileName})
}

// serveBlob streams blob to the client and closes it.
func serveBlob(w http.ResponseWriter, r *http.Request, blob models.Blob, contentType string) {
	defer blob.Content.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if blob.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(blob.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob.Content); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "http.serveBlob").Msg("error streaming blob")
	}
}
