package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	liked, err := h.services.LikeService.ToggleLike(r.Context(), callerID(r), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, models.LikeToggleResponse{Liked: liked}, http.StatusOK)
}

func (h *Handler) countLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.services.LikeService.CountLikes(r.Context(), callerID(r), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, models.LikeCountResponse{Count: count}, http.StatusOK)
}
