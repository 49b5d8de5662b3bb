package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListComments(r.Context(), callerID(r), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, comments, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.AddComment(r.Context(), callerID(r), postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, comment, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.UpdateComment(r.Context(), callerID(r), postID, commentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), callerID(r), postID, commentID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
