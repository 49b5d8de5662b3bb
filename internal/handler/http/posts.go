package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

// createPost accepts multipart fields "description", "isPrivate" and one or
// more "media" files.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	if err := h.parseMultipart(w, r); err != nil {
		writeError(w, r, err)
		return
	}

	isPrivate, err := formBool(r, "isPrivate")
	if err != nil {
		writeError(w, r, err)
		return
	}

	media, closeMedia, err := formFiles(r, "media")
	defer closeMedia()
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), callerID(r), models.NewPost{
		Description: r.FormValue("description"),
		IsPrivate:   isPrivate,
		Media:       media,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, post, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), callerID(r), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) listPublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPublicPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) listMyPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListUserPosts(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdatePostRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), callerID(r), postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), callerID(r), postID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, models.MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}
