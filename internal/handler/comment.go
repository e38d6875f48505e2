package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"yatube/internal/httputil"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add handles POST /posts/{id}/comment/
// On success the caller is redirected back to the post detail page.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RedirectToLogin(w, r)
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteNotFound(w, "Post not found")
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}
	text := r.FormValue(model.PostTextField)

	if _, err := h.commentService.Add(r.Context(), postID, userID, text); err != nil {
		switch {
		case errors.Is(err, model.ErrTextRequired):
			httputil.WriteValidationError(w, map[string]string{
				model.PostTextField: "This field is required.",
			})
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		default:
			log.Printf("[ERROR] Add comment handler: post=%d user=%d err=%v", postID, userID, err)
			httputil.WriteInternalError(w, "Failed to add comment")
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d/", postID), http.StatusFound)
}
