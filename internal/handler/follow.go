package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"yatube/internal/httputil"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /profile/{username}/follow/
// Following yourself or an author you already follow is a no-op; either way
// the caller lands back on the profile page.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RedirectToLogin(w, r)
		return
	}

	username := chi.URLParam(r, "username")

	author, err := h.followService.Follow(r.Context(), followerID, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Follow handler: follower=%d username=%s err=%v", followerID, username, err)
		httputil.WriteInternalError(w, "Failed to follow user")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s/", author.Username), http.StatusFound)
}

// Unfollow handles POST /profile/{username}/unfollow/
// Unfollowing an author you don't follow is a no-op.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RedirectToLogin(w, r)
		return
	}

	username := chi.URLParam(r, "username")

	author, err := h.followService.Unfollow(r.Context(), followerID, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Unfollow handler: follower=%d username=%s err=%v", followerID, username, err)
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s/", author.Username), http.StatusFound)
}
