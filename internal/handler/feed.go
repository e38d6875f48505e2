package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"yatube/internal/httputil"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// parsePage reads the page query parameter. Absent or malformed values fall
// back to page 1; out-of-range values are clamped by the feed service.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Home handles GET /
// Serves the all-posts feed from the page cache; the payload is
// viewer-agnostic, so the same bytes go to every caller.
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	body, err := h.feedService.HomePage(r.Context(), parsePage(r))
	if err != nil {
		log.Printf("[ERROR] Home handler: %v", err)
		httputil.WriteInternalError(w, "Failed to load feed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Group handles GET /group/{slug}/
func (h *FeedHandler) Group(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.feedService.GroupFeed(r.Context(), slug, parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			httputil.WriteNotFound(w, "Group not found")
			return
		}
		log.Printf("[ERROR] Group feed handler: slug=%s err=%v", slug, err)
		httputil.WriteInternalError(w, "Failed to load group feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}

// Profile handles GET /profile/{username}/
// Includes the following flag when the viewer is authenticated.
func (h *FeedHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var viewerID *int64
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	page, err := h.feedService.AuthorFeed(r.Context(), username, parsePage(r), viewerID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Profile feed handler: username=%s err=%v", username, err)
		httputil.WriteInternalError(w, "Failed to load profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}

// Following handles GET /follow/
// The personalized feed of posts by authors the viewer follows.
func (h *FeedHandler) Following(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RedirectToLogin(w, r)
		return
	}

	page, err := h.feedService.FollowingFeed(r.Context(), viewerID, parsePage(r))
	if err != nil {
		log.Printf("[ERROR] Following feed handler: user=%d err=%v", viewerID, err)
		httputil.WriteInternalError(w, "Failed to load feed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}
