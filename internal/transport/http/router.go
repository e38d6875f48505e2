package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"yatube/internal/handler"
	"yatube/internal/httputil"
	authmw "yatube/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup/", cfg.AuthHandler.Signup)
		r.Post("/login/", cfg.AuthHandler.Login)
	})

	// The home feed is cached and viewer-agnostic; no identity needed.
	r.Get("/", cfg.FeedHandler.Home)
	r.Get("/group/{slug}/", cfg.FeedHandler.Group)
	r.Get("/posts/{id}/", cfg.PostHandler.Detail)

	// The profile page renders a following flag for authenticated viewers.
	r.With(authmw.OptionalAuth(cfg.JWTSecret)).Get("/profile/{username}/", cfg.FeedHandler.Profile)

	// Protected routes - anonymous callers are redirected to login with next
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(cfg.JWTSecret))

		r.Get("/create/", cfg.PostHandler.CreateForm)
		r.Post("/create/", cfg.PostHandler.Create)
		r.Get("/posts/{id}/edit/", cfg.PostHandler.EditForm)
		r.Post("/posts/{id}/edit/", cfg.PostHandler.Edit)
		r.Post("/posts/{id}/comment/", cfg.CommentHandler.Add)

		r.Get("/follow/", cfg.FeedHandler.Following)
		r.Post("/profile/{username}/follow/", cfg.FollowHandler.Follow)
		r.Post("/profile/{username}/unfollow/", cfg.FollowHandler.Unfollow)
	})

	return r
}
