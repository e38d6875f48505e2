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

const maxFormMemory = 32 << 20

type PostHandler struct {
	postService  *service.PostService
	mediaService *service.MediaService
}

func NewPostHandler(postService *service.PostService, mediaService *service.MediaService) *PostHandler {
	return &PostHandler{
		postService:  postService,
		mediaService: mediaService,
	}
}

// parsePostForm reads the post form fields (text, optional group id,
// optional image upload) from a multipart or urlencoded body.
func (h *PostHandler) parsePostForm(w http.ResponseWriter, r *http.Request) (*model.PostInput, bool) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		httputil.WriteBadRequest(w, "Invalid form data")
		return nil, false
	}

	input := &model.PostInput{Text: r.FormValue(model.PostTextField)}

	if g := r.FormValue(model.PostGroupField); g != "" {
		groupID, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			httputil.WriteValidationError(w, map[string]string{
				model.PostGroupField: "Select a valid group.",
			})
			return nil, false
		}
		input.GroupID = &groupID
	}

	file, header, err := r.FormFile(model.PostImageField)
	if err == nil {
		defer file.Close()
		stored, uploadErr := h.mediaService.UploadPostImage(r.Context(), file, header)
		if uploadErr != nil {
			switch {
			case errors.Is(uploadErr, model.ErrImageTooLarge):
				httputil.WriteValidationError(w, map[string]string{
					model.PostImageField: "Image is too large.",
				})
			case errors.Is(uploadErr, model.ErrInvalidImageType):
				httputil.WriteValidationError(w, map[string]string{
					model.PostImageField: "Unsupported image type. Allowed: jpeg, png, gif.",
				})
			default:
				log.Printf("[ERROR] Post image upload: %v", uploadErr)
				httputil.WriteInternalError(w, "Failed to store image")
			}
			return nil, false
		}
		input.ImageURL = &stored.URL
		input.ImageKey = &stored.Key
	}

	return input, true
}

func writePostError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, model.ErrTextRequired):
		httputil.WriteValidationError(w, map[string]string{
			model.PostTextField: "This field is required.",
		})
	case errors.Is(err, model.ErrGroupNotFound):
		httputil.WriteValidationError(w, map[string]string{
			model.PostGroupField: "Select a valid group.",
		})
	case errors.Is(err, model.ErrPostNotFound):
		httputil.WriteNotFound(w, "Post not found")
	default:
		log.Printf("[ERROR] %s post handler: %v", op, err)
		httputil.WriteInternalError(w, "Failed to save post")
	}
}

// Detail handles GET /posts/{id}/
// Returns the post, its comments oldest-first, and the author's post count.
func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteNotFound(w, "Post not found")
		return
	}

	detail, err := h.postService.Detail(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Post detail handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w, "Failed to load post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, detail)
}

// CreateForm handles GET /create/
// Returns the form data needed to compose a post (the group choices).
func (h *PostHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	groups, err := h.postService.GroupChoices(r.Context())
	if err != nil {
		log.Printf("[ERROR] Create form handler: %v", err)
		httputil.WriteInternalError(w, "Failed to load form")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// Create handles POST /create/
// The author is always the caller; it cannot be supplied by the form.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RedirectToLogin(w, r)
		return
	}

	input, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	post, err := h.postService.Create(r.Context(), userID, *input)
	if err != nil {
		writePostError(w, err, "Create")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s/", post.Author.Username), http.StatusFound)
}

// EditForm handles GET /posts/{id}/edit/
// Only the author sees the post here; everyone else gets NotFound.
func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.postService.ForEdit(r.Context(), postID, userID)
	if err != nil {
		writePostError(w, err, "EditForm")
		return
	}

	groups, err := h.postService.GroupChoices(r.Context())
	if err != nil {
		log.Printf("[ERROR] Edit form handler: %v", err)
		httputil.WriteInternalError(w, "Failed to load form")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"post":   post,
		"groups": groups,
	})
}

// Edit handles POST /posts/{id}/edit/
// A non-owner gets NotFound, indistinguishable from a missing post.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	input, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	if _, err := h.postService.Edit(r.Context(), postID, userID, *input); err != nil {
		writePostError(w, err, "Edit")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d/", postID), http.StatusFound)
}
