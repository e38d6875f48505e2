package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"yatube/internal/httputil"
	"yatube/internal/model"
	"yatube/internal/service"
)

// AuthHandler groups the signup and login endpoints.
type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// authResponse carries the issued token together with the account.
type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, user *model.User, status int) {
	token, err := h.authService.GenerateAccessToken(user.ID)
	if err != nil {
		log.Printf("[ERROR] Token generation: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Failed to issue token")
		return
	}

	// Cookie for browser flows; the JSON body covers API clients.
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   h.authService.AccessTokenMaxAge(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.WriteJSON(w, status, authResponse{AccessToken: token, User: user})
}

// Signup handles POST /auth/signup/
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			httputil.WriteConflict(w, "Username already exists")
			return
		}
		log.Printf("[ERROR] Signup handler: %v", err)
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	h.issueToken(w, user, http.StatusCreated)
}

// Login handles POST /auth/login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteError(w, http.StatusUnauthorized, httputil.ErrCodeUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login handler: %v", err)
		httputil.WriteInternalError(w, "Failed to log in")
		return
	}

	h.issueToken(w, user, http.StatusOK)
}
