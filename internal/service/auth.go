package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"yatube/internal/config"
)

// AuthService issues the short-lived access tokens that carry request
// identity. There is no server-side session state: identity travels with the
// request and is threaded through handlers via the auth middleware.
type AuthService struct {
	config *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{config: cfg}
}

// GenerateAccessToken signs an HS256 token for the given user.
func (s *AuthService) GenerateAccessToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// AccessTokenMaxAge returns the token lifetime in seconds, for cookie expiry.
func (s *AuthService) AccessTokenMaxAge() int {
	return s.config.AccessTokenMaxAge
}
