package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"contacts_admin/internal/model"
)

var ErrEmptyToken = errors.New("backend returned an empty token")

// AuthService signs administrators in against the backend.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	api Requester
}

// NewAuthService creates a new AuthService
func NewAuthService(api Requester) AuthService {
	return &authService{api: api}
}

// SignIn returns the opaque session token issued by the backend.
func (s *authService) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp model.SignInResponse
	req := model.SignInRequest{Email: email, Password: password}

	if err := s.api.Do(ctx, http.MethodPost, "/admin/signin", req, &resp); err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}
	return resp.Token, nil
}
