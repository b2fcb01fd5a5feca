package api

import (
	"context"
	"net/http"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	c *Client
}

// Login performs POST /auth/login.
func (s *AuthService) Login(ctx context.Context, payload LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup performs POST /auth/signup.
func (s *AuthService) Signup(ctx context.Context, payload Registration) (*TokenResponse, error) {
	var out TokenResponse
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/auth/signup", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
