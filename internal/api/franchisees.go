package api

import (
	"context"
	"fmt"
	"net/http"
)

// FranchiseesService covers the franchisee directory and the current
// franchisee's own profile.
type FranchiseesService struct {
	c *Client
}

// List returns the full franchisee directory (admin endpoint).
func (s *FranchiseesService) List(ctx context.Context) ([]Franchisee, error) {
	var out []Franchisee
	if err := s.c.do(ctx, request{path: "/franchisees"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the admin detail view of one franchisee.
func (s *FranchiseesService) Get(ctx context.Context, franchiseeID int64) (*FranchiseeDetail, error) {
	var out FranchiseeDetail
	path := fmt.Sprintf("/franchisees/%d", franchiseeID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Current returns the franchisee record bound to the active token.
func (s *FranchiseesService) Current(ctx context.Context) (*Franchisee, error) {
	var out Franchisee
	if err := s.c.do(ctx, request{path: "/franchisees/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCurrent patches the current franchisee's profile and returns the
// updated record.
func (s *FranchiseesService) UpdateCurrent(ctx context.Context, patch FranchiseePatch) (*Franchisee, error) {
	var out Franchisee
	err := s.c.do(ctx, request{method: http.MethodPatch, path: "/franchisees/me", body: patch}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
