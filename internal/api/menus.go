package api

import (
	"context"
	"fmt"
	"net/http"
)

// MenusService manages the current franchisee's menu and its items.
type MenusService struct {
	c *Client
}

// Create opens a new draft menu for the current franchisee.
func (s *MenusService) Create(ctx context.Context) (*Menu, error) {
	var out Menu
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/menus"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the current franchisee's menu.
func (s *MenusService) Mine(ctx context.Context) (*Menu, error) {
	var out Menu
	if err := s.c.do(ctx, request{path: "/menus/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMine publishes or unpublishes the menu.
func (s *MenusService) UpdateMine(ctx context.Context, patch MenuPatch) (*Menu, error) {
	var out Menu
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: "/menus/me", body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Items lists the menu's items.
func (s *MenusService) Items(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := s.c.do(ctx, request{path: "/menus/me/items"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem adds a dish to the menu.
func (s *MenusService) CreateItem(ctx context.Context, payload MenuItemCreate) (*MenuItem, error) {
	var out MenuItem
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/menus/me/items", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem patches a dish.
func (s *MenusService) UpdateItem(ctx context.Context, itemID int64, patch MenuItemPatch) (*MenuItem, error) {
	var out MenuItem
	path := fmt.Sprintf("/menus/me/items/%d", itemID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes a dish. The endpoint returns no body.
func (s *MenusService) DeleteItem(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/menus/me/items/%d", itemID)
	return s.c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
