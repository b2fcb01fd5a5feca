package api

import (
	"context"
	"fmt"
	"net/http"
)

// CustomerOrdersService manages point-of-sale orders taken on the truck.
type CustomerOrdersService struct {
	c *Client
}

// List returns the current franchisee's customer orders.
func (s *CustomerOrdersService) List(ctx context.Context) ([]CustomerOrder, error) {
	var out []CustomerOrder
	if err := s.c.do(ctx, request{path: "/customer-orders"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one customer order.
func (s *CustomerOrdersService) Get(ctx context.Context, orderID int64) (*CustomerOrder, error) {
	var out CustomerOrder
	path := fmt.Sprintf("/customer-orders/%d", orderID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create opens a new customer order.
func (s *CustomerOrdersService) Create(ctx context.Context, payload CustomerOrderCreate) (*CustomerOrder, error) {
	var out CustomerOrder
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/customer-orders", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update advances an order's status or records its payment.
func (s *CustomerOrdersService) Update(ctx context.Context, orderID int64, patch CustomerOrderPatch) (*CustomerOrder, error) {
	var out CustomerOrder
	path := fmt.Sprintf("/customer-orders/%d", orderID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Items lists an order's line items.
func (s *CustomerOrdersService) Items(ctx context.Context, orderID int64) ([]CustomerOrderItem, error) {
	var out []CustomerOrderItem
	path := fmt.Sprintf("/customer-orders/%d/items", orderID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddItem appends a line item to an order.
func (s *CustomerOrdersService) AddItem(ctx context.Context, orderID int64, payload CustomerOrderItemCreate) (*CustomerOrderItem, error) {
	var out CustomerOrderItem
	path := fmt.Sprintf("/customer-orders/%d/items", orderID)
	if err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem deletes a line item. The endpoint returns no body.
func (s *CustomerOrdersService) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	path := fmt.Sprintf("/customer-orders/%d/items/%d", orderID, itemID)
	return s.c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
