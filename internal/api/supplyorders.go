package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SupplyOrdersService manages supply orders and their line items.
type SupplyOrdersService struct {
	c *Client
}

// SupplyOrderListOptions filter the supply order listing. Zero values are
// omitted from the query string; Paid must be a pointer because both true
// and false are meaningful filters.
type SupplyOrderListOptions struct {
	FranchiseeID int64
	Paid         *bool
	Status       SupplyOrderStatus
	WarehouseID  int64
}

// List returns supply orders matching the given filters.
func (s *SupplyOrdersService) List(ctx context.Context, opts SupplyOrderListOptions) ([]SupplyOrder, error) {
	query := url.Values{}
	if opts.FranchiseeID != 0 {
		query.Set("franchiseeId", strconv.FormatInt(opts.FranchiseeID, 10))
	}
	if opts.Paid != nil {
		query.Set("paid", strconv.FormatBool(*opts.Paid))
	}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}
	if opts.WarehouseID != 0 {
		query.Set("warehouseId", strconv.FormatInt(opts.WarehouseID, 10))
	}

	var out []SupplyOrder
	if err := s.c.do(ctx, request{path: "/supply-orders", query: query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create opens a new draft supply order.
func (s *SupplyOrdersService) Create(ctx context.Context, payload SupplyOrderCreate) (*SupplyOrder, error) {
	var out SupplyOrder
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/supply-orders", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a supply order's status, pickup warehouse or payment state.
func (s *SupplyOrdersService) Update(ctx context.Context, orderID int64, patch SupplyOrderPatch) (*SupplyOrder, error) {
	var out SupplyOrder
	path := fmt.Sprintf("/supply-orders/%d", orderID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Items returns the line items of one supply order.
func (s *SupplyOrdersService) Items(ctx context.Context, orderID int64) ([]SupplyOrderItem, error) {
	var out []SupplyOrderItem
	path := fmt.Sprintf("/supply-orders/%d/items", orderID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddItem appends a line item to a draft supply order.
func (s *SupplyOrdersService) AddItem(ctx context.Context, orderID int64, payload SupplyOrderItemCreate) (*SupplyOrderItem, error) {
	var out SupplyOrderItem
	path := fmt.Sprintf("/supply-orders/%d/items", orderID)
	if err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem changes the quantity of a line item.
func (s *SupplyOrdersService) UpdateItem(ctx context.Context, orderID, itemID int64, patch SupplyOrderItemPatch) (*SupplyOrderItem, error) {
	var out SupplyOrderItem
	path := fmt.Sprintf("/supply-orders/%d/items/%d", orderID, itemID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
