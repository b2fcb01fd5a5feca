package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// WarehousesService covers warehouses and their inventory.
type WarehousesService struct {
	c *Client
}

// List returns all warehouses.
func (s *WarehousesService) List(ctx context.Context) ([]Warehouse, error) {
	var out []Warehouse
	if err := s.c.do(ctx, request{path: "/warehouses"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Inventory returns the inventory items of one warehouse.
func (s *WarehousesService) Inventory(ctx context.Context, warehouseID int64) ([]InventoryItem, error) {
	var out []InventoryItem
	path := fmt.Sprintf("/warehouses/%d/inventory-items", warehouseID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInventoryItem adds a new stock line to a warehouse.
func (s *WarehousesService) CreateInventoryItem(ctx context.Context, warehouseID int64, payload InventoryItemCreate) (*InventoryItem, error) {
	var out InventoryItem
	path := fmt.Sprintf("/warehouses/%d/inventory-items", warehouseID)
	if err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInventoryItem adjusts the available quantity of one stock line.
func (s *WarehousesService) UpdateInventoryItem(ctx context.Context, warehouseID, itemID int64, patch InventoryItemPatch) (*InventoryItem, error) {
	var out InventoryItem
	path := fmt.Sprintf("/warehouses/%d/inventory-items/%d", warehouseID, itemID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Availability asks which warehouses can fulfil a supply order.
func (s *WarehousesService) Availability(ctx context.Context, supplyOrderID int64) ([]WarehouseAvailability, error) {
	query := url.Values{"supplyOrderId": {strconv.FormatInt(supplyOrderID, 10)}}
	var out []WarehouseAvailability
	if err := s.c.do(ctx, request{path: "/warehouses/availability", query: query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
