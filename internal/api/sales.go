package api

import (
	"context"
	"net/url"
	"strconv"
)

// SalesService reads the current franchisee's sales history.
type SalesService struct {
	c *Client
}

// SaleListOptions filter the sales listing; zero values are omitted.
type SaleListOptions struct {
	From       string
	To         string
	MenuItemID int64
}

// List performs GET /sales/me.
func (s *SalesService) List(ctx context.Context, opts SaleListOptions) ([]Sale, error) {
	query := url.Values{}
	if opts.From != "" {
		query.Set("from", opts.From)
	}
	if opts.To != "" {
		query.Set("to", opts.To)
	}
	if opts.MenuItemID != 0 {
		query.Set("menuItemId", strconv.FormatInt(opts.MenuItemID, 10))
	}

	var out []Sale
	if err := s.c.do(ctx, request{path: "/sales/me", query: query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RevenuesService reads aggregated revenue series.
type RevenuesService struct {
	c *Client
}

// RevenueListOptions filter the revenue series; zero values are omitted.
// Granularity is one of "day", "week" or "month".
type RevenueListOptions struct {
	From        string
	To          string
	Granularity string
}

// List performs GET /revenues/me.
func (s *RevenuesService) List(ctx context.Context, opts RevenueListOptions) ([]RevenuePoint, error) {
	query := url.Values{}
	if opts.From != "" {
		query.Set("from", opts.From)
	}
	if opts.To != "" {
		query.Set("to", opts.To)
	}
	if opts.Granularity != "" {
		query.Set("granularity", opts.Granularity)
	}

	var out []RevenuePoint
	if err := s.c.do(ctx, request{path: "/revenues/me", query: query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
