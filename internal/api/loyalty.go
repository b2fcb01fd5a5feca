package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// LoyaltyCardsService manages customer loyalty cards.
type LoyaltyCardsService struct {
	c *Client
}

// List returns all loyalty cards.
func (s *LoyaltyCardsService) List(ctx context.Context) ([]LoyaltyCard, error) {
	var out []LoyaltyCard
	if err := s.c.do(ctx, request{path: "/loyalty-cards"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create issues a new card for a customer reference.
func (s *LoyaltyCardsService) Create(ctx context.Context, payload LoyaltyCardCreate) (*LoyaltyCard, error) {
	var out LoyaltyCard
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/loyalty-cards", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchByCode looks a card up by its printed code.
func (s *LoyaltyCardsService) SearchByCode(ctx context.Context, code string) (*LoyaltyCard, error) {
	query := url.Values{"code": {code}}
	var out LoyaltyCard
	if err := s.c.do(ctx, request{path: "/loyalty-cards", query: query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one card by id.
func (s *LoyaltyCardsService) Get(ctx context.Context, cardID int64) (*LoyaltyCard, error) {
	var out LoyaltyCard
	path := fmt.Sprintf("/loyalty-cards/%d", cardID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
