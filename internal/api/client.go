package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token. An empty string means
// unauthenticated, in which case no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Client is the single chokepoint for outbound calls to the franchise API.
// It injects JSON headers and the bearer token, translates non-2xx responses
// into *Error values and otherwise leaves responses untouched. It never
// retries, caches or queues.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource

	Auth           *AuthService
	Franchisees    *FranchiseesService
	Applications   *FranchiseApplicationsService
	Terms          *FranchiseTermsService
	Warehouses     *WarehousesService
	SupplyOrders   *SupplyOrdersService
	Appointments   *AppointmentsService
	Menus          *MenusService
	LoyaltyCards   *LoyaltyCardsService
	CustomerOrders *CustomerOrdersService
	Sales          *SalesService
	Revenues       *RevenuesService
	Reports        *ReportsService
	Trucks         *TrucksService
	Incidents      *IncidentsService
}

// NewClient creates a Client against the given base URL. A nil tokens source
// produces a client that only performs unauthenticated calls.
func NewClient(baseURL string, tokens TokenSource) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No explicit timeout: the transport's own defaults apply, and
		// callers control cancellation through the request context.
		httpc:  &http.Client{},
		tokens: tokens,
	}

	c.Auth = &AuthService{c: c}
	c.Franchisees = &FranchiseesService{c: c}
	c.Applications = &FranchiseApplicationsService{c: c}
	c.Terms = &FranchiseTermsService{c: c}
	c.Warehouses = &WarehousesService{c: c}
	c.SupplyOrders = &SupplyOrdersService{c: c}
	c.Appointments = &AppointmentsService{c: c}
	c.Menus = &MenusService{c: c}
	c.LoyaltyCards = &LoyaltyCardsService{c: c}
	c.CustomerOrders = &CustomerOrdersService{c: c}
	c.Sales = &SalesService{c: c}
	c.Revenues = &RevenuesService{c: c}
	c.Reports = &ReportsService{c: c}
	c.Trucks = &TrucksService{c: c}
	c.Incidents = &IncidentsService{c: c}

	return c
}

// request describes one outbound call. Method defaults to GET, body is
// marshalled to JSON when non-nil.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do performs the request and decodes the JSON response into out. Passing a
// nil out skips decoding entirely, for endpoints that return no body.
func (c *Client) do(ctx context.Context, req request, out any) error {
	resp, body, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(req.path, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// send issues the HTTP call and reads the full response body. The error
// return is reserved for transport failures, which propagate unwrapped.
func (c *Client) send(ctx context.Context, req request) (*http.Response, []byte, error) {
	method := req.method
	if method == "" {
		method = http.MethodGet
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var reqBody io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding request body for %s: %w", req.path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	hreq, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, nil, err
	}

	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			hreq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(hreq)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

// newError builds the uniform API error for a failing response. The body is
// attached as details only when it parses as JSON.
func newError(path string, status int, body []byte) *Error {
	apiErr := &Error{
		Message: fmt.Sprintf("request to %s failed", path),
		Status:  status,
	}
	if len(body) > 0 && json.Valid(body) {
		apiErr.Details = json.RawMessage(bytes.Clone(body))
	}
	return apiErr
}
