package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticToken is a fixed TokenSource for tests.
type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestClientInjectsHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok-123"))
	_, err := client.Franchisees.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientOmitsAuthorizationWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken(""))
	_, err := client.Franchisees.List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader, "no Authorization header should be sent without a token")
}

func TestClientErrorCarriesJSONDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"franchisee not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Franchisees.Get(context.Background(), 42)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.JSONEq(t, `{"error":"franchisee not found"}`, string(apiErr.Details))
	assert.Equal(t, "franchisee not found", ErrorMessage(err, "fallback"))
}

func TestClientErrorDropsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Warehouses.List(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Nil(t, apiErr.Details)
	assert.Equal(t, "request to /warehouses failed", ErrorMessage(err, "fallback"))
}

func TestClientTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	_, err := client.Warehouses.List(context.Background())
	require.Error(t, err)

	_, ok := AsError(err)
	assert.False(t, ok, "transport failures must not be wrapped")
}

func TestSupplyOrderListFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	paid := false
	_, err := client.SupplyOrders.List(context.Background(), SupplyOrderListOptions{
		FranchiseeID: 7,
		Paid:         &paid,
		Status:       SupplyOrderDraft,
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "franchiseeId=7")
	assert.Contains(t, gotQuery, "paid=false")
	assert.Contains(t, gotQuery, "status=DRAFT")
}

func TestTruckAssignSendsExplicitNull(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":3,"plateNumber":"AB-123-CD"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Trucks.Assign(context.Background(), 3, nil)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	raw, ok := payload["assignedFranchiseeId"]
	require.True(t, ok, "assignedFranchiseeId must be present")
	assert.Equal(t, "null", string(raw))
}

func TestErrorMessageFallbacks(t *testing.T) {
	assert.Equal(t, "fallback", ErrorMessage(nil, "fallback"))

	err := &Error{Message: "request to /x failed", Status: 503}
	assert.Equal(t, "request to /x failed", ErrorMessage(err, "fallback"))

	withMessage := &Error{
		Message: "request to /x failed",
		Status:  400,
		Details: json.RawMessage(`{"message":"bad dates"}`),
	}
	assert.Equal(t, "bad dates", ErrorMessage(withMessage, "fallback"))
}
