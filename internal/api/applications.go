package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FranchiseApplicationsService manages franchise candidacies, both the
// applicant's own view and the admin review queue.
type FranchiseApplicationsService struct {
	c *Client
}

// List returns the current applicant's own applications.
func (s *FranchiseApplicationsService) List(ctx context.Context) ([]FranchiseApplication, error) {
	var out []FranchiseApplication
	if err := s.c.do(ctx, request{path: "/franchise-applications"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAdmin returns the admin review queue filtered by status. An empty
// status defaults to PENDING.
func (s *FranchiseApplicationsService) ListAdmin(ctx context.Context, status FranchiseApplicationStatus) ([]FranchiseApplication, error) {
	if status == "" {
		status = ApplicationPending
	}
	query := url.Values{"status": {string(status)}}

	var out []FranchiseApplication
	if err := s.c.do(ctx, request{path: "/franchise-applications/admin", query: query}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one application with its applicant details.
func (s *FranchiseApplicationsService) Get(ctx context.Context, applicationID int64) (*FranchiseApplication, error) {
	var out FranchiseApplication
	path := fmt.Sprintf("/franchise-applications/%d", applicationID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new application for the current franchisee.
func (s *FranchiseApplicationsService) Create(ctx context.Context, payload FranchiseApplicationRequest) (*FranchiseApplication, error) {
	var out FranchiseApplication
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/franchise-applications", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus approves or rejects an application (admin endpoint).
func (s *FranchiseApplicationsService) UpdateStatus(ctx context.Context, applicationID int64, status FranchiseApplicationStatus) (*FranchiseApplication, error) {
	var out FranchiseApplication
	path := fmt.Sprintf("/franchise-applications/admin/%d/status", applicationID)
	body := struct {
		Status FranchiseApplicationStatus `json:"status"`
	}{Status: status}
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePayment records the entry-fee payment state on an application.
func (s *FranchiseApplicationsService) UpdatePayment(ctx context.Context, applicationID int64, patch FranchiseApplicationPatch) (*FranchiseApplication, error) {
	var out FranchiseApplication
	path := fmt.Sprintf("/franchise-applications/%d", applicationID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FranchiseTermsService serves the public contractual terms.
type FranchiseTermsService struct {
	c *Client
}

// Get performs GET /franchise-terms.
func (s *FranchiseTermsService) Get(ctx context.Context) (*FranchiseTerms, error) {
	var out FranchiseTerms
	if err := s.c.do(ctx, request{path: "/franchise-terms"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
