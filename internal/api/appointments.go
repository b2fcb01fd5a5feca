package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AppointmentsService schedules warehouse pickups.
type AppointmentsService struct {
	c *Client
}

// AppointmentListOptions filter appointment listings. Zero values are
// omitted from the query string.
type AppointmentListOptions struct {
	From        string
	To          string
	Type        AppointmentType
	WarehouseID int64
}

func (o AppointmentListOptions) values() url.Values {
	query := url.Values{}
	if o.From != "" {
		query.Set("from", o.From)
	}
	if o.To != "" {
		query.Set("to", o.To)
	}
	if o.Type != "" {
		query.Set("type", string(o.Type))
	}
	if o.WarehouseID != 0 {
		query.Set("warehouseId", strconv.FormatInt(o.WarehouseID, 10))
	}
	return query
}

// List returns appointments across all franchisees (admin endpoint).
func (s *AppointmentsService) List(ctx context.Context, opts AppointmentListOptions) ([]Appointment, error) {
	var out []Appointment
	if err := s.c.do(ctx, request{path: "/appointments", query: opts.values()}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMine returns the current franchisee's appointments.
func (s *AppointmentsService) ListMine(ctx context.Context, opts AppointmentListOptions) ([]Appointment, error) {
	var out []Appointment
	if err := s.c.do(ctx, request{path: "/appointments/me", query: opts.values()}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create books a new pickup slot.
func (s *AppointmentsService) Create(ctx context.Context, payload AppointmentCreate) (*Appointment, error) {
	var out Appointment
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/appointments", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reschedules or cancels an appointment.
func (s *AppointmentsService) Update(ctx context.Context, appointmentID int64, patch AppointmentPatch) (*Appointment, error) {
	var out Appointment
	path := fmt.Sprintf("/appointments/%d", appointmentID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
