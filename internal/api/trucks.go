package api

import (
	"context"
	"fmt"
	"net/http"
)

// TrucksService manages the truck fleet, per-truck incidents and
// maintenance records.
type TrucksService struct {
	c *Client
}

// List returns the whole fleet (admin endpoint).
func (s *TrucksService) List(ctx context.Context) ([]Truck, error) {
	var out []Truck
	if err := s.c.do(ctx, request{path: "/trucks"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mine returns the truck assigned to the current franchisee.
func (s *TrucksService) Mine(ctx context.Context) (*Truck, error) {
	var out Truck
	if err := s.c.do(ctx, request{path: "/trucks/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one truck by id.
func (s *TrucksService) Get(ctx context.Context, truckID int64) (*Truck, error) {
	var out Truck
	path := fmt.Sprintf("/trucks/%d", truckID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new truck in the fleet.
func (s *TrucksService) Create(ctx context.Context, payload TruckCreate) (*Truck, error) {
	var out Truck
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/trucks", body: payload}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a truck's base attributes.
func (s *TrucksService) Update(ctx context.Context, truckID int64, patch TruckPatch) (*Truck, error) {
	var out Truck
	path := fmt.Sprintf("/trucks/%d", truckID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Assign binds a truck to a franchisee. Passing nil unassigns it; the field
// is serialized explicitly so the backend receives a JSON null.
func (s *TrucksService) Assign(ctx context.Context, truckID int64, franchiseeID *int64) (*Truck, error) {
	body := struct {
		AssignedFranchiseeID *int64 `json:"assignedFranchiseeId"`
	}{AssignedFranchiseeID: franchiseeID}

	var out Truck
	path := fmt.Sprintf("/trucks/%d", truckID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Incidents lists the incidents reported against one truck.
func (s *TrucksService) Incidents(ctx context.Context, truckID int64) ([]Incident, error) {
	var out []Incident
	path := fmt.Sprintf("/trucks/%d/incidents", truckID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIncident reports a new problem with a truck.
func (s *TrucksService) CreateIncident(ctx context.Context, truckID int64, payload IncidentCreate) (*Incident, error) {
	var out Incident
	path := fmt.Sprintf("/trucks/%d/incidents", truckID)
	if err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MaintenanceRecords lists the maintenance history of one truck.
func (s *TrucksService) MaintenanceRecords(ctx context.Context, truckID int64) ([]MaintenanceRecord, error) {
	var out []MaintenanceRecord
	path := fmt.Sprintf("/trucks/%d/maintenance-records", truckID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMaintenanceRecord logs maintenance work on a truck; the backend
// resolves the linked incident as a side effect.
func (s *TrucksService) CreateMaintenanceRecord(ctx context.Context, truckID int64, payload MaintenanceRecordCreate) (*MaintenanceRecord, error) {
	var out MaintenanceRecord
	path := fmt.Sprintf("/trucks/%d/maintenance-records", truckID)
	if err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: payload}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncidentsService covers the cross-fleet incident views.
type IncidentsService struct {
	c *Client
}

// List returns all incidents (admin endpoint).
func (s *IncidentsService) List(ctx context.Context) ([]Incident, error) {
	var out []Incident
	if err := s.c.do(ctx, request{path: "/incidents"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one incident by id.
func (s *IncidentsService) Get(ctx context.Context, incidentID int64) (*Incident, error) {
	var out Incident
	path := fmt.Sprintf("/incidents/%d", incidentID)
	if err := s.c.do(ctx, request{path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches an incident's description or status.
func (s *IncidentsService) Update(ctx context.Context, incidentID int64, patch IncidentPatch) (*Incident, error) {
	var out Incident
	path := fmt.Sprintf("/incidents/%d", incidentID)
	if err := s.c.do(ctx, request{method: http.MethodPatch, path: path, body: patch}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
