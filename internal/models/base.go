package models

import "time"

// Meta holds the store-managed identity and timestamps every record carries.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetMeta exposes the embedded Meta to the resource engine.
func (m *Meta) GetMeta() *Meta { return m }

// Status is embedded by resources that can be disabled.
type Status struct {
	IsActive *bool `json:"isActive,omitempty"`
}

// Active reports the effective flag; records without one count as active.
func (s Status) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// RefSummary is a referenced record inlined at read time.
type RefSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Missing bool   `json:"missing,omitempty"`
}

// ToggleResult is returned by status toggles.
type ToggleResult struct {
	IsActive bool `json:"isActive"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
