package service

import (
	"context"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

// RecordPtr constrains engine records to pointers exposing their Meta.
type RecordPtr[T any] interface {
	*T
	GetMeta() *models.Meta
}

// UniqueKey declares a uniqueness constraint. Empty string values count as null and null matches only null.
type UniqueKey struct {
	Fields          []string
	CaseInsensitive bool
	Message         string
}

// Reference is an id field that must point at an existing record. When As is set the referenced
// record's Display field is copied into As on every write that supplies the id.
type Reference struct {
	Field      string
	Collection string
	Label      string
	Display    string
	As         string
	// ActiveOnly rejects targets whose isActive is false, for collections that hide deleted records.
	ActiveOnly bool
}

// Populate inlines a referenced record's summary into As at read time.
type Populate struct {
	Field       string
	Collection  string
	Display     string
	As          string
	Placeholder string
}

// FilterKind decides how a list query parameter is parsed.
type FilterKind int

const (
	FilterString FilterKind = iota
	FilterBool
	FilterID
)

// Filter exposes an equality filter on a list endpoint.
type Filter struct {
	Param string
	Field string
	Kind  FilterKind
}

// Singleton declares a flag that at most one record per scope may hold.
type Singleton struct {
	Field string
	Scope []string
	// ProtectDelete refuses to delete the flagged record with ProtectMessage.
	ProtectDelete  bool
	ProtectMessage string
	Route          string
}

// Lookup loads a referenced record. Missing records surface as a 400 NotFound error.
type Lookup func(collection, id string) (repository.Document, error)

// Schema configures an Engine for one resource.
type Schema[T any] struct {
	Collection string
	Label      string
	Path       string

	Unique     []UniqueKey
	References []Reference
	Populate   []Populate
	Filters    []Filter
	Sort       []repository.Sort

	// Status resources carry isActive and only enforce uniqueness among active records.
	Status       bool
	SoftDelete   bool
	HideInactive bool
	// ToggleAliases are extra route names for toggle-status.
	ToggleAliases []string
	Singleton     *Singleton

	// Managed keys are owned by the server and stripped from payloads.
	Managed []string
	// AppendOnly keys are stripped from payloads and survive every replace.
	AppendOnly []string
	Bulk       bool
	Columns    []export.Column

	Prepare func(rec *T, creating bool)
	Verify  func(ctx context.Context, rec *T, lookup Lookup) error
}
