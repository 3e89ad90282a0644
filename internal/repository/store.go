package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrNotFound is returned when a document does not exist in its collection.
var ErrNotFound = errors.New("document not found")

// Store-managed document keys.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Document is a schemaless record. Numbers decode as json.Number.
type Document map[string]any

// ID returns the document identifier, if any.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// String returns a string field or "".
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

// Clone deep-copies the document through JSON, normalising numbers to json.Number.
// time.Time values on meta keys are kept as is.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	meta := map[string]any{}
	for _, key := range []string{FieldID, FieldCreatedAt, FieldUpdatedAt} {
		if v, ok := d[key]; ok {
			meta[key] = v
		}
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	out, err := DecodeDocument(raw)
	if err != nil {
		return nil
	}
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// WithoutMeta returns a copy lacking the store-managed keys.
func (d Document) WithoutMeta() Document {
	out := make(Document, len(d))
	for k, v := range d {
		switch k {
		case FieldID, FieldCreatedAt, FieldUpdatedAt:
			continue
		}
		out[k] = v
	}
	return out
}

// DecodeDocument parses a JSON object keeping numbers as json.Number.
func DecodeDocument(raw []byte) (Document, error) {
	var doc Document
	if err := decodeJSON(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document must be a JSON object")
	}
	return doc, nil
}

// Operator is a condition comparison.
type Operator int

const (
	// OpEq matches JSON-equal values.
	OpEq Operator = iota
	// OpEqFold matches strings equal ignoring case. It is anchored, never a substring match.
	OpEqFold
	// OpNull matches absent or null fields.
	OpNull
	// OpNotFalse matches fields that are absent or anything but false.
	OpNotFalse
)

// Condition restricts a query to documents whose field satisfies Op against Value.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Eq builds an equality condition. A nil value matches absent or null fields.
func Eq(field string, value any) Condition {
	if value == nil {
		return Condition{Field: field, Op: OpNull}
	}
	return Condition{Field: field, Op: OpEq, Value: value}
}

// Sort orders results by a field. Fold sorts case-insensitively.
type Sort struct {
	Field string
	Desc  bool
	Fold  bool
}

// Query selects documents of a collection. Ties in ordering always fall back to id ascending.
type Query struct {
	Conditions []Condition
	ExcludeID  string
	Sort       []Sort
	Limit      int
	Offset     int
}

// Store is the document-store collaborator used by the resource engine.
type Store interface {
	Find(ctx context.Context, collection string, q Query) ([]Document, error)
	Count(ctx context.Context, collection string, q Query) (int, error)
	Exists(ctx context.Context, collection string, q Query) (bool, error)
	FindByID(ctx context.Context, collection, id string) (Document, error)
	// Insert assigns ids and timestamps. Either every document is stored or none is.
	Insert(ctx context.Context, collection string, docs ...Document) ([]Document, error)
	// Replace overwrites the document body and refreshes updatedAt. Keys listed in preserve keep their stored value.
	Replace(ctx context.Context, collection, id string, doc Document, preserve ...string) (Document, error)
	Delete(ctx context.Context, collection, id string) error
	// Promote sets field true on id and false on every other document matching scope, atomically.
	Promote(ctx context.Context, collection, id, field string, scope []Condition) error
	// Append adds entry to the array held in field.
	Append(ctx context.Context, collection, id, field string, entry any) error
	Ping(ctx context.Context) error
}

var fieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func validateField(field string) error {
	if !fieldPattern.MatchString(field) {
		return fmt.Errorf("invalid field name %q", field)
	}
	return nil
}

func validateQuery(q Query) error {
	for _, c := range q.Conditions {
		if err := validateField(c.Field); err != nil {
			return err
		}
	}
	for _, s := range q.Sort {
		if err := validateField(s.Field); err != nil {
			return err
		}
	}
	return nil
}

// now returns a UTC timestamp at the precision PostgreSQL keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
