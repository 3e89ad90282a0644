package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	id        string
	body      Document
	createdAt time.Time
	updatedAt time.Time
}

func (e *memoryEntry) document() Document {
	doc := e.body.Clone()
	doc[FieldID] = e.id
	doc[FieldCreatedAt] = e.createdAt
	doc[FieldUpdatedAt] = e.updatedAt
	return doc
}

// MemoryStore is an in-process Store with the same semantics as PostgresStore.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memoryEntry
	last        time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]*memoryEntry)}
}

// tick returns a strictly increasing timestamp so createdAt orders insertions. Callers hold mu.
func (s *MemoryStore) tick() time.Time {
	ts := now()
	if !ts.After(s.last) {
		ts = s.last.Add(time.Microsecond)
	}
	s.last = ts
	return ts
}

func (s *MemoryStore) collection(name string) map[string]*memoryEntry {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]*memoryEntry)
		s.collections[name] = c
	}
	return c
}

func (e *memoryEntry) value(field string) (any, bool) {
	switch field {
	case FieldID:
		return e.id, true
	case FieldCreatedAt:
		return e.createdAt, true
	case FieldUpdatedAt:
		return e.updatedAt, true
	}
	v, ok := e.body[field]
	return v, ok
}

func (e *memoryEntry) matches(c Condition) bool {
	v, present := e.value(c.Field)
	switch c.Op {
	case OpEq:
		return present && jsonEqual(normalize(v), normalize(c.Value))
	case OpEqFold:
		s, ok := v.(string)
		want, wok := c.Value.(string)
		return ok && wok && strings.ToLower(s) == strings.ToLower(want)
	case OpNull:
		return !present || v == nil
	case OpNotFalse:
		b, ok := v.(bool)
		return !ok || b
	}
	return false
}

// normalize maps Go values onto their decoded-JSON shape.
func normalize(v any) any {
	switch v.(type) {
	case nil, string, bool, []any, map[string]any:
		return v
	}
	if _, ok := toFloat(v); ok {
		return v
	}
	wrapped := Document{"v": v}.Clone()
	if wrapped == nil {
		return v
	}
	return wrapped["v"]
}

func (s *MemoryStore) selectEntries(collection string, q Query) ([]*memoryEntry, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	var out []*memoryEntry
	for _, e := range s.collections[collection] {
		if q.ExcludeID != "" && e.id == q.ExcludeID {
			continue
		}
		ok := true
		for _, c := range q.Conditions {
			if !e.matches(c) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, srt := range q.Sort {
			if c := compareEntries(out[i], out[j], srt); c != 0 {
				return c < 0
			}
		}
		return out[i].id < out[j].id
	})
	return out, nil
}

func compareEntries(a, b *memoryEntry, s Sort) int {
	va, okA := a.value(s.Field)
	vb, okB := b.value(s.Field)
	// missing and null values sort last in both directions
	nullA, nullB := !okA || va == nil, !okB || vb == nil
	switch {
	case nullA && nullB:
		return 0
	case nullA:
		return 1
	case nullB:
		return -1
	}

	var c int
	ta, isTimeA := va.(time.Time)
	tb, isTimeB := vb.(time.Time)
	if isTimeA && isTimeB {
		c = ta.Compare(tb)
	} else {
		c = compareJSON(va, vb, s.Fold)
	}
	if s.Desc {
		return -c
	}
	return c
}

// Find returns documents matching q.
func (s *MemoryStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.selectEntries(collection, q)
	if err != nil {
		return nil, err
	}
	if q.Offset > 0 {
		if q.Offset >= len(entries) {
			entries = nil
		} else {
			entries = entries[q.Offset:]
		}
	}
	if q.Limit > 0 && len(entries) > q.Limit {
		entries = entries[:q.Limit]
	}
	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, e.document())
	}
	return docs, nil
}

// Count returns the number of matching documents.
func (s *MemoryStore) Count(ctx context.Context, collection string, q Query) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.selectEntries(collection, q)
	return len(entries), err
}

// Exists reports whether any document matches q.
func (s *MemoryStore) Exists(ctx context.Context, collection string, q Query) (bool, error) {
	n, err := s.Count(ctx, collection, q)
	return n > 0, err
}

// FindByID returns one document.
func (s *MemoryStore) FindByID(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.document(), nil
}

// Insert stores all documents or none.
func (s *MemoryStore) Insert(ctx context.Context, collection string, docs ...Document) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*memoryEntry, 0, len(docs))
	for _, doc := range docs {
		body := doc.WithoutMeta().Clone()
		if body == nil {
			return nil, errUnencodable(collection)
		}
		ts := s.tick()
		entries = append(entries, &memoryEntry{id: uuid.NewString(), body: body, createdAt: ts, updatedAt: ts})
	}

	c := s.collection(collection)
	out := make([]Document, 0, len(entries))
	for _, e := range entries {
		c[e.id] = e
		out = append(out, e.document())
	}
	return out, nil
}

// Replace overwrites a document body keeping preserved keys.
func (s *MemoryStore) Replace(ctx context.Context, collection, id string, doc Document, preserve ...string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	body := doc.WithoutMeta().Clone()
	if body == nil {
		return nil, errUnencodable(collection)
	}
	for _, key := range preserve {
		delete(body, key)
		if v, ok := e.body[key]; ok {
			body[key] = v
		}
	}
	e.body = body
	e.updatedAt = s.tick()
	return e.document(), nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collections[collection]
	if _, ok := c[id]; !ok {
		return ErrNotFound
	}
	delete(c, id)
	return nil
}

// Promote flags id and demotes the other flagged documents of the scope.
func (s *MemoryStore) Promote(ctx context.Context, collection, id, field string, scope []Condition) error {
	if err := validateField(field); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	ts := s.tick()
	for _, e := range s.collections[collection] {
		if e == target {
			continue
		}
		if flagged, _ := e.body[field].(bool); !flagged {
			continue
		}
		inScope := true
		for _, c := range scope {
			if !e.matches(c) {
				inScope = false
				break
			}
		}
		if inScope {
			e.body[field] = false
			e.updatedAt = ts
		}
	}
	target.body[field] = true
	target.updatedAt = ts
	return nil
}

// Append pushes entry onto the array in field.
func (s *MemoryStore) Append(ctx context.Context, collection, id, field string, entry any) error {
	if err := validateField(field); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	wrapped := Document{"v": entry}.Clone()
	if wrapped == nil {
		return errUnencodable(collection)
	}
	list, _ := e.body[field].([]any)
	e.body[field] = append(append([]any{}, list...), wrapped["v"])
	e.updatedAt = s.tick()
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func errUnencodable(collection string) error {
	return fmt.Errorf("encode %s document", collection)
}
