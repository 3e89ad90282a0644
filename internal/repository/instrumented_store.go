package repository

import (
	"context"
	"errors"
	"time"
)

// Observer receives the latency and outcome of every store operation.
type Observer interface {
	ObserveStoreOperation(operation, collection string, duration time.Duration, err error)
}

// InstrumentedStore decorates a Store with operation metrics. Not-found results are not counted as failures.
type InstrumentedStore struct {
	next     Store
	observer Observer
}

// NewInstrumentedStore wraps next. A nil observer returns next unchanged.
func NewInstrumentedStore(next Store, observer Observer) Store {
	if observer == nil {
		return next
	}
	return &InstrumentedStore{next: next, observer: observer}
}

func (s *InstrumentedStore) observe(op, collection string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.observer.ObserveStoreOperation(op, collection, time.Since(start), err)
}

func (s *InstrumentedStore) Find(ctx context.Context, collection string, q Query) (docs []Document, err error) {
	defer func(start time.Time) { s.observe("find", collection, start, err) }(time.Now())
	return s.next.Find(ctx, collection, q)
}

func (s *InstrumentedStore) Count(ctx context.Context, collection string, q Query) (n int, err error) {
	defer func(start time.Time) { s.observe("count", collection, start, err) }(time.Now())
	return s.next.Count(ctx, collection, q)
}

func (s *InstrumentedStore) Exists(ctx context.Context, collection string, q Query) (ok bool, err error) {
	defer func(start time.Time) { s.observe("exists", collection, start, err) }(time.Now())
	return s.next.Exists(ctx, collection, q)
}

func (s *InstrumentedStore) FindByID(ctx context.Context, collection, id string) (doc Document, err error) {
	defer func(start time.Time) { s.observe("find_by_id", collection, start, err) }(time.Now())
	return s.next.FindByID(ctx, collection, id)
}

func (s *InstrumentedStore) Insert(ctx context.Context, collection string, docs ...Document) (out []Document, err error) {
	defer func(start time.Time) { s.observe("insert", collection, start, err) }(time.Now())
	return s.next.Insert(ctx, collection, docs...)
}

func (s *InstrumentedStore) Replace(ctx context.Context, collection, id string, doc Document, preserve ...string) (out Document, err error) {
	defer func(start time.Time) { s.observe("replace", collection, start, err) }(time.Now())
	return s.next.Replace(ctx, collection, id, doc, preserve...)
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", collection, start, err) }(time.Now())
	return s.next.Delete(ctx, collection, id)
}

func (s *InstrumentedStore) Promote(ctx context.Context, collection, id, field string, scope []Condition) (err error) {
	defer func(start time.Time) { s.observe("promote", collection, start, err) }(time.Now())
	return s.next.Promote(ctx, collection, id, field, scope)
}

func (s *InstrumentedStore) Append(ctx context.Context, collection, id, field string, entry any) (err error) {
	defer func(start time.Time) { s.observe("append", collection, start, err) }(time.Now())
	return s.next.Append(ctx, collection, id, field, entry)
}

func (s *InstrumentedStore) Ping(ctx context.Context) (err error) {
	defer func(start time.Time) { s.observe("ping", "", start, err) }(time.Now())
	return s.next.Ping(ctx)
}
