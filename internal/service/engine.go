package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

const (
	fieldIsActive   = "isActive"
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListParams narrows a list query. Paging applies when Page or Limit is set.
type ListParams struct {
	Filters         map[string]string
	IncludeInactive bool
	Page            int
	Limit           int
}

// Engine implements the CRUD operations of one resource over the document store.
type Engine[T any, P RecordPtr[T]] struct {
	schema    Schema[T]
	store     repository.Store
	validator *Validator
	logger    *zap.Logger
	listeners []func(ctx context.Context)
}

// NewEngine builds the engine for schema.
func NewEngine[T any, P RecordPtr[T]](schema Schema[T], store repository.Store, validator *Validator, logger *zap.Logger) *Engine[T, P] {
	if validator == nil {
		validator = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine[T, P]{
		schema:    schema,
		store:     store,
		validator: validator,
		logger:    logger.With(zap.String("collection", schema.Collection)),
	}
}

// Schema returns the resource declaration.
func (e *Engine[T, P]) Schema() Schema[T] {
	return e.schema
}

// OnChange registers fn to run after every successful write. Register before serving traffic.
func (e *Engine[T, P]) OnChange(fn func(ctx context.Context)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine[T, P]) changed(ctx context.Context) {
	for _, fn := range e.listeners {
		fn(ctx)
	}
}

// Get returns one record with populated references. Inactive records stay visible by id.
func (e *Engine[T, P]) Get(ctx context.Context, rawID string) (P, error) {
	_, doc, err := e.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return e.present(ctx, doc)
}

// List returns the records matching params in the schema order.
func (e *Engine[T, P]) List(ctx context.Context, params ListParams) ([]P, *models.Pagination, error) {
	q, err := e.listQuery(params)
	if err != nil {
		return nil, nil, err
	}

	var pagination *models.Pagination
	if params.Page > 0 || params.Limit > 0 {
		page := max(params.Page, 1)
		limit := params.Limit
		if limit <= 0 {
			limit = defaultPageSize
		}
		limit = min(limit, maxPageSize)

		total, err := e.store.Count(ctx, e.schema.Collection, q)
		if err != nil {
			return nil, nil, e.storeError(err, "count")
		}
		pagination = &models.Pagination{
			CurrentPage:  page,
			TotalPages:   (total + limit - 1) / limit,
			TotalItems:   total,
			ItemsPerPage: limit,
		}
		if page > pagination.TotalPages {
			return []P{}, pagination, nil
		}
		q.Limit = limit
		q.Offset = (page - 1) * limit
	}

	docs, err := e.store.Find(ctx, e.schema.Collection, q)
	if err != nil {
		return nil, nil, e.storeError(err, "list")
	}
	items, err := e.presentAll(ctx, docs)
	if err != nil {
		return nil, nil, err
	}
	return items, pagination, nil
}

// All returns every record matching conds regardless of status, in the schema order.
func (e *Engine[T, P]) All(ctx context.Context, conds ...repository.Condition) ([]P, error) {
	docs, err := e.store.Find(ctx, e.schema.Collection, repository.Query{Conditions: conds, Sort: e.schema.Sort})
	if err != nil {
		return nil, e.storeError(err, "list")
	}
	return e.presentAll(ctx, docs)
}

// Create validates payload, enforces uniqueness and the singleton flag, and stores a new record.
func (e *Engine[T, P]) Create(ctx context.Context, payload repository.Document) (P, error) {
	doc, err := e.build(ctx, nil, payload)
	if err != nil {
		return nil, err
	}
	if err := e.checkUnique(ctx, doc, ""); err != nil {
		return nil, err
	}
	promote, err := e.takeSingletonFlag(doc, nil, payload)
	if err != nil {
		return nil, err
	}

	stored, err := e.store.Insert(ctx, e.schema.Collection, doc)
	if err != nil {
		return nil, e.storeError(err, "create")
	}
	e.changed(ctx)
	created := stored[0]
	if promote {
		if created, err = e.promote(ctx, created); err != nil {
			return nil, err
		}
	}
	return e.present(ctx, created)
}

// BulkCreate stores every payload or none. Duplicates inside the batch are rejected before the store is consulted.
func (e *Engine[T, P]) BulkCreate(ctx context.Context, payloads []repository.Document) ([]P, error) {
	if len(payloads) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one item is required")
	}

	docs := make([]repository.Document, 0, len(payloads))
	for i, payload := range payloads {
		doc, err := e.build(ctx, nil, payload)
		if err != nil {
			return nil, itemError(i, err)
		}
		if sg := e.schema.Singleton; sg != nil {
			doc[sg.Field] = false
		}
		docs = append(docs, doc)
	}

	for _, key := range e.schema.Unique {
		seen := make(map[string]int, len(docs))
		for i, doc := range docs {
			if e.schema.Status && !active(doc) {
				continue
			}
			sig := uniqueSignature(key, doc)
			if first, dup := seen[sig]; dup {
				return nil, appErrors.Clone(appErrors.ErrDuplicate,
					fmt.Sprintf("item %d: duplicates item %d on %s", i, first, strings.Join(key.Fields, ", ")))
			}
			seen[sig] = i
		}
	}
	for i, doc := range docs {
		if err := e.checkUnique(ctx, doc, ""); err != nil {
			return nil, itemError(i, err)
		}
	}

	stored, err := e.store.Insert(ctx, e.schema.Collection, docs...)
	if err != nil {
		return nil, e.storeError(err, "create")
	}
	e.changed(ctx)
	return e.presentAll(ctx, stored)
}

// Update merges patch over the stored record. Absent fields keep their values.
func (e *Engine[T, P]) Update(ctx context.Context, rawID string, patch repository.Document) (P, error) {
	id, existing, err := e.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	doc, err := e.build(ctx, existing, patch)
	if err != nil {
		return nil, err
	}
	if err := e.checkUnique(ctx, doc, id); err != nil {
		return nil, err
	}
	promote, err := e.takeSingletonFlag(doc, existing, patch)
	if err != nil {
		return nil, err
	}

	updated, err := e.replace(ctx, id, doc)
	if err != nil {
		return nil, err
	}
	if promote {
		if updated, err = e.promote(ctx, updated); err != nil {
			return nil, err
		}
	}
	return e.present(ctx, updated)
}

// Modify loads the record, applies fn and stores the validated result. Unlike Update it may change managed fields.
func (e *Engine[T, P]) Modify(ctx context.Context, rawID string, fn func(P) error) (P, error) {
	id, existing, err := e.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	rec, err := e.decode(existing)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read "+e.schema.Label)
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	trimStrings(rec)
	if err := e.validator.Check(rec); err != nil {
		return nil, err
	}
	doc, err := e.encode(rec)
	if err != nil {
		return nil, err
	}
	updated, err := e.replace(ctx, id, doc)
	if err != nil {
		return nil, err
	}
	return e.present(ctx, updated)
}

// Append adds entry to an append-only array field.
func (e *Engine[T, P]) Append(ctx context.Context, rawID, field string, entry any) error {
	id, err := CanonicalID(rawID)
	if err != nil {
		return err
	}
	if err := e.store.Append(ctx, e.schema.Collection, id, field, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return e.notFound()
		}
		return e.storeError(err, "append to")
	}
	e.changed(ctx)
	return nil
}

// Delete soft-deletes status resources declared SoftDelete and removes everything else.
func (e *Engine[T, P]) Delete(ctx context.Context, rawID string) error {
	id, existing, err := e.load(ctx, rawID)
	if err != nil {
		return err
	}

	sg := e.schema.Singleton
	if sg != nil && sg.ProtectDelete && existing[sg.Field] == true {
		msg := sg.ProtectMessage
		if msg == "" {
			msg = fmt.Sprintf("cannot delete the flagged %s", e.schema.Label)
		}
		return appErrors.Clone(appErrors.ErrConflict, msg)
	}

	if !e.schema.SoftDelete {
		if err := e.store.Delete(ctx, e.schema.Collection, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return e.notFound()
			}
			return e.storeError(err, "delete")
		}
		e.changed(ctx)
		return nil
	}

	if e.schema.HideInactive && !active(existing) {
		return e.notFound()
	}
	body := existing.WithoutMeta()
	body[fieldIsActive] = false
	if sg != nil {
		body[sg.Field] = false
	}
	_, err = e.replace(ctx, id, body)
	return err
}

// ToggleStatus flips isActive and returns the new value. Re-activation re-checks uniqueness.
func (e *Engine[T, P]) ToggleStatus(ctx context.Context, rawID string) (bool, error) {
	if !e.schema.Status {
		return false, appErrors.Clone(appErrors.ErrValidation, e.schema.Label+" has no status")
	}
	id, existing, err := e.load(ctx, rawID)
	if err != nil {
		return false, err
	}

	next := !active(existing)
	body := existing.WithoutMeta()
	body[fieldIsActive] = next
	if next {
		if err := e.checkUnique(ctx, body, id); err != nil {
			return false, err
		}
	} else if sg := e.schema.Singleton; sg != nil {
		body[sg.Field] = false
	}
	if _, err := e.replace(ctx, id, body); err != nil {
		return false, err
	}
	return next, nil
}

// SetDefault makes the record the single flagged one of its scope.
func (e *Engine[T, P]) SetDefault(ctx context.Context, rawID string) (P, error) {
	sg := e.schema.Singleton
	if sg == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, e.schema.Label+" has no default record")
	}
	_, existing, err := e.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if e.schema.Status && !active(existing) {
		return nil, e.inactiveFlagError()
	}
	promoted, err := e.promote(ctx, existing)
	if err != nil {
		return nil, err
	}
	return e.present(ctx, promoted)
}

// Dataset renders the filtered list as export rows using the declared columns.
func (e *Engine[T, P]) Dataset(ctx context.Context, params ListParams) (export.Dataset, error) {
	q, err := e.listQuery(params)
	if err != nil {
		return export.Dataset{}, err
	}
	docs, err := e.store.Find(ctx, e.schema.Collection, q)
	if err != nil {
		return export.Dataset{}, e.storeError(err, "export")
	}

	columns := e.schema.Columns
	if len(columns) == 0 {
		columns = []export.Column{{Key: repository.FieldID, Title: "ID"}}
	}
	rows := make([]map[string]string, 0, len(docs))
	for _, doc := range docs {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			row[col.Key] = cell(doc[col.Key])
		}
		rows = append(rows, row)
	}
	return export.Dataset{Columns: columns, Rows: rows}, nil
}

func cell(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return repository.Stringify(v)
}

func (e *Engine[T, P]) listQuery(params ListParams) (repository.Query, error) {
	q := repository.Query{Sort: e.schema.Sort}
	for _, f := range e.schema.Filters {
		raw := strings.TrimSpace(params.Filters[f.Param])
		if raw == "" {
			continue
		}
		switch f.Kind {
		case FilterID:
			id, err := CanonicalID(raw)
			if err != nil {
				return q, err
			}
			q.Conditions = append(q.Conditions, repository.Eq(f.Field, id))
		case FilterBool:
			b, err := parseBool(f.Param, raw)
			if err != nil {
				return q, err
			}
			q.Conditions = append(q.Conditions, repository.Eq(f.Field, b))
		default:
			q.Conditions = append(q.Conditions, repository.Eq(f.Field, raw))
		}
	}

	if !e.schema.Status {
		return q, nil
	}
	if raw := strings.TrimSpace(params.Filters[fieldIsActive]); raw != "" {
		b, err := parseBool(fieldIsActive, raw)
		if err != nil {
			return q, err
		}
		if b {
			q.Conditions = append(q.Conditions, repository.Condition{Field: fieldIsActive, Op: repository.OpNotFalse})
		} else {
			q.Conditions = append(q.Conditions, repository.Eq(fieldIsActive, false))
		}
	} else if !params.IncludeInactive {
		q.Conditions = append(q.Conditions, repository.Condition{Field: fieldIsActive, Op: repository.OpNotFalse})
	}
	return q, nil
}

func parseBool(param, raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, appErrors.Clone(appErrors.ErrValidation, param+" must be true or false")
}

// build turns a payload, merged over existing when updating, into a validated document ready to store.
func (e *Engine[T, P]) build(ctx context.Context, existing, payload repository.Document) (repository.Document, error) {
	creating := existing == nil
	input := e.sanitize(payload)

	merged := input
	if !creating {
		merged = existing.WithoutMeta()
		for _, p := range e.schema.Populate {
			delete(merged, p.As)
		}
		for k, v := range input {
			merged[k] = v
		}
	}
	if e.schema.Status {
		if v, ok := merged[fieldIsActive]; !ok || v == nil {
			merged[fieldIsActive] = true
		}
	}

	rec, err := e.decode(merged)
	if err != nil {
		return nil, err
	}
	if e.schema.Prepare != nil {
		e.schema.Prepare((*T)(rec), creating)
	}
	trimStrings(rec)
	if err := e.validator.Check(rec); err != nil {
		return nil, err
	}
	doc, err := e.encode(rec)
	if err != nil {
		return nil, err
	}

	for _, ref := range e.schema.References {
		if !creating {
			if _, supplied := input[ref.Field]; !supplied {
				continue
			}
		}
		if err := e.resolve(ctx, doc, existing, ref); err != nil {
			return nil, err
		}
	}

	if e.schema.Verify == nil {
		return doc, nil
	}
	if rec, err = e.decode(doc); err != nil {
		return nil, err
	}
	if err := e.schema.Verify(ctx, (*T)(rec), e.lookup(ctx)); err != nil {
		return nil, err
	}
	return e.encode(rec)
}

// sanitize drops keys a caller may not write.
func (e *Engine[T, P]) sanitize(payload repository.Document) repository.Document {
	out := payload.WithoutMeta()
	for _, ref := range e.schema.References {
		if ref.As != "" {
			delete(out, ref.As)
		}
	}
	for _, p := range e.schema.Populate {
		delete(out, p.As)
	}
	for _, key := range e.schema.Managed {
		delete(out, key)
	}
	for _, key := range e.schema.AppendOnly {
		delete(out, key)
	}
	return out
}

// resolve checks ref on doc and copies the display name. An ActiveOnly target that is inactive is accepted
// only when existing already points at it.
func (e *Engine[T, P]) resolve(ctx context.Context, doc, existing repository.Document, ref Reference) error {
	raw, _ := doc[ref.Field].(string)
	if strings.TrimSpace(raw) == "" {
		doc[ref.Field] = nil
		if ref.As != "" {
			delete(doc, ref.As)
		}
		return nil
	}
	target, err := e.fetchReference(ctx, ref.Collection, ref.Label, raw)
	if err != nil {
		return err
	}
	if ref.ActiveOnly && !active(target) && (existing == nil || repository.Stringify(existing[ref.Field]) != target.ID()) {
		return referenceNotFound(ref.Label)
	}
	doc[ref.Field] = target.ID()
	if ref.As != "" {
		doc[ref.As] = target.String(ref.Display)
	}
	return nil
}

// fetchReference loads a referenced record. A missing record is caller input, so it reports 400.
func (e *Engine[T, P]) fetchReference(ctx context.Context, collection, label, raw string) (repository.Document, error) {
	id, err := CanonicalID(raw)
	if err != nil {
		return nil, err
	}
	doc, err := e.store.FindByID(ctx, collection, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, referenceNotFound(label)
	}
	if err != nil {
		return nil, e.storeError(err, "resolve "+label+" for")
	}
	return doc, nil
}

func referenceNotFound(label string) error {
	return appErrors.WithStatus(appErrors.Clone(appErrors.ErrNotFound, label+" not found"), http.StatusBadRequest)
}

func (e *Engine[T, P]) lookup(ctx context.Context) Lookup {
	return func(collection, id string) (repository.Document, error) {
		label := collection
		for _, ref := range e.schema.References {
			if ref.Collection == collection {
				label = ref.Label
				break
			}
		}
		return e.fetchReference(ctx, collection, label, id)
	}
}

func (e *Engine[T, P]) checkUnique(ctx context.Context, doc repository.Document, excludeID string) error {
	if e.schema.Status && !active(doc) {
		return nil
	}
	for _, key := range e.schema.Unique {
		conds := uniqueConditions(key, doc)
		if e.schema.Status {
			conds = append(conds, repository.Condition{Field: fieldIsActive, Op: repository.OpNotFalse})
		}
		exists, err := e.store.Exists(ctx, e.schema.Collection, repository.Query{Conditions: conds, ExcludeID: excludeID})
		if err != nil {
			return e.storeError(err, "check uniqueness of")
		}
		if exists {
			msg := key.Message
			if msg == "" {
				msg = fmt.Sprintf("%s with the same %s already exists", e.schema.Label, strings.Join(key.Fields, ", "))
			}
			return appErrors.Clone(appErrors.ErrDuplicate, msg)
		}
	}
	return nil
}

func uniqueConditions(key UniqueKey, doc repository.Document) []repository.Condition {
	conds := make([]repository.Condition, 0, len(key.Fields)+1)
	for _, field := range key.Fields {
		v := doc[field]
		if s, ok := v.(string); ok {
			if s == "" {
				v = nil
			} else if key.CaseInsensitive {
				conds = append(conds, repository.Condition{Field: field, Op: repository.OpEqFold, Value: s})
				continue
			}
		}
		conds = append(conds, repository.Eq(field, v))
	}
	return conds
}

func uniqueSignature(key UniqueKey, doc repository.Document) string {
	parts := make([]string, len(key.Fields))
	for i, field := range key.Fields {
		s := repository.Stringify(doc[field])
		if key.CaseInsensitive {
			s = strings.ToLower(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, "\x1f")
}

// takeSingletonFlag clears a requested singleton flag on doc and reports whether Promote must set it after the write.
// A flag carried over from existing is dropped when the record goes inactive; only a flag set by payload conflicts.
func (e *Engine[T, P]) takeSingletonFlag(doc, existing, payload repository.Document) (bool, error) {
	sg := e.schema.Singleton
	if sg == nil {
		return false, nil
	}
	if want, _ := doc[sg.Field].(bool); !want {
		doc[sg.Field] = false
		return false, nil
	}
	if e.schema.Status && !active(doc) {
		if _, requested := payload[sg.Field]; !requested {
			doc[sg.Field] = false
			return false, nil
		}
		return false, e.inactiveFlagError()
	}
	if existing != nil && existing[sg.Field] == true && sameScope(sg, existing, doc) {
		return false, nil
	}
	doc[sg.Field] = false
	return true, nil
}

func sameScope(sg *Singleton, a, b repository.Document) bool {
	for _, field := range sg.Scope {
		if repository.Stringify(a[field]) != repository.Stringify(b[field]) {
			return false
		}
	}
	return true
}

func (e *Engine[T, P]) promote(ctx context.Context, doc repository.Document) (repository.Document, error) {
	sg := e.schema.Singleton
	scope := make([]repository.Condition, 0, len(sg.Scope))
	for _, field := range sg.Scope {
		scope = append(scope, repository.Eq(field, doc[field]))
	}
	if err := e.store.Promote(ctx, e.schema.Collection, doc.ID(), sg.Field, scope); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, e.notFound()
		}
		e.logger.Error("singleton promotion failed", zap.String("id", doc.ID()), zap.String("field", sg.Field), zap.Error(err))
		return nil, appErrors.Store(err, fmt.Sprintf("failed to set %s as %s", e.schema.Label, flagName(sg.Field)))
	}
	e.changed(ctx)
	fresh, err := e.store.FindByID(ctx, e.schema.Collection, doc.ID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, e.notFound()
		}
		return nil, e.storeError(err, "load")
	}
	return fresh, nil
}

func (e *Engine[T, P]) inactiveFlagError() error {
	return appErrors.Clone(appErrors.ErrConflict,
		fmt.Sprintf("an inactive %s cannot be set as %s", e.schema.Label, flagName(e.schema.Singleton.Field)))
}

// flagName turns isDefault into "default".
func flagName(field string) string {
	return strings.ToLower(strings.TrimPrefix(field, "is"))
}

func (e *Engine[T, P]) replace(ctx context.Context, id string, doc repository.Document) (repository.Document, error) {
	for _, p := range e.schema.Populate {
		delete(doc, p.As)
	}
	updated, err := e.store.Replace(ctx, e.schema.Collection, id, doc, e.schema.AppendOnly...)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, e.notFound()
		}
		return nil, e.storeError(err, "update")
	}
	e.changed(ctx)
	return updated, nil
}

func (e *Engine[T, P]) load(ctx context.Context, rawID string) (string, repository.Document, error) {
	id, err := CanonicalID(rawID)
	if err != nil {
		return "", nil, err
	}
	doc, err := e.store.FindByID(ctx, e.schema.Collection, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, e.notFound()
		}
		return "", nil, e.storeError(err, "load")
	}
	return id, doc, nil
}

func (e *Engine[T, P]) present(ctx context.Context, doc repository.Document) (P, error) {
	items, err := e.presentAll(ctx, []repository.Document{doc})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (e *Engine[T, P]) presentAll(ctx context.Context, docs []repository.Document) ([]P, error) {
	e.populate(ctx, docs)
	items := make([]P, 0, len(docs))
	for _, doc := range docs {
		rec, err := e.decode(doc)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read "+e.schema.Label)
		}
		items = append(items, rec)
	}
	return items, nil
}

// populate inlines referenced summaries. A missing referent yields its placeholder instead of failing the read.
func (e *Engine[T, P]) populate(ctx context.Context, docs []repository.Document) {
	if len(e.schema.Populate) == 0 {
		return
	}
	cache := make(map[string]models.RefSummary)
	for _, doc := range docs {
		for _, p := range e.schema.Populate {
			id := doc.String(p.Field)
			if id == "" {
				delete(doc, p.As)
				continue
			}
			key := p.Collection + "/" + id
			summary, ok := cache[key]
			if !ok {
				summary = e.summarize(ctx, p, id)
				cache[key] = summary
			}
			doc[p.As] = summary
		}
	}
}

func (e *Engine[T, P]) summarize(ctx context.Context, p Populate, id string) models.RefSummary {
	ref, err := e.store.FindByID(ctx, p.Collection, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			e.logger.Warn("populate lookup failed", zap.String("ref_collection", p.Collection), zap.String("ref_id", id), zap.Error(err))
		}
		return models.RefSummary{ID: id, Name: p.Placeholder, Missing: true}
	}
	return models.RefSummary{ID: id, Name: ref.String(p.Display)}
}

func (e *Engine[T, P]) decode(doc repository.Document) (P, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	rec := P(new(T))
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, decodeError(err)
	}
	return rec, nil
}

func (e *Engine[T, P]) encode(rec P) (repository.Document, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode "+e.schema.Label)
	}
	doc, err := repository.DecodeDocument(raw)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode "+e.schema.Label)
	}
	doc = doc.WithoutMeta()
	for _, p := range e.schema.Populate {
		delete(doc, p.As)
	}
	return doc, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "payload"
		}
		return appErrors.Clone(appErrors.ErrValidation, "invalid value for "+field)
	}
	var dateErr *models.DateError
	if errors.As(err, &dateErr) {
		return appErrors.Clone(appErrors.ErrValidation, dateErr.Error())
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}

func itemError(i int, err error) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErrors.Clone(appErr, fmt.Sprintf("item %d: %s", i, appErr.Message))
	}
	return err
}

func active(doc repository.Document) bool {
	v, ok := doc[fieldIsActive].(bool)
	return !ok || v
}

func (e *Engine[T, P]) notFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, e.schema.Label+" not found")
}

func (e *Engine[T, P]) storeError(err error, action string) error {
	e.logger.Error("store operation failed", zap.String("action", action), zap.Error(err))
	return appErrors.Store(err, fmt.Sprintf("failed to %s %s", action, e.schema.Label))
}
