package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const documentColumns = "id, data, created_at, updated_at"

// PostgresStore keeps every collection in the JSONB documents table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore instantiates the PostgreSQL document store.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type documentRow struct {
	ID        string    `db:"id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r documentRow) document() (Document, error) {
	doc, err := DecodeDocument(r.Data)
	if err != nil {
		return nil, fmt.Errorf("decode document %s: %w", r.ID, err)
	}
	doc[FieldID] = r.ID
	doc[FieldCreatedAt] = r.CreatedAt.UTC()
	doc[FieldUpdatedAt] = r.UpdatedAt.UTC()
	return doc, nil
}

type sqlBuilder struct {
	args []interface{}
}

func (b *sqlBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) condition(c Condition) (string, error) {
	if c.Field == FieldID && (c.Op == OpEq || c.Op == OpEqFold) {
		return "id = " + b.arg(fmt.Sprint(c.Value)), nil
	}
	switch c.Op {
	case OpEq:
		raw, err := json.Marshal(map[string]interface{}{c.Field: c.Value})
		if err != nil {
			return "", fmt.Errorf("encode condition %s: %w", c.Field, err)
		}
		return "data @> " + b.arg(string(raw)) + "::jsonb", nil
	case OpEqFold:
		field := b.arg(c.Field)
		return fmt.Sprintf("LOWER(data->>%s::text) = LOWER(%s::text)", field, b.arg(fmt.Sprint(c.Value))), nil
	case OpNull:
		field := b.arg(c.Field)
		return fmt.Sprintf("(data->%[1]s::text IS NULL OR data->%[1]s::text = 'null'::jsonb)", field), nil
	case OpNotFalse:
		return fmt.Sprintf("COALESCE(data->%s::text, 'true'::jsonb) <> 'false'::jsonb", b.arg(c.Field)), nil
	}
	return "", fmt.Errorf("unsupported operator %d", c.Op)
}

func (b *sqlBuilder) where(collection string, q Query) (string, error) {
	clauses := []string{"collection = " + b.arg(collection)}
	for _, c := range q.Conditions {
		clause, err := b.condition(c)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, clause)
	}
	if q.ExcludeID != "" {
		clauses = append(clauses, "id <> "+b.arg(q.ExcludeID))
	}
	return " WHERE " + strings.Join(clauses, " AND "), nil
}

func orderBy(sorts []Sort) string {
	parts := make([]string, 0, len(sorts)+1)
	for _, s := range sorts {
		var expr string
		switch {
		case s.Field == FieldID:
			expr = "id"
		case s.Field == FieldCreatedAt:
			expr = "created_at"
		case s.Field == FieldUpdatedAt:
			expr = "updated_at"
		case s.Fold:
			expr = fmt.Sprintf("LOWER(data->>'%s')", s.Field)
		default:
			expr = fmt.Sprintf("data->'%s'", s.Field)
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		parts = append(parts, expr+" "+dir+" NULLS LAST")
	}
	parts = append(parts, "id ASC")
	return " ORDER BY " + strings.Join(parts, ", ")
}

// Find returns documents matching q.
func (s *PostgresStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	b := &sqlBuilder{}
	where, err := b.where(collection, q)
	if err != nil {
		return nil, err
	}
	query := "SELECT " + documentColumns + " FROM documents" + where + orderBy(q.Sort)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}
	if q.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", q.Offset)
	}

	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, query, b.args...); err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.document()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Count returns the number of documents matching q, ignoring limit and offset.
func (s *PostgresStore) Count(ctx context.Context, collection string, q Query) (int, error) {
	if err := validateQuery(q); err != nil {
		return 0, err
	}
	b := &sqlBuilder{}
	where, err := b.where(collection, q)
	if err != nil {
		return 0, err
	}
	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents"+where, b.args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return total, nil
}

// Exists reports whether any document matches q.
func (s *PostgresStore) Exists(ctx context.Context, collection string, q Query) (bool, error) {
	if err := validateQuery(q); err != nil {
		return false, err
	}
	b := &sqlBuilder{}
	where, err := b.where(collection, q)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := s.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM documents"+where+")", b.args...); err != nil {
		return false, fmt.Errorf("exists %s: %w", collection, err)
	}
	return exists, nil
}

// FindByID returns one document.
func (s *PostgresStore) FindByID(ctx context.Context, collection, id string) (Document, error) {
	var row documentRow
	query := "SELECT " + documentColumns + " FROM documents WHERE collection = $1 AND id = $2"
	if err := s.db.GetContext(ctx, &row, query, collection, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s %s: %w", collection, id, err)
	}
	return row.document()
}

// Insert stores documents in one transaction.
func (s *PostgresStore) Insert(ctx context.Context, collection string, docs ...Document) ([]Document, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert %s: %w", collection, err)
	}
	defer tx.Rollback() //nolint:errcheck

	ts := now()
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		body := doc.WithoutMeta()
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", collection, err)
		}
		id := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES ($1, $2, $3::jsonb, $4, $5)",
			collection, id, string(raw), ts, ts,
		); err != nil {
			return nil, fmt.Errorf("insert %s: %w", collection, err)
		}
		body[FieldID] = id
		body[FieldCreatedAt] = ts
		body[FieldUpdatedAt] = ts
		out = append(out, body)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert %s: %w", collection, err)
	}
	return out, nil
}

// Replace overwrites a document body; preserved keys are copied from the stored row inside the same statement.
func (s *PostgresStore) Replace(ctx context.Context, collection, id string, doc Document, preserve ...string) (Document, error) {
	for _, key := range preserve {
		if err := validateField(key); err != nil {
			return nil, err
		}
	}
	raw, err := json.Marshal(doc.WithoutMeta())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", collection, err)
	}
	if preserve == nil {
		preserve = []string{}
	}

	query := `UPDATE documents SET data = ($3::jsonb - $5::text[]) ||
		(SELECT COALESCE(jsonb_object_agg(e.key, e.value), '{}'::jsonb) FROM jsonb_each(documents.data) e WHERE e.key = ANY($5::text[])),
		updated_at = $4
		WHERE collection = $1 AND id = $2
		RETURNING ` + documentColumns

	var row documentRow
	if err := s.db.GetContext(ctx, &row, query, collection, id, string(raw), now(), pq.Array(preserve)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("replace %s %s: %w", collection, id, err)
	}
	return row.document()
}

// Delete removes a document.
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection = $1 AND id = $2", collection, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", collection, id, err)
	}
	return requireAffected(res)
}

// Promote flags id and demotes the other flagged documents of the scope in one transaction.
func (s *PostgresStore) Promote(ctx context.Context, collection, id, field string, scope []Condition) error {
	if err := validateField(field); err != nil {
		return err
	}
	if err := validateQuery(Query{Conditions: scope}); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin promote %s: %w", collection, err)
	}
	defer tx.Rollback() //nolint:errcheck

	ts := now()
	res, err := tx.ExecContext(ctx,
		"UPDATE documents SET data = jsonb_set(data, ARRAY[$3::text], 'true'::jsonb), updated_at = $4 WHERE collection = $1 AND id = $2",
		collection, id, field, ts,
	)
	if err != nil {
		return fmt.Errorf("promote %s %s: %w", collection, id, err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	b := &sqlBuilder{args: []interface{}{collection, id, field, ts}}
	demote := "UPDATE documents SET data = jsonb_set(data, ARRAY[$3::text], 'false'::jsonb), updated_at = $4 " +
		"WHERE collection = $1 AND id <> $2 AND data @> jsonb_build_object($3::text, true)"
	for _, c := range scope {
		clause, err := b.condition(c)
		if err != nil {
			return err
		}
		demote += " AND " + clause
	}
	if _, err := tx.ExecContext(ctx, demote, b.args...); err != nil {
		return fmt.Errorf("demote %s: %w", collection, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit promote %s: %w", collection, err)
	}
	return nil
}

// Append pushes entry onto the array in field, creating it when absent.
func (s *PostgresStore) Append(ctx context.Context, collection, id, field string, entry any) error {
	if err := validateField(field); err != nil {
		return err
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", field, err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET data = jsonb_set(data, ARRAY[$3::text],
			(CASE WHEN jsonb_typeof(data->$3::text) = 'array' THEN data->$3::text ELSE '[]'::jsonb END) || jsonb_build_array($4::jsonb)),
			updated_at = $5
		WHERE collection = $1 AND id = $2`,
		collection, id, field, string(raw), now(),
	)
	if err != nil {
		return fmt.Errorf("append %s %s: %w", collection, id, err)
	}
	return requireAffected(res)
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
