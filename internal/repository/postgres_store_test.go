package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "5b0f1b1e-8a3c-4a53-9a51-2f1c3f0b9d11"

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func documentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"})
}

func TestPostgresFindBuildsConditionsAndOrder(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 AND data @> $2::jsonb AND LOWER(data->>$3::text) = LOWER($4::text) AND (data->$5::text IS NULL OR data->$5::text = 'null'::jsonb) AND COALESCE(data->$6::text, 'true'::jsonb) <> 'false'::jsonb AND id <> $7 ORDER BY LOWER(data->>'name') ASC NULLS LAST, created_at DESC NULLS LAST, id ASC LIMIT 10 OFFSET 20",
	)).
		WithArgs("batches", `{"classId":"c1"}`, "name", "Morning", "batchId", "isActive", testID).
		WillReturnRows(documentRows().AddRow("b1", []byte(`{"name":"Morning","amount":500}`), now, now))

	docs, err := store.Find(context.Background(), "batches", Query{
		Conditions: []Condition{
			Eq("classId", "c1"),
			{Field: "name", Op: OpEqFold, Value: "Morning"},
			Eq("batchId", nil),
			{Field: "isActive", Op: OpNotFalse},
		},
		ExcludeID: testID,
		Sort:      []Sort{{Field: "name", Fold: true}, {Field: "createdAt", Desc: true}},
		Limit:     10,
		Offset:    20,
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b1", docs[0].ID())
	assert.Equal(t, "Morning", docs[0].String("name"))
	assert.Equal(t, json.Number("500"), docs[0]["amount"])
	assert.Equal(t, now, docs[0][FieldCreatedAt])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindRejectsUnsafeSortField(t *testing.T) {
	db, _, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	_, err := store.Find(context.Background(), "classes", Query{Sort: []Sort{{Field: "name'; DROP TABLE documents;--"}}})
	assert.Error(t, err)
}

func TestPostgresFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE collection = $1 AND id = $2")).
		WithArgs("classes", testID).
		WillReturnRows(documentRows())

	_, err := store.FindByID(context.Background(), "classes", testID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertIsTransactional(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES ($1, $2, $3::jsonb, $4, $5)")).
		WithArgs("students", sqlmock.AnyArg(), `{"name":"Rahim"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("students", sqlmock.AnyArg(), `{"name":"Karim"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := store.Insert(context.Background(), "students",
		Document{"name": "Rahim", "id": "ignored"},
		Document{"name": "Karim"},
	)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertAssignsMeta(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	docs, err := store.Insert(context.Background(), "classes", Document{"name": "Six"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0].ID())
	assert.Equal(t, docs[0][FieldCreatedAt], docs[0][FieldUpdatedAt])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReplacePreservesKeys(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE documents SET data = ($3::jsonb - $5::text[])")).
		WithArgs("results", testID, `{"remarks":"good"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(documentRows().AddRow(testID, []byte(`{"remarks":"good","smsLog":[{"status":"queued"}]}`), now, now))

	doc, err := store.Replace(context.Background(), "results", testID, Document{"remarks": "good", "id": testID}, "smsLog")
	require.NoError(t, err)
	assert.Len(t, doc["smsLog"], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE collection = $1 AND id = $2")).
		WithArgs("grades", testID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.Delete(context.Background(), "grades", testID), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPromoteRunsInOneTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET data = jsonb_set(data, ARRAY[$3::text], 'true'::jsonb), updated_at = $4 WHERE collection = $1 AND id = $2")).
		WithArgs("sessions", testID, "isCurrent", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("'false'::jsonb), updated_at = $4 WHERE collection = $1 AND id <> $2 AND data @> jsonb_build_object($3::text, true) AND data @> $5::jsonb")).
		WithArgs("sessions", testID, "isCurrent", sqlmock.AnyArg(), `{"campus":"north"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Promote(context.Background(), "sessions", testID, "isCurrent", []Condition{Eq("campus", "north")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPromoteMissingRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("'true'::jsonb").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Promote(context.Background(), "bank_accounts", testID, "isDefault", nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppend(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta("jsonb_build_array($4::jsonb)")).
		WithArgs("results", testID, "smsLog", `{"status":"sent"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Append(context.Background(), "results", testID, "smsLog", map[string]string{"status": "sent"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
