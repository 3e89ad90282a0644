package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *MemoryStore, collection string, docs ...Document) []Document {
	t.Helper()
	out, err := s.Insert(context.Background(), collection, docs...)
	require.NoError(t, err)
	return out
}

func TestMemoryConditions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, "sections",
		Document{"name": "A", "classId": "c1", "batchId": nil, "isActive": true},
		Document{"name": "a", "classId": "c1", "batchId": "b1"},
		Document{"name": "B", "classId": "c2", "isActive": false},
	)

	n, err := s.Count(ctx, "sections", Query{Conditions: []Condition{{Field: "name", Op: OpEqFold, Value: "A"}}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Count(ctx, "sections", Query{Conditions: []Condition{Eq("batchId", nil)}})
	require.NoError(t, err)
	assert.Equal(t, 2, n, "absent and null both match null")

	n, err = s.Count(ctx, "sections", Query{Conditions: []Condition{{Field: "isActive", Op: OpNotFalse}}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := s.Exists(ctx, "sections", Query{Conditions: []Condition{{Field: "name", Op: OpEqFold, Value: "Ab"}}})
	require.NoError(t, err)
	assert.False(t, ok, "fold match is anchored")
}

func TestMemoryNumbersCompareByValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, "grades", Document{"minMark": 80}, Document{"minMark": 33}, Document{"minMark": 5})

	docs, err := s.Find(ctx, "grades", Query{Sort: []Sort{{Field: "minMark", Desc: true}}})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "80", Stringify(docs[0]["minMark"]))
	assert.Equal(t, "5", Stringify(docs[2]["minMark"]))

	ok, err := s.Exists(ctx, "grades", Query{Conditions: []Condition{Eq("minMark", 33.0)}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryPaginationAndOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, name := range []string{"c", "a", "b", "d"} {
		seed(t, s, "classes", Document{"name": name})
	}

	docs, err := s.Find(ctx, "classes", Query{Sort: []Sort{{Field: "name"}}, Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].String("name"))
	assert.Equal(t, "c", docs[1].String("name"))

	docs, err = s.Find(ctx, "classes", Query{Sort: []Sort{{Field: FieldCreatedAt, Desc: true}}})
	require.NoError(t, err)
	assert.Equal(t, "d", docs[0].String("name"))
}

func TestMemoryPromoteIsScoped(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	docs := seed(t, s, "accounts",
		Document{"branch": "north", "isDefault": true},
		Document{"branch": "south", "isDefault": true},
		Document{"branch": "north", "isDefault": false},
	)

	require.NoError(t, s.Promote(ctx, "accounts", docs[2].ID(), "isDefault", []Condition{Eq("branch", "north")}))

	first, _ := s.FindByID(ctx, "accounts", docs[0].ID())
	second, _ := s.FindByID(ctx, "accounts", docs[1].ID())
	third, _ := s.FindByID(ctx, "accounts", docs[2].ID())
	assert.Equal(t, false, first["isDefault"])
	assert.Equal(t, true, second["isDefault"])
	assert.Equal(t, true, third["isDefault"])

	assert.ErrorIs(t, s.Promote(ctx, "accounts", "missing", "isDefault", nil), ErrNotFound)
}

func TestMemoryReplacePreservesAndAppend(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	doc := seed(t, s, "results", Document{"remarks": "ok"})[0]

	require.NoError(t, s.Append(ctx, "results", doc.ID(), "smsLog", map[string]string{"status": "queued"}))
	require.NoError(t, s.Append(ctx, "results", doc.ID(), "smsLog", map[string]string{"status": "sent"}))

	updated, err := s.Replace(ctx, "results", doc.ID(), Document{"remarks": "great", "smsLog": []any{}}, "smsLog")
	require.NoError(t, err)
	assert.Equal(t, "great", updated.String("remarks"))
	log, ok := updated["smsLog"].([]any)
	require.True(t, ok)
	assert.Len(t, log, 2)
	assert.Equal(t, doc[FieldCreatedAt], updated[FieldCreatedAt])
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	doc := seed(t, s, "classes", Document{"name": "Six"})[0]

	doc["name"] = "mutated"
	fetched, err := s.FindByID(ctx, "classes", doc.ID())
	require.NoError(t, err)
	assert.Equal(t, "Six", fetched.String("name"))

	require.NoError(t, s.Delete(ctx, "classes", doc.ID()))
	_, err = s.FindByID(ctx, "classes", doc.ID())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "classes", doc.ID()), ErrNotFound)
}
