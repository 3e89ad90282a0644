package service

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	failGet error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (m *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return m.failGet
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	m.hits++
	return json.Unmarshal(raw, dest)
}

func (m *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
	return nil
}

func (m *mapCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.entries, key)
		}
	}
	return nil
}

func (m *mapCache) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func TestHolidayLookupsUseCache(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	s2024, _ := seedHolidays(t, res)

	backend := newMapCache()
	metrics := NewMetricsService()
	svc := NewHolidayService(res.Holidays, nil)
	svc.UseCache(NewCacheService(backend, metrics, time.Minute, nil), res.Sessions)

	first, err := svc.Check(ctx, "2024-01-02", s2024)
	require.NoError(t, err)
	assert.Equal(t, 1, backend.size())

	second, err := svc.Check(ctx, "2024-01-02", s2024)
	require.NoError(t, err)
	assert.Equal(t, 1, backend.hits)
	assert.Equal(t, first.IsHoliday, second.IsHoliday)
	require.Len(t, second.Holidays, 1)
	assert.Equal(t, first.Holidays[0].ID, second.Holidays[0].ID)
	assert.Equal(t, "2024-01-01", second.Holidays[0].Dates[0].FromDate.String())

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
}

func TestHolidayCacheDroppedOnWrites(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	s2024, _ := seedHolidays(t, res)

	backend := newMapCache()
	svc := NewHolidayService(res.Holidays, nil)
	svc.UseCache(NewCacheService(backend, nil, time.Minute, nil), res.Sessions)

	check, err := svc.Check(ctx, "2024-06-01", "")
	require.NoError(t, err)
	assert.False(t, check.IsHoliday)
	require.Equal(t, 1, backend.size())

	_, err = res.Holidays.Create(ctx, doc{
		"title":     "Summer",
		"sessionId": s2024,
		"dates":     []any{map[string]any{"fromDate": "2024-06-01", "toDate": "2024-06-07"}},
	})
	require.NoError(t, err)
	assert.Zero(t, backend.size(), "holiday write drops cached sets")

	check, err = svc.Check(ctx, "2024-06-01", "")
	require.NoError(t, err)
	assert.True(t, check.IsHoliday)

	_, err = res.Sessions.Update(ctx, s2024, doc{"name": "2024-25"})
	require.NoError(t, err)
	assert.Zero(t, backend.size(), "session rename drops cached sets")

	check, err = svc.Check(ctx, "2024-06-01", "")
	require.NoError(t, err)
	require.NotNil(t, check.Holidays[0].Session)
	assert.Equal(t, "2024-25", check.Holidays[0].Session.Name)
}

func TestCacheBackendFailureFallsThrough(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	seedHolidays(t, res)

	backend := newMapCache()
	backend.failGet = errors.New("connection refused")
	svc := NewHolidayService(res.Holidays, nil)
	svc.UseCache(NewCacheService(backend, nil, time.Minute, nil))

	month, err := svc.Month(ctx, 2024, 1, "")
	require.NoError(t, err)
	assert.Len(t, month, 1)
}

func TestDisabledCacheIsInert(t *testing.T) {
	cache := NewCacheService(nil, nil, 0, nil)
	assert.False(t, cache.Enabled())

	var dest []string
	assert.False(t, cache.Get(context.Background(), "k", &dest))
	cache.Set(context.Background(), "k", []string{"v"}, 0)
	cache.Invalidate(context.Background(), "*")
}
