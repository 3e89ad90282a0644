package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

func seedHolidays(t *testing.T, res *Resources) (string, string) {
	t.Helper()
	ctx := context.Background()
	s2024 := mustSession(t, res, "2024", "2024-01-01", "2024-12-31", true)
	s2025 := mustSession(t, res, "2025", "2025-01-01", "2025-12-31", false)

	_, err := res.Holidays.Create(ctx, doc{
		"title":     "New Year",
		"sessionId": s2024.ID,
		"dates":     []any{map[string]any{"fromDate": "2024-01-01", "toDate": "2024-01-03"}},
	})
	require.NoError(t, err)
	_, err = res.Holidays.Create(ctx, doc{
		"title":     "Winter Break",
		"sessionId": s2024.ID,
		"dates": []any{
			map[string]any{"fromDate": "2024-12-28", "toDate": "2025-01-02"},
			map[string]any{"fromDate": "2024-03-10", "toDate": "2024-03-10"},
		},
	})
	require.NoError(t, err)
	_, err = res.Holidays.Create(ctx, doc{
		"title":     "New Year",
		"sessionId": s2025.ID,
		"dates":     []any{map[string]any{"fromDate": "2025-01-01", "toDate": "2025-01-01"}},
	})
	require.NoError(t, err)
	return s2024.ID, s2025.ID
}

func TestHolidayCheck(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	s2024, _ := seedHolidays(t, res)
	svc := NewHolidayService(res.Holidays, nil)

	check, err := svc.Check(ctx, "2024-01-02", "")
	require.NoError(t, err)
	assert.True(t, check.IsHoliday)
	require.Len(t, check.Holidays, 1)
	assert.Equal(t, "New Year", check.Holidays[0].Title)
	assert.Equal(t, "2024-01-02", check.Date.String())

	check, err = svc.Check(ctx, "2024-02-01", "")
	require.NoError(t, err)
	assert.False(t, check.IsHoliday)
	assert.Empty(t, check.Holidays)

	check, err = svc.Check(ctx, "2025-01-01", "")
	require.NoError(t, err)
	assert.Len(t, check.Holidays, 2, "range spanning the year end and the next session's holiday")

	check, err = svc.Check(ctx, "2025-01-01", s2024)
	require.NoError(t, err)
	assert.Len(t, check.Holidays, 1)

	_, err = svc.Check(ctx, "01/02/2024", "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Check(ctx, "2024-01-02", "nope")
	assert.ErrorIs(t, err, appErrors.ErrInvalidID)
}

func TestHolidayMonth(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	_, s2025 := seedHolidays(t, res)
	svc := NewHolidayService(res.Holidays, nil)

	jan, err := svc.Month(ctx, 2024, 1, "")
	require.NoError(t, err)
	require.Len(t, jan, 1)
	assert.Equal(t, "New Year", jan[0].Title)

	feb, err := svc.Month(ctx, 2024, 2, "")
	require.NoError(t, err)
	assert.Empty(t, feb)

	mar, err := svc.Month(ctx, 2024, 3, "")
	require.NoError(t, err)
	require.Len(t, mar, 1)
	assert.Equal(t, "Winter Break", mar[0].Title)

	jan25, err := svc.Month(ctx, 2025, 1, s2025)
	require.NoError(t, err)
	require.Len(t, jan25, 1)
	assert.Equal(t, s2025, jan25[0].SessionID)

	_, err = svc.Month(ctx, 2024, 13, "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	_, err = svc.Month(ctx, 10000, 1, "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestHolidayRejectsInvertedRange(t *testing.T) {
	res, _ := newTestResources(t)
	session := mustSession(t, res, "2024", "2024-01-01", "2024-12-31", false)

	_, err := res.Holidays.Create(context.Background(), doc{
		"title":     "Backwards",
		"sessionId": session.ID,
		"dates":     []any{map[string]any{"fromDate": "2024-02-10", "toDate": "2024-02-01"}},
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = res.Holidays.Create(context.Background(), doc{"title": "Empty", "sessionId": session.ID, "dates": []any{}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
