package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

// HolidayCheck answers whether a calendar day is a holiday.
type HolidayCheck struct {
	IsHoliday bool              `json:"isHoliday"`
	Date      models.Date       `json:"date"`
	Holidays  []*models.Holiday `json:"holidays"`
}

const holidayCachePattern = "holidays:*"

// ChangeNotifier reports writes to a resource.
type ChangeNotifier interface {
	OnChange(fn func(ctx context.Context))
}

// HolidayService provides calendar-day lookups over holidays.
type HolidayService struct {
	holidays *Engine[models.Holiday, *models.Holiday]
	cache    *CacheService
	logger   *zap.Logger
}

// NewHolidayService constructs the service.
func NewHolidayService(holidays *Engine[models.Holiday, *models.Holiday], logger *zap.Logger) *HolidayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{holidays: holidays, logger: logger}
}

// UseCache caches each session's holiday set. Writes to the holidays engine or any of sources drop the cached sets.
// Call before serving traffic.
func (s *HolidayService) UseCache(cache *CacheService, sources ...ChangeNotifier) {
	if !cache.Enabled() {
		return
	}
	s.cache = cache
	invalidate := func(ctx context.Context) { cache.Invalidate(ctx, holidayCachePattern) }
	s.holidays.OnChange(invalidate)
	for _, src := range sources {
		src.OnChange(invalidate)
	}
}

// Month returns holidays with a range touching the calendar month. Both ends are inclusive.
func (s *HolidayService) Month(ctx context.Context, year, month int, sessionID string) ([]*models.Holiday, error) {
	if year < 1900 || year > 9999 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "year must be between 1900 and 9999")
	}
	if month < 1 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	first := models.NewDate(year, time.Month(month), 1)
	last := first.AddDays(daysIn(year, time.Month(month)) - 1)

	all, err := s.all(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Holiday, 0)
	for _, h := range all {
		if h.OverlapsPeriod(first, last) {
			out = append(out, h)
		}
	}
	return out, nil
}

// Check reports the holidays covering the calendar day raw.
func (s *HolidayService) Check(ctx context.Context, raw, sessionID string) (*HolidayCheck, error) {
	day, err := models.ParseDate(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	all, err := s.all(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := &HolidayCheck{Date: day, Holidays: make([]*models.Holiday, 0)}
	for _, h := range all {
		if h.Covers(day) {
			result.Holidays = append(result.Holidays, h)
		}
	}
	result.IsHoliday = len(result.Holidays) > 0
	return result, nil
}

func (s *HolidayService) all(ctx context.Context, sessionID string) ([]*models.Holiday, error) {
	var conds []repository.Condition
	if sessionID != "" {
		id, err := CanonicalID(sessionID)
		if err != nil {
			return nil, err
		}
		conds = append(conds, repository.Eq("sessionId", id))
		sessionID = id
	}

	key := "holidays:session:" + sessionID
	if sessionID == "" {
		key = "holidays:all"
	}
	var cached []*models.Holiday
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	holidays, err := s.holidays.All(ctx, conds...)
	if err != nil {
		s.logger.Warn("holiday lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	s.cache.Set(ctx, key, holidays, 0)
	return holidays, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
