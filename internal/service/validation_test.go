package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

func TestValidatorMessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Check(&models.Shift{Name: "Morning", StartTime: "8:00", EndTime: "12:00"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "startTime must be a time in HH:MM format", appErrors.FromError(err).Message)

	err = v.Check(&models.Student{Name: "Rahim", RollNumber: "1", ClassID: "c", SessionID: "s", GuardianPhone: "call me"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "guardianPhone must be a valid phone number", appErrors.FromError(err).Message)
}

func TestValidatorRunsRecordHook(t *testing.T) {
	v := NewValidator()

	err := v.Check(&models.Shift{Name: "Evening", StartTime: "18:00", EndTime: "09:00"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "endTime must be after startTime", appErrors.FromError(err).Message)

	assert.NoError(t, v.Check(&models.Shift{Name: "Evening", StartTime: "09:00", EndTime: "18:00"}))
}

func TestValidatorUnderstandsLenientScalars(t *testing.T) {
	v := NewValidator()

	err := v.Check(&models.Discount{SessionID: "s", ClassID: "c", FeeTypeID: "f", DiscountTypeID: "d", Percentage: 150})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Message, "percentage")

	err = v.Check(&models.Session{Name: "2024", EndDate: models.NewDate(2024, 12, 31)})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "startDate is a required field", appErrors.FromError(err).Message)
}

func TestCanonicalID(t *testing.T) {
	id, err := CanonicalID(" 6F9619FF-8B86-D011-B42D-00C04FC964FF ")
	require.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	_, err = CanonicalID("42")
	require.ErrorIs(t, err, appErrors.ErrInvalidID)
	assert.Equal(t, "invalid identifier: 42", appErrors.FromError(err).Message)
}

func TestTrimStringsReachesNestedValues(t *testing.T) {
	batch := " b "
	s := &models.Section{Name: "  A ", BatchID: &batch}
	h := &models.Holiday{Title: " Eid ", Dates: []models.DateRange{{}}}

	trimStrings(s)
	trimStrings(h)

	assert.Equal(t, "A", s.Name)
	assert.Equal(t, "b", *s.BatchID)
	assert.Equal(t, "Eid", h.Title)
}
