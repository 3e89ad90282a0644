package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/sms"
)

type fakeGateway struct {
	mu   sync.Mutex
	sent []sms.Message
	err  error
}

func (g *fakeGateway) Send(_ context.Context, msg sms.Message) (sms.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return sms.Receipt{}, g.err
	}
	g.sent = append(g.sent, msg)
	return sms.Receipt{ProviderID: "msg-1"}, nil
}

func (g *fakeGateway) messages() []sms.Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]sms.Message(nil), g.sent...)
}

type resultFixture struct {
	student *models.Student
	exam    *models.Exam
	result  *models.Result
}

func seedResult(t *testing.T, res *Resources) resultFixture {
	t.Helper()
	ctx := context.Background()
	class := mustClass(t, res, "Six")
	session := mustSession(t, res, "2024", "2024-01-01", "2024-12-31", true)

	student, err := res.Students.Create(ctx, doc{
		"name": "Rahim", "rollNumber": "7", "classId": class.ID, "sessionId": session.ID,
		"guardianPhone": "+8801712345678",
	})
	require.NoError(t, err)
	exam, err := res.Exams.Create(ctx, doc{
		"name": "Midterm", "classId": class.ID, "sessionId": session.ID,
		"startDate": "2024-06-01", "endDate": "2024-06-10",
	})
	require.NoError(t, err)
	result, err := res.Results.Create(ctx, doc{
		"studentId": student.ID, "examId": exam.ID, "obtainedMarks": 420, "totalMarks": 500, "gpa": 4.5,
	})
	require.NoError(t, err)
	return resultFixture{student: student, exam: exam, result: result}
}

func newTestSMSService(t *testing.T, res *Resources, gateway sms.Gateway, retries int) *SMSService {
	t.Helper()
	svc := NewSMSService(res, gateway, nil, SMSConfig{
		SchoolName: "Green Valley",
		Workers:    1,
		MaxRetries: retries,
		RetryDelay: 5 * time.Millisecond,
	}, nil)
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return svc
}

func TestSMSUseConsumesCredits(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	svc := NewSMSService(res, &fakeGateway{}, nil, SMSConfig{}, nil)

	balance, err := res.SMSBalances.Create(ctx, doc{"provider": "Acme", "credits": 100})
	require.NoError(t, err)

	updated, err := svc.Use(ctx, balance.ID, models.SMSUsage{Count: 30})
	require.NoError(t, err)
	assert.Equal(t, models.Int(70), updated.Remaining)

	_, err = svc.Use(ctx, balance.ID, models.SMSUsage{Count: 71})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Message, "insufficient credits")

	_, err = svc.Use(ctx, balance.ID, models.SMSUsage{Count: 0})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = res.SMSBalances.ToggleStatus(ctx, balance.ID)
	require.NoError(t, err)
	_, err = svc.Use(ctx, balance.ID, models.SMSUsage{Count: 1})
	assert.ErrorIs(t, err, appErrors.ErrConflict)

	current, err := res.SMSBalances.Get(ctx, balance.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Int(70), current.Remaining)
}

func TestSMSUpdateCannotResetRemaining(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	svc := NewSMSService(res, &fakeGateway{}, nil, SMSConfig{}, nil)

	balance, err := res.SMSBalances.Create(ctx, doc{"provider": "Acme", "credits": 100})
	require.NoError(t, err)
	_, err = svc.Use(ctx, balance.ID, models.SMSUsage{Count: 10})
	require.NoError(t, err)

	updated, err := res.SMSBalances.Update(ctx, balance.ID, doc{"provider": "Acme Ltd", "remaining": 100})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.Provider)
	assert.Equal(t, models.Int(90), updated.Remaining)
}

func TestSendResultDeliversInBackground(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	gateway := &fakeGateway{}
	svc := newTestSMSService(t, res, gateway, 0)

	entry, err := svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.SMSQueued, entry.Status)
	assert.Equal(t, "+8801712345678", entry.Phone)
	assert.Equal(t, "Green Valley: Rahim scored 420/500 (GPA 4.5) in Midterm.", entry.Message)

	assert.Eventually(t, func() bool {
		r, err := res.Results.Get(ctx, fx.result.ID)
		return err == nil && len(r.SMSLog) == 2 && r.SMSLog[1].Status == models.SMSSent
	}, time.Second, 10*time.Millisecond)

	sent := gateway.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, entry.Phone, sent[0].To)

	r, err := res.Results.Get(ctx, fx.result.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, r.SMSLog[1].ID)
	assert.Equal(t, "msg-1", r.SMSLog[1].ProviderID)
}

func TestSendResultRecordsFailure(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	svc := newTestSMSService(t, res, &fakeGateway{err: errors.New("provider down")}, 1)

	entry, err := svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{Phone: "01712345678", Message: "Results are out"})
	require.NoError(t, err)
	assert.Equal(t, "01712345678", entry.Phone)

	assert.Eventually(t, func() bool {
		r, err := res.Results.Get(ctx, fx.result.ID)
		if err != nil || len(r.SMSLog) != 2 {
			return false
		}
		last := r.SMSLog[1]
		return last.Status == models.SMSFailed && last.Error == "provider down"
	}, time.Second, 10*time.Millisecond)
}

func TestSendResultValidation(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	svc := newTestSMSService(t, res, &fakeGateway{}, 0)

	_, err := svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{Phone: "not a phone"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = res.Students.Update(ctx, fx.student.ID, doc{"guardianPhone": ""})
	require.NoError(t, err)
	_, err = svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Message, "no guardian phone")
}

func TestSendResultRequiresRunningDispatcher(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	svc := NewSMSService(res, &fakeGateway{}, nil, SMSConfig{}, nil)

	_, err := svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{})
	require.ErrorIs(t, err, appErrors.ErrInternal)

	r, err := res.Results.Get(ctx, fx.result.ID)
	require.NoError(t, err)
	require.Len(t, r.SMSLog, 2)
	assert.Equal(t, models.SMSFailed, r.SMSLog[1].Status)
}

func TestResultUpdateKeepsSMSLog(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	svc := newTestSMSService(t, res, &fakeGateway{}, 0)

	_, err := svc.SendResult(ctx, fx.result.ID, models.SendSMSRequest{})
	require.NoError(t, err)

	updated, err := res.Results.Update(ctx, fx.result.ID, doc{"remarks": "Excellent", "smsLog": []any{}})
	require.NoError(t, err)
	assert.Equal(t, "Excellent", updated.Remarks)
	assert.NotEmpty(t, updated.SMSLog)
}

func TestResultRequiresEnrolment(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedResult(t, res)
	other := mustClass(t, res, "Seven")

	exam, err := res.Exams.Create(ctx, doc{
		"name": "Final", "classId": other.ID, "sessionId": fx.exam.SessionID,
		"startDate": "2024-11-01", "endDate": "2024-11-10",
	})
	require.NoError(t, err)

	_, err = res.Results.Create(ctx, doc{"studentId": fx.student.ID, "examId": exam.ID, "obtainedMarks": 10, "totalMarks": 100})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "student is not enrolled in the exam's class", appErrors.FromError(err).Message)

	_, err = res.Results.Create(ctx, doc{"studentId": fx.student.ID, "examId": fx.exam.ID, "obtainedMarks": 10, "totalMarks": 100})
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)
}
