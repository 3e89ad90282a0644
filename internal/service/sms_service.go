package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/outbox"
	"github.com/noah-isme/school-backoffice-api/pkg/sms"
)

// SMSConfig tunes the result SMS dispatcher.
type SMSConfig struct {
	SchoolName string
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

type resultSMS struct {
	ResultID string
	EntryID  string
	Phone    string
	Message  string
}

// SMSService consumes SMS credits and dispatches result notifications in the background.
type SMSService struct {
	balances  *Engine[models.SMSBalance, *models.SMSBalance]
	results   *Engine[models.Result, *models.Result]
	students  *Engine[models.Student, *models.Student]
	gateway   sms.Gateway
	outbox    *outbox.Dispatcher[resultSMS]
	validator *Validator
	school    string
	logger    *zap.Logger
	now       func() time.Time
}

// NewSMSService wires the result SMS outbox. Call Start before sending.
func NewSMSService(res *Resources, gateway sms.Gateway, validator *Validator, cfg SMSConfig, logger *zap.Logger) *SMSService {
	if validator == nil {
		validator = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	s := &SMSService{
		balances:  res.SMSBalances,
		results:   res.Results,
		students:  res.Students,
		gateway:   gateway,
		validator: validator,
		school:    cfg.SchoolName,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	s.outbox = outbox.New("result-sms", s.deliver, outbox.Config[resultSMS]{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		Backoff:    cfg.RetryDelay,
		GiveUp:     s.deadLetter,
		Logger:     logger,
	})
	return s
}

// Start launches the dispatch workers.
func (s *SMSService) Start(ctx context.Context) {
	s.outbox.Start(ctx)
}

// Stop waits for in-flight deliveries.
func (s *SMSService) Stop() {
	s.outbox.Stop()
}

// Use consumes credits from an active balance.
func (s *SMSService) Use(ctx context.Context, balanceID string, usage models.SMSUsage) (*models.SMSBalance, error) {
	if err := s.validator.Check(&usage); err != nil {
		return nil, err
	}
	return s.balances.Modify(ctx, balanceID, func(b *models.SMSBalance) error {
		if !b.Active() {
			return appErrors.Clone(appErrors.ErrConflict, "sms balance is inactive")
		}
		if b.Remaining < usage.Count {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("insufficient credits: %d remaining, %d requested", b.Remaining, usage.Count))
		}
		b.Remaining -= usage.Count
		return nil
	})
}

// SendResult queues an SMS for a result and returns the queued log entry.
// The phone defaults to the student's guardian phone and the message to a generated summary.
func (s *SMSService) SendResult(ctx context.Context, resultID string, req models.SendSMSRequest) (*models.SMSLogEntry, error) {
	trimStrings(&req)
	if err := s.validator.Check(&req); err != nil {
		return nil, err
	}
	result, err := s.results.Get(ctx, resultID)
	if err != nil {
		return nil, err
	}

	phone := req.Phone
	if phone == "" {
		student, err := s.students.Get(ctx, result.StudentID)
		if err != nil {
			if errors.Is(err, appErrors.ErrNotFound) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "student not found; provide a phone number")
			}
			return nil, err
		}
		phone = student.GuardianPhone
	}
	if phone == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student has no guardian phone; provide a phone number")
	}

	message := req.Message
	if message == "" {
		message = s.resultMessage(result)
	}

	entry := models.SMSLogEntry{
		ID:      uuid.NewString(),
		Status:  models.SMSQueued,
		Phone:   phone,
		Message: message,
		At:      s.now(),
	}
	if err := s.results.Append(ctx, result.ID, fieldSMSLog, entry); err != nil {
		return nil, err
	}

	msg := resultSMS{ResultID: result.ID, EntryID: entry.ID, Phone: phone, Message: message}
	if err := s.outbox.Submit(entry.ID, msg); err != nil {
		s.logger.Error("sms submit failed", zap.String("result_id", result.ID), zap.Error(err))
		s.record(ctx, result.ID, models.SMSLogEntry{
			ID:     entry.ID,
			Status: models.SMSFailed,
			Phone:  phone,
			Error:  err.Error(),
			At:     s.now(),
		})
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sms dispatcher unavailable")
	}
	return &entry, nil
}

func (s *SMSService) resultMessage(r *models.Result) string {
	return fmt.Sprintf("%s: %s scored %s/%s (GPA %s) in %s.",
		s.school, r.StudentName, formatNumber(r.ObtainedMarks), formatNumber(r.TotalMarks), formatNumber(r.GPA), r.ExamName)
}

func formatNumber(n models.Number) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s *SMSService) deliver(ctx context.Context, env outbox.Envelope[resultSMS]) error {
	payload := env.Message
	receipt, err := s.gateway.Send(ctx, sms.Message{To: payload.Phone, Body: payload.Message})
	if err != nil {
		return err
	}
	at := receipt.SentAt
	if at.IsZero() {
		at = s.now()
	}
	s.record(ctx, payload.ResultID, models.SMSLogEntry{
		ID:         payload.EntryID,
		Status:     models.SMSSent,
		Phone:      payload.Phone,
		ProviderID: receipt.ProviderID,
		At:         at,
	})
	return nil
}

func (s *SMSService) deadLetter(ctx context.Context, env outbox.Envelope[resultSMS], cause error) {
	payload := env.Message
	s.record(ctx, payload.ResultID, models.SMSLogEntry{
		ID:     payload.EntryID,
		Status: models.SMSFailed,
		Phone:  payload.Phone,
		Error:  cause.Error(),
		At:     s.now(),
	})
}

// record appends to the log even while the outbox is shutting down.
func (s *SMSService) record(ctx context.Context, resultID string, entry models.SMSLogEntry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.results.Append(ctx, resultID, fieldSMSLog, entry); err != nil {
		s.logger.Warn("sms log append failed",
			zap.String("result_id", resultID),
			zap.String("status", entry.Status),
			zap.Error(err),
		)
	}
}
