package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
)

// AuditService appends audit entries to the audit_logs collection.
type AuditService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewAuditService constructs the service.
func NewAuditService(store repository.Store, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{store: store, logger: logger}
}

// Record stores entry. Failures are logged and returned; callers must not fail the audited request on them.
func (s *AuditService) Record(ctx context.Context, entry models.AuditLog) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit log: %w", err)
	}
	doc, err := repository.DecodeDocument(raw)
	if err != nil {
		return fmt.Errorf("decode audit log: %w", err)
	}
	if _, err := s.store.Insert(ctx, CollectionAuditLogs, doc); err != nil {
		s.logger.Warn("audit log write failed",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Error(err),
		)
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
