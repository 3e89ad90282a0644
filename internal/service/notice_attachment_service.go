package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/storage"
)

// FileStorage persists attachment bytes.
type FileStorage interface {
	Save(key string, r io.Reader) (int64, error)
	Open(key string) (*os.File, error)
	Delete(key string) error
}

// URLSigner issues and verifies download tokens.
type URLSigner interface {
	Generate(owner, key string) (string, time.Time, error)
	Parse(token string) (owner, key string, err error)
}

// NoticeAttachmentService stores notice attachments and hands out signed download links.
type NoticeAttachmentService struct {
	notices *Engine[models.Notice, *models.Notice]
	files   FileStorage
	signer  URLSigner
	logger  *zap.Logger
	now     func() time.Time
}

// NewNoticeAttachmentService constructs the service.
func NewNoticeAttachmentService(notices *Engine[models.Notice, *models.Notice], files FileStorage, signer URLSigner, logger *zap.Logger) *NoticeAttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeAttachmentService{
		notices: notices,
		files:   files,
		signer:  signer,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Attach stores r as the notice's attachment, replacing any previous file.
func (s *NoticeAttachmentService) Attach(ctx context.Context, noticeID, fileName, contentType string, r io.Reader) (*models.Notice, error) {
	notice, err := s.notices.Get(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file name is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := path.Join("notices", notice.ID, uuid.NewString()+strings.ToLower(filepath.Ext(fileName)))
	size, err := s.files.Save(key, r)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			return nil, appErrors.Clone(appErrors.ErrValidation, "file exceeds upload limit")
		case errors.Is(err, storage.ErrInvalidPath):
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid file name")
		}
		s.logger.Error("attachment save failed", zap.String("notice_id", notice.ID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment")
	}

	var previous *models.Attachment
	updated, err := s.notices.Modify(ctx, notice.ID, func(n *models.Notice) error {
		previous = n.Attachment
		n.Attachment = &models.Attachment{
			Key:         key,
			FileName:    fileName,
			ContentType: contentType,
			Size:        size,
			UploadedAt:  s.now(),
		}
		return nil
	})
	if err != nil {
		s.remove(key)
		return nil, err
	}
	if previous != nil && previous.Key != key {
		s.remove(previous.Key)
	}
	return updated, nil
}

// Link returns a signed, expiring download URL for the notice's attachment. baseURL is the API prefix.
func (s *NoticeAttachmentService) Link(ctx context.Context, noticeID, baseURL string) (*models.AttachmentLink, error) {
	notice, err := s.notices.Get(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if notice.Attachment == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "notice has no attachment")
	}
	token, expiresAt, err := s.signer.Generate(notice.ID, notice.Attachment.Key)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download link")
	}
	return &models.AttachmentLink{
		URL:       strings.TrimRight(baseURL, "/") + "/files/" + token,
		FileName:  notice.Attachment.FileName,
		ExpiresAt: expiresAt,
	}, nil
}

// Open resolves a download token to the stored file. The caller closes the file.
func (s *NoticeAttachmentService) Open(ctx context.Context, token string) (*os.File, *models.Attachment, error) {
	owner, key, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, storage.ErrExpiredToken) {
			return nil, nil, appErrors.Clone(appErrors.ErrForbidden, "download link expired")
		}
		return nil, nil, appErrors.Clone(appErrors.ErrForbidden, "invalid download link")
	}
	notice, err := s.notices.Get(ctx, owner)
	if err != nil {
		return nil, nil, err
	}
	// a replaced attachment invalidates links issued for the old file
	if notice.Attachment == nil || notice.Attachment.Key != key {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "attachment not found")
	}
	file, err := s.files.Open(key)
	if err != nil {
		s.logger.Warn("attachment open failed", zap.String("notice_id", notice.ID), zap.String("key", key), zap.Error(err))
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "attachment not found")
	}
	return file, notice.Attachment, nil
}

func (s *NoticeAttachmentService) remove(key string) {
	if err := s.files.Delete(key); err != nil {
		s.logger.Warn("attachment cleanup failed", zap.String("key", key), zap.Error(err))
	}
}
