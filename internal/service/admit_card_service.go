package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

// AdmitCardRenderer renders printable admit cards.
type AdmitCardRenderer interface {
	RenderAdmitCard(card export.AdmitCard) ([]byte, error)
}

// AdmitCardService renders stored admit cards as PDF.
type AdmitCardService struct {
	cards    *Engine[models.AdmitCard, *models.AdmitCard]
	exams    *Engine[models.Exam, *models.Exam]
	students *Engine[models.Student, *models.Student]
	renderer AdmitCardRenderer
	school   string
	logger   *zap.Logger
}

// NewAdmitCardService constructs the service. A nil renderer uses the gofpdf exporter.
func NewAdmitCardService(res *Resources, renderer AdmitCardRenderer, school string, logger *zap.Logger) *AdmitCardService {
	if renderer == nil {
		renderer = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdmitCardService{
		cards:    res.AdmitCards,
		exams:    res.Exams,
		students: res.Students,
		renderer: renderer,
		school:   school,
		logger:   logger,
	}
}

// PDF returns the rendered card and a download file name.
func (s *AdmitCardService) PDF(ctx context.Context, id string) ([]byte, string, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	content := export.AdmitCard{
		School:     s.school,
		Exam:       card.ExamName,
		Student:    card.StudentName,
		RollNumber: card.RollNumber,
		SeatNumber: card.SeatNumber,
		IssuedAt:   card.IssuedAt.String(),
	}
	if card.Exam != nil && !card.Exam.Missing {
		content.Exam = card.Exam.Name
	}
	if card.Student != nil && !card.Student.Missing {
		content.Student = card.Student.Name
	}

	// exam and student details are optional; a deleted referent keeps the denormalised names
	if exam, err := s.exams.Get(ctx, card.ExamID); err == nil {
		content.ExamPeriod = fmt.Sprintf("%s to %s", exam.StartDate, exam.EndDate)
		content.Class = exam.ClassName
	} else {
		s.logger.Debug("admit card exam unavailable", zap.String("exam_id", card.ExamID), zap.Error(err))
	}
	if student, err := s.students.Get(ctx, card.StudentID); err == nil {
		content.Class = student.ClassName
		if section := student.SectionName; section != "" {
			content.Class += " / " + section
		}
	}

	pdf, err := s.renderer.RenderAdmitCard(content)
	if err != nil {
		s.logger.Error("admit card render failed", zap.String("id", card.ID), zap.Error(err))
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render admit card")
	}
	return pdf, admitCardFileName(card), nil
}

func admitCardFileName(card *models.AdmitCard) string {
	name := "admit-card-" + card.ID
	if roll := strings.TrimSpace(card.RollNumber); roll != "" {
		name = "admit-card-" + strings.Map(func(r rune) rune {
			if r == '/' || r == '\\' || r == ' ' || r == '"' {
				return '-'
			}
			return r
		}, roll) + "-" + card.ID[:8]
	}
	return name + ".pdf"
}
