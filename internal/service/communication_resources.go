package service

import (
	"context"
	"strings"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

const (
	fieldSMSLog     = "smsLog"
	fieldRemaining  = "remaining"
	fieldAttachment = "attachment"
)

var (
	studentRef = Reference{Field: "studentId", Collection: CollectionStudents, Label: "student", Display: "name", As: "studentName", ActiveOnly: true}
	examRef    = Reference{Field: "examId", Collection: CollectionExams, Label: "exam", Display: "name", As: "examName", ActiveOnly: true}
)

// SMSBalanceSchema declares purchased SMS credit packs. Credits are only spent through SMSService.Use.
func SMSBalanceSchema() Schema[models.SMSBalance] {
	return Schema[models.SMSBalance]{
		Collection: CollectionSMSBalances,
		Label:      "sms balance",
		Path:       "sms-balances",
		Filters:    []Filter{{Param: "provider", Field: "provider"}},
		Sort:       []repository.Sort{{Field: "purchasedAt", Desc: true}, {Field: repository.FieldCreatedAt, Desc: true}},
		Status:     true,
		Managed:    []string{fieldRemaining},
		Columns: []export.Column{
			{Key: "provider", Title: "Provider"},
			{Key: "credits", Title: "Credits"},
			{Key: "remaining", Title: "Remaining"},
			{Key: "rate", Title: "Rate"},
			{Key: "purchasedAt", Title: "Purchased"},
			{Key: "isActive", Title: "Active"},
		},
		Prepare: func(b *models.SMSBalance, creating bool) {
			if creating {
				b.Remaining = b.Credits
			}
			if b.PurchasedAt.IsZero() {
				b.PurchasedAt = models.Today()
			}
		},
	}
}

// SMSTemplateSchema declares reusable message bodies, unique by name.
func SMSTemplateSchema() Schema[models.SMSTemplate] {
	return Schema[models.SMSTemplate]{
		Collection:   CollectionSMSTemplates,
		Label:        "sms template",
		Path:         "sms-templates",
		Unique:       []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "template name already exists"}},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "body", Title: "Body"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// NoticeSchema declares notice board entries. Attachments are managed by NoticeAttachmentService.
func NoticeSchema() Schema[models.Notice] {
	return Schema[models.Notice]{
		Collection:   CollectionNotices,
		Label:        "notice",
		Path:         "notices",
		Filters:      []Filter{{Param: "audience", Field: "audience"}},
		Sort:         []repository.Sort{{Field: "publishedAt", Desc: true}, {Field: repository.FieldCreatedAt, Desc: true}},
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Managed:      []string{fieldAttachment},
		Columns: []export.Column{
			{Key: "title", Title: "Title"},
			{Key: "audience", Title: "Audience"},
			{Key: "publishedAt", Title: "Published"},
			{Key: "isActive", Title: "Active"},
		},
		Prepare: func(n *models.Notice, _ bool) {
			if n.PublishedAt.IsZero() {
				n.PublishedAt = models.Today()
			}
			if strings.TrimSpace(n.Audience) == "" {
				n.Audience = models.AudienceAll
			}
		},
	}
}

// ResultSchema declares exam results with an append-only SMS delivery log.
func ResultSchema() Schema[models.Result] {
	return Schema[models.Result]{
		Collection: CollectionResults,
		Label:      "result",
		Path:       "results",
		Unique:     []UniqueKey{{Fields: []string{"studentId", "examId"}, Message: "result already exists for this student and exam"}},
		References: []Reference{studentRef, examRef},
		Filters: []Filter{
			{Param: "studentId", Field: "studentId", Kind: FilterID},
			{Param: "examId", Field: "examId", Kind: FilterID},
		},
		Sort:       newestFirst,
		AppendOnly: []string{fieldSMSLog},
		Columns: []export.Column{
			{Key: "studentName", Title: "Student"},
			{Key: "examName", Title: "Exam"},
			{Key: "obtainedMarks", Title: "Obtained"},
			{Key: "totalMarks", Title: "Total"},
			{Key: "gpa", Title: "GPA"},
			{Key: "remarks", Title: "Remarks"},
		},
		Verify: func(_ context.Context, r *models.Result, lookup Lookup) error {
			return verifyEnrolment(lookup, r.StudentID, r.ExamID)
		},
	}
}

// AdmitCardSchema declares exam admit cards, one per student and exam.
func AdmitCardSchema() Schema[models.AdmitCard] {
	return Schema[models.AdmitCard]{
		Collection: CollectionAdmitCards,
		Label:      "admit card",
		Path:       "admit-cards",
		Unique:     []UniqueKey{{Fields: []string{"examId", "studentId"}, Message: "admit card already issued for this student and exam"}},
		References: []Reference{examRef, studentRef},
		Populate: []Populate{
			{Field: "examId", Collection: CollectionExams, Display: "name", As: "exam", Placeholder: deletedPlaceholder},
			{Field: "studentId", Collection: CollectionStudents, Display: "name", As: "student", Placeholder: deletedPlaceholder},
		},
		Filters: []Filter{
			{Param: "examId", Field: "examId", Kind: FilterID},
			{Param: "studentId", Field: "studentId", Kind: FilterID},
		},
		Sort: newestFirst,
		Bulk: true,
		Columns: []export.Column{
			{Key: "examName", Title: "Exam"},
			{Key: "studentName", Title: "Student"},
			{Key: "rollNumber", Title: "Roll"},
			{Key: "seatNumber", Title: "Seat"},
			{Key: "issuedAt", Title: "Issued"},
		},
		Prepare: func(a *models.AdmitCard, _ bool) {
			if a.IssuedAt.IsZero() {
				a.IssuedAt = models.Today()
			}
		},
		Verify: func(_ context.Context, a *models.AdmitCard, lookup Lookup) error {
			if err := verifyEnrolment(lookup, a.StudentID, a.ExamID); err != nil {
				return err
			}
			if a.RollNumber == "" {
				student, err := lookup(CollectionStudents, a.StudentID)
				if err != nil {
					return err
				}
				a.RollNumber = student.String("rollNumber")
			}
			return nil
		},
	}
}

// verifyEnrolment requires the student to belong to the exam's class.
func verifyEnrolment(lookup Lookup, studentID, examID string) error {
	exam, err := lookup(CollectionExams, examID)
	if err != nil {
		return err
	}
	student, err := lookup(CollectionStudents, studentID)
	if err != nil {
		return err
	}
	if student.String("classId") != exam.String("classId") {
		return appErrors.Clone(appErrors.ErrValidation, "student is not enrolled in the exam's class")
	}
	return nil
}
