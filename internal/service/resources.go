package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

// Store collections.
const (
	CollectionSessions       = "sessions"
	CollectionClasses        = "classes"
	CollectionBatches        = "batches"
	CollectionSections       = "sections"
	CollectionSubjects       = "subjects"
	CollectionShifts         = "shifts"
	CollectionHolidays       = "holidays"
	CollectionExams          = "exams"
	CollectionGrades         = "grades"
	CollectionStudents       = "students"
	CollectionBankAccounts   = "bank_accounts"
	CollectionFeeTypes       = "fee_types"
	CollectionDiscountTypes  = "discount_types"
	CollectionDiscounts      = "discounts"
	CollectionFeeCollections = "fee_collections"
	CollectionSMSBalances    = "sms_balances"
	CollectionSMSTemplates   = "sms_templates"
	CollectionNotices        = "notices"
	CollectionResults        = "results"
	CollectionAdmitCards     = "admit_cards"
	CollectionAuditLogs      = "audit_logs"
)

const deletedPlaceholder = "(deleted)"

var (
	byName        = []repository.Sort{{Field: "name", Fold: true}}
	newestFirst   = []repository.Sort{{Field: repository.FieldCreatedAt, Desc: true}}
	classRef      = Reference{Field: "classId", Collection: CollectionClasses, Label: "class", Display: "name", As: "className", ActiveOnly: true}
	sessionRef    = Reference{Field: "sessionId", Collection: CollectionSessions, Label: "session", Display: "name", As: "sessionName"}
	batchRef      = Reference{Field: "batchId", Collection: CollectionBatches, Label: "batch", Display: "name", As: "batchName", ActiveOnly: true}
	classFilter   = Filter{Param: "classId", Field: "classId", Kind: FilterID}
	sessionFilter = Filter{Param: "sessionId", Field: "sessionId", Kind: FilterID}
	batchFilter   = Filter{Param: "batchId", Field: "batchId", Kind: FilterID}
)

// Resources holds the engine of every back-office resource.
type Resources struct {
	Sessions       *Engine[models.Session, *models.Session]
	Classes        *Engine[models.Class, *models.Class]
	Batches        *Engine[models.Batch, *models.Batch]
	Sections       *Engine[models.Section, *models.Section]
	Subjects       *Engine[models.Subject, *models.Subject]
	Shifts         *Engine[models.Shift, *models.Shift]
	Holidays       *Engine[models.Holiday, *models.Holiday]
	Exams          *Engine[models.Exam, *models.Exam]
	Grades         *Engine[models.Grade, *models.Grade]
	Students       *Engine[models.Student, *models.Student]
	BankAccounts   *Engine[models.BankAccount, *models.BankAccount]
	FeeTypes       *Engine[models.FeeType, *models.FeeType]
	DiscountTypes  *Engine[models.DiscountType, *models.DiscountType]
	Discounts      *Engine[models.Discount, *models.Discount]
	FeeCollections *Engine[models.FeeCollection, *models.FeeCollection]
	SMSBalances    *Engine[models.SMSBalance, *models.SMSBalance]
	SMSTemplates   *Engine[models.SMSTemplate, *models.SMSTemplate]
	Notices        *Engine[models.Notice, *models.Notice]
	Results        *Engine[models.Result, *models.Result]
	AdmitCards     *Engine[models.AdmitCard, *models.AdmitCard]
}

// NewResources builds every resource engine over store.
func NewResources(store repository.Store, validator *Validator, logger *zap.Logger) *Resources {
	if validator == nil {
		validator = NewValidator()
	}
	return &Resources{
		Sessions:       NewEngine(SessionSchema(), store, validator, logger),
		Classes:        NewEngine(ClassSchema(), store, validator, logger),
		Batches:        NewEngine(BatchSchema(), store, validator, logger),
		Sections:       NewEngine(SectionSchema(), store, validator, logger),
		Subjects:       NewEngine(SubjectSchema(), store, validator, logger),
		Shifts:         NewEngine(ShiftSchema(), store, validator, logger),
		Holidays:       NewEngine(HolidaySchema(), store, validator, logger),
		Exams:          NewEngine(ExamSchema(), store, validator, logger),
		Grades:         NewEngine(GradeSchema(), store, validator, logger),
		Students:       NewEngine(StudentSchema(), store, validator, logger),
		BankAccounts:   NewEngine(BankAccountSchema(), store, validator, logger),
		FeeTypes:       NewEngine(FeeTypeSchema(), store, validator, logger),
		DiscountTypes:  NewEngine(DiscountTypeSchema(), store, validator, logger),
		Discounts:      NewEngine(DiscountSchema(), store, validator, logger),
		FeeCollections: NewEngine(FeeCollectionSchema(), store, validator, logger),
		SMSBalances:    NewEngine(SMSBalanceSchema(), store, validator, logger),
		SMSTemplates:   NewEngine(SMSTemplateSchema(), store, validator, logger),
		Notices:        NewEngine(NoticeSchema(), store, validator, logger),
		Results:        NewEngine(ResultSchema(), store, validator, logger),
		AdmitCards:     NewEngine(AdmitCardSchema(), store, validator, logger),
	}
}

// SessionSchema declares academic sessions with a single current session.
func SessionSchema() Schema[models.Session] {
	return Schema[models.Session]{
		Collection: CollectionSessions,
		Label:      "session",
		Path:       "sessions",
		Unique:     []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "session name already exists"}},
		Filters:    []Filter{{Param: "isCurrent", Field: "isCurrent", Kind: FilterBool}},
		Sort:       []repository.Sort{{Field: "startDate", Desc: true}},
		Singleton: &Singleton{
			Field:          "isCurrent",
			ProtectDelete:  true,
			ProtectMessage: "cannot delete the current session; set another session as current first",
			Route:          "set-current",
		},
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "startDate", Title: "Start Date"},
			{Key: "endDate", Title: "End Date"},
			{Key: "isCurrent", Title: "Current"},
		},
	}
}

// ClassSchema declares classes, unique by name among active records.
func ClassSchema() Schema[models.Class] {
	return Schema[models.Class]{
		Collection:   CollectionClasses,
		Label:        "class",
		Path:         "classes",
		Unique:       []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "class name already exists"}},
		Sort:         []repository.Sort{{Field: "numericName"}, {Field: "name", Fold: true}},
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "numericName", Title: "Numeric Name"},
			{Key: "description", Title: "Description"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// BatchSchema declares batches within a class.
func BatchSchema() Schema[models.Batch] {
	return Schema[models.Batch]{
		Collection:   CollectionBatches,
		Label:        "batch",
		Path:         "batches",
		Unique:       []UniqueKey{{Fields: []string{"name", "classId"}, CaseInsensitive: true, Message: "batch name already exists in this class"}},
		References:   []Reference{classRef},
		Filters:      []Filter{classFilter},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "className", Title: "Class"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// SectionSchema declares sections within a class and optional batch.
func SectionSchema() Schema[models.Section] {
	return Schema[models.Section]{
		Collection: CollectionSections,
		Label:      "section",
		Path:       "sections",
		Unique: []UniqueKey{{
			Fields:          []string{"name", "classId", "batchId"},
			CaseInsensitive: true,
			Message:         "section name already exists in this class and batch",
		}},
		References:   []Reference{classRef, batchRef},
		Filters:      []Filter{classFilter, batchFilter},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "className", Title: "Class"},
			{Key: "batchName", Title: "Batch"},
			{Key: "capacity", Title: "Capacity"},
			{Key: "isActive", Title: "Active"},
		},
		Verify: func(_ context.Context, s *models.Section, lookup Lookup) error {
			if s.BatchID == nil {
				return nil
			}
			return belongsTo(lookup, CollectionBatches, *s.BatchID, "classId", s.ClassID, "batch does not belong to the selected class")
		},
	}
}

// SubjectSchema declares subjects taught in a class.
func SubjectSchema() Schema[models.Subject] {
	return Schema[models.Subject]{
		Collection:   CollectionSubjects,
		Label:        "subject",
		Path:         "subjects",
		Unique:       []UniqueKey{{Fields: []string{"name", "classId"}, CaseInsensitive: true, Message: "subject name already exists in this class"}},
		References:   []Reference{classRef},
		Filters:      []Filter{classFilter},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "code", Title: "Code"},
			{Key: "className", Title: "Class"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// ShiftSchema declares daily shifts with start and end times.
func ShiftSchema() Schema[models.Shift] {
	return Schema[models.Shift]{
		Collection:    CollectionShifts,
		Label:         "shift",
		Path:          "shifts",
		Unique:        []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "shift name already exists"}},
		Sort:          []repository.Sort{{Field: "startTime"}},
		Status:        true,
		SoftDelete:    true,
		HideInactive:  true,
		ToggleAliases: []string{"toggle"},
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "startTime", Title: "Start"},
			{Key: "endTime", Title: "End"},
			{Key: "lateAfterMinutes", Title: "Late After (min)"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// HolidaySchema declares holidays as date ranges within a session.
func HolidaySchema() Schema[models.Holiday] {
	return Schema[models.Holiday]{
		Collection: CollectionHolidays,
		Label:      "holiday",
		Path:       "holidays",
		Unique:     []UniqueKey{{Fields: []string{"title", "sessionId"}, CaseInsensitive: true, Message: "holiday title already exists in this session"}},
		References: []Reference{{Field: "sessionId", Collection: CollectionSessions, Label: "session"}},
		Populate: []Populate{{
			Field:       "sessionId",
			Collection:  CollectionSessions,
			Display:     "name",
			As:          "session",
			Placeholder: deletedPlaceholder,
		}},
		Filters: []Filter{sessionFilter},
		Sort:    newestFirst,
		Columns: []export.Column{
			{Key: "title", Title: "Title"},
			{Key: "sessionId", Title: "Session ID"},
			{Key: "dates", Title: "Dates"},
			{Key: "description", Title: "Description"},
		},
	}
}

// ExamSchema declares exams held for a class in a session.
func ExamSchema() Schema[models.Exam] {
	return Schema[models.Exam]{
		Collection: CollectionExams,
		Label:      "exam",
		Path:       "exams",
		Unique: []UniqueKey{{
			Fields:          []string{"name", "sessionId", "classId"},
			CaseInsensitive: true,
			Message:         "exam name already exists for this class and session",
		}},
		References:   []Reference{sessionRef, classRef},
		Filters:      []Filter{sessionFilter, classFilter},
		Sort:         []repository.Sort{{Field: "startDate", Desc: true}},
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "sessionName", Title: "Session"},
			{Key: "className", Title: "Class"},
			{Key: "startDate", Title: "Start Date"},
			{Key: "endDate", Title: "End Date"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// GradeSchema declares the mark bands used for grading.
func GradeSchema() Schema[models.Grade] {
	return Schema[models.Grade]{
		Collection: CollectionGrades,
		Label:      "grade",
		Path:       "grades",
		Unique:     []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "grade name already exists"}},
		Sort:       []repository.Sort{{Field: "minMark", Desc: true}},
		Columns: []export.Column{
			{Key: "name", Title: "Grade"},
			{Key: "minMark", Title: "Min Mark"},
			{Key: "maxMark", Title: "Max Mark"},
			{Key: "point", Title: "Point"},
		},
	}
}

// StudentSchema declares enrolled students and their class placement.
func StudentSchema() Schema[models.Student] {
	return Schema[models.Student]{
		Collection: CollectionStudents,
		Label:      "student",
		Path:       "students",
		Unique: []UniqueKey{{
			Fields:          []string{"rollNumber", "classId", "sessionId"},
			CaseInsensitive: true,
			Message:         "roll number already exists in this class and session",
		}},
		References: []Reference{
			classRef,
			batchRef,
			{Field: "sectionId", Collection: CollectionSections, Label: "section", Display: "name", As: "sectionName", ActiveOnly: true},
			sessionRef,
		},
		Filters: []Filter{
			classFilter,
			batchFilter,
			{Param: "sectionId", Field: "sectionId", Kind: FilterID},
			sessionFilter,
			{Param: "gender", Field: "gender"},
		},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Bulk:         true,
		Columns: []export.Column{
			{Key: "rollNumber", Title: "Roll"},
			{Key: "name", Title: "Name"},
			{Key: "className", Title: "Class"},
			{Key: "batchName", Title: "Batch"},
			{Key: "sectionName", Title: "Section"},
			{Key: "sessionName", Title: "Session"},
			{Key: "guardianName", Title: "Guardian"},
			{Key: "guardianPhone", Title: "Guardian Phone"},
			{Key: "isActive", Title: "Active"},
		},
		Verify: verifyStudentPlacement,
	}
}

func verifyStudentPlacement(_ context.Context, s *models.Student, lookup Lookup) error {
	if s.BatchID != nil {
		if err := belongsTo(lookup, CollectionBatches, *s.BatchID, "classId", s.ClassID, "batch does not belong to the selected class"); err != nil {
			return err
		}
	}
	if s.SectionID == nil {
		return nil
	}
	section, err := lookup(CollectionSections, *s.SectionID)
	if err != nil {
		return err
	}
	if section.String("classId") != s.ClassID {
		return appErrors.Clone(appErrors.ErrValidation, "section does not belong to the selected class")
	}
	if sectionBatch := section.String("batchId"); sectionBatch != "" && (s.BatchID == nil || *s.BatchID != sectionBatch) {
		return appErrors.Clone(appErrors.ErrValidation, "section does not belong to the selected batch")
	}
	return nil
}

// belongsTo checks that the referenced record's field equals want.
func belongsTo(lookup Lookup, collection, id, field, want, message string) error {
	doc, err := lookup(collection, id)
	if err != nil {
		return err
	}
	if doc.String(field) != want {
		return appErrors.Clone(appErrors.ErrValidation, message)
	}
	return nil
}
