package models

import (
	"errors"
	"time"
)

// SMS delivery states recorded on a result's log.
const (
	SMSQueued = "queued"
	SMSSent   = "sent"
	SMSFailed = "failed"
)

// SMSLogEntry is one event in a result's append-only SMS log.
type SMSLogEntry struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message,omitempty"`
	ProviderID string    `json:"providerId,omitempty"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// Result is a student's outcome in an exam.
type Result struct {
	Meta
	StudentID     string        `json:"studentId" validate:"required"`
	StudentName   string        `json:"studentName,omitempty"`
	ExamID        string        `json:"examId" validate:"required"`
	ExamName      string        `json:"examName,omitempty"`
	ObtainedMarks Number        `json:"obtainedMarks" validate:"min=0"`
	TotalMarks    Number        `json:"totalMarks" validate:"gt=0"`
	GPA           Number        `json:"gpa" validate:"min=0,max=5"`
	Remarks       string        `json:"remarks"`
	SMSLog        []SMSLogEntry `json:"smsLog,omitempty"`
}

func (r *Result) Validate() error {
	if r.ObtainedMarks > r.TotalMarks {
		return errors.New("obtainedMarks cannot exceed totalMarks")
	}
	return nil
}

// SendSMSRequest overrides the default recipient or message of a result SMS.
type SendSMSRequest struct {
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Message string `json:"message" validate:"max=480"`
}

// AdmitCard admits a student to an exam.
type AdmitCard struct {
	Meta
	ExamID      string      `json:"examId" validate:"required"`
	ExamName    string      `json:"examName,omitempty"`
	StudentID   string      `json:"studentId" validate:"required"`
	StudentName string      `json:"studentName,omitempty"`
	RollNumber  string      `json:"rollNumber" validate:"max=30"`
	SeatNumber  string      `json:"seatNumber" validate:"max=30"`
	IssuedAt    Date        `json:"issuedAt"`
	Exam        *RefSummary `json:"exam,omitempty"`
	Student     *RefSummary `json:"student,omitempty"`
}
