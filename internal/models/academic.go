package models

import (
	"errors"
	"fmt"
)

// Session is an academic year. At most one session is current.
type Session struct {
	Meta
	Name      string `json:"name" validate:"required,max=100"`
	StartDate Date   `json:"startDate" validate:"required"`
	EndDate   Date   `json:"endDate" validate:"required"`
	IsCurrent bool   `json:"isCurrent"`
}

func (s *Session) Validate() error {
	if s.EndDate.Before(s.StartDate) {
		return errors.New("startDate must not be after endDate")
	}
	return nil
}

// Class is a grade level such as "Six".
type Class struct {
	Meta
	Status
	Name        string `json:"name" validate:"required,max=100"`
	NumericName Int    `json:"numericName" validate:"min=0"`
	Description string `json:"description"`
}

// Batch groups students of one class.
type Batch struct {
	Meta
	Status
	Name      string `json:"name" validate:"required,max=100"`
	ClassID   string `json:"classId" validate:"required"`
	ClassName string `json:"className,omitempty"`
}

// Section subdivides a class, optionally within a batch.
type Section struct {
	Meta
	Status
	Name      string  `json:"name" validate:"required,max=100"`
	ClassID   string  `json:"classId" validate:"required"`
	ClassName string  `json:"className,omitempty"`
	BatchID   *string `json:"batchId"`
	BatchName string  `json:"batchName,omitempty"`
	Capacity  Int     `json:"capacity" validate:"min=0"`
}

// Subject is taught to a class.
type Subject struct {
	Meta
	Status
	Name      string `json:"name" validate:"required,max=100"`
	Code      string `json:"code" validate:"max=30"`
	ClassID   string `json:"classId" validate:"required"`
	ClassName string `json:"className,omitempty"`
}

// Shift is an attendance window expressed as HH:MM clock times.
type Shift struct {
	Meta
	Status
	Name             string `json:"name" validate:"required,max=100"`
	StartTime        string `json:"startTime" validate:"required,clock"`
	EndTime          string `json:"endTime" validate:"required,clock"`
	LateAfterMinutes Int    `json:"lateAfterMinutes" validate:"min=0"`
}

func (s *Shift) Validate() error {
	// zero-padded HH:MM compares lexically
	if s.EndTime <= s.StartTime {
		return errors.New("endTime must be after startTime")
	}
	return nil
}

// Holiday is a named set of day ranges within a session.
type Holiday struct {
	Meta
	Title       string      `json:"title" validate:"required,max=150"`
	SessionID   string      `json:"sessionId" validate:"required"`
	Session     *RefSummary `json:"session,omitempty"`
	Dates       []DateRange `json:"dates" validate:"required,min=1,dive"`
	Description string      `json:"description"`
}

func (h *Holiday) Validate() error {
	for i, r := range h.Dates {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("dates[%d]: %w", i, err)
		}
	}
	return nil
}

// Covers reports whether any of the holiday's ranges contains day.
func (h *Holiday) Covers(day Date) bool {
	for _, r := range h.Dates {
		if r.Contains(day) {
			return true
		}
	}
	return false
}

// OverlapsPeriod reports whether any range touches [from, to].
func (h *Holiday) OverlapsPeriod(from, to Date) bool {
	for _, r := range h.Dates {
		if r.Overlaps(from, to) {
			return true
		}
	}
	return false
}

// Exam is scheduled for one class in one session.
type Exam struct {
	Meta
	Status
	Name        string `json:"name" validate:"required,max=150"`
	SessionID   string `json:"sessionId" validate:"required"`
	SessionName string `json:"sessionName,omitempty"`
	ClassID     string `json:"classId" validate:"required"`
	ClassName   string `json:"className,omitempty"`
	StartDate   Date   `json:"startDate" validate:"required"`
	EndDate     Date   `json:"endDate" validate:"required"`
}

func (e *Exam) Validate() error {
	if e.EndDate.Before(e.StartDate) {
		return errors.New("startDate must not be after endDate")
	}
	return nil
}

// Grade maps a mark band to a letter and grade point.
type Grade struct {
	Meta
	Name    string `json:"name" validate:"required,max=20"`
	MinMark Number `json:"minMark" validate:"min=0"`
	MaxMark Number `json:"maxMark" validate:"min=0"`
	Point   Number `json:"point" validate:"min=0"`
}

func (g *Grade) Validate() error {
	if g.MaxMark < g.MinMark {
		return errors.New("minMark must not exceed maxMark")
	}
	return nil
}
