package models

// Student is an enrolled pupil. The roll number is unique within class and session.
type Student struct {
	Meta
	Status
	Name          string  `json:"name" validate:"required,max=150"`
	RollNumber    string  `json:"rollNumber" validate:"required,max=30"`
	ClassID       string  `json:"classId" validate:"required"`
	ClassName     string  `json:"className,omitempty"`
	BatchID       *string `json:"batchId"`
	BatchName     string  `json:"batchName,omitempty"`
	SectionID     *string `json:"sectionId"`
	SectionName   string  `json:"sectionName,omitempty"`
	SessionID     string  `json:"sessionId" validate:"required"`
	SessionName   string  `json:"sessionName,omitempty"`
	GuardianName  string  `json:"guardianName" validate:"max=150"`
	GuardianPhone string  `json:"guardianPhone" validate:"omitempty,phone"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth   Date    `json:"dateOfBirth"`
}
