package models

import (
	"errors"
	"time"
)

// SMSBalance is a purchased block of SMS credits.
type SMSBalance struct {
	Meta
	Status
	Provider    string `json:"provider" validate:"required,max=100"`
	Credits     Int    `json:"credits" validate:"gt=0"`
	Remaining   Int    `json:"remaining" validate:"min=0"`
	Rate        Money  `json:"rate"`
	PurchasedAt Date   `json:"purchasedAt"`
}

func (b *SMSBalance) Validate() error {
	if b.Remaining > b.Credits {
		return errors.New("remaining credits cannot exceed purchased credits")
	}
	return nil
}

// SMSUsage is the payload of a credit consumption.
type SMSUsage struct {
	Count Int `json:"count" validate:"gt=0"`
}

// SMSTemplate is a reusable message body.
type SMSTemplate struct {
	Meta
	Status
	Name string `json:"name" validate:"required,max=100"`
	Body string `json:"body" validate:"required,max=1000"`
}

// Notice audiences.
const (
	AudienceAll       = "all"
	AudienceStudents  = "students"
	AudienceStaff     = "staff"
	AudienceGuardians = "guardians"
)

// Notice is a board announcement with an optional attachment.
type Notice struct {
	Meta
	Status
	Title       string      `json:"title" validate:"required,max=200"`
	Body        string      `json:"body" validate:"required"`
	Audience    string      `json:"audience" validate:"omitempty,oneof=all students staff guardians"`
	PublishedAt Date        `json:"publishedAt"`
	Attachment  *Attachment `json:"attachment,omitempty"`
}

// Attachment describes a stored file.
type Attachment struct {
	Key         string    `json:"key"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// AttachmentLink is a time-limited download URL.
type AttachmentLink struct {
	URL       string    `json:"url"`
	FileName  string    `json:"fileName"`
	ExpiresAt time.Time `json:"expiresAt"`
}
