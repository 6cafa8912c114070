package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry states for the admin inbox.
const (
	InquiryStatusNew      = "NEW"
	InquiryStatusRead     = "READ"
	InquiryStatusReplied  = "REPLIED"
	InquiryStatusArchived = "ARCHIVED"
)

// Inquiry is a contact-form submission. Reference is an opaque code shown to
// the sender so follow-up mail can be matched to the record.
type Inquiry struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Reference string         `gorm:"uniqueIndex;type:varchar(36);not null" json:"reference"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email     string         `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	Subject   string         `gorm:"type:varchar(255)" json:"subject" validate:"max=255"`
	Message   string         `gorm:"type:text;not null" json:"message" validate:"required,min=10"`
	Status    string         `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status" validate:"oneof=NEW READ REPLIED ARCHIVED"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Inquiry model
func (Inquiry) TableName() string {
	return "inquiries"
}

// IsValidInquiryStatus reports whether status is a known inbox state.
func IsValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusReplied, InquiryStatusArchived:
		return true
	default:
		return false
	}
}
