package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking workflow states. CONFIRMED is the entry state; the other three are
// terminal from the admin workflow's point of view.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusNoShow    = "NO_SHOW"
)

const (
	SessionTypeVirtual  = "virtual"
	SessionTypeInPerson = "in-person"
)

// DefaultBookingDuration is applied when a booking is created without an
// explicit duration (minutes).
const DefaultBookingDuration = 60

// Booking represents one scheduled (or proposed) consultation. CalendlyID is
// the idempotency key for webhook-driven upserts and unique when present;
// manually created bookings leave it NULL.
type Booking struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	CalendlyID  *string    `gorm:"uniqueIndex;type:varchar(255)" json:"calendly_id,omitempty"`
	ClientName  string     `gorm:"type:varchar(150);not null" json:"client_name" validate:"required,min=2,max=150"`
	ClientEmail string     `gorm:"type:varchar(200);not null;index" json:"client_email" validate:"required,email,max=200"`
	ClientPhone string     `gorm:"type:varchar(50)" json:"client_phone,omitempty" validate:"max=50"`
	ServiceID   *uint64    `gorm:"index" json:"service_id,omitempty"`
	Service     *Service   `gorm:"foreignKey:ServiceID" json:"-"`
	ServiceName string     `gorm:"type:varchar(255);not null" json:"service_name" validate:"required,max=255"`
	SessionType string     `gorm:"type:varchar(20);not null;default:'virtual'" json:"session_type" validate:"oneof=virtual in-person"`
	ScheduledAt time.Time  `gorm:"not null;index" json:"scheduled_at"`
	Duration    int        `gorm:"not null;default:60" json:"duration" validate:"gt=0"`
	Status      string     `gorm:"type:varchar(20);not null;default:'CONFIRMED';index" json:"status" validate:"oneof=CONFIRMED COMPLETED CANCELLED NO_SHOW"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate fills in the workflow defaults so manual and webhook-driven
// creation paths behave the same.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Duration <= 0 {
		b.Duration = DefaultBookingDuration
	}
	if b.Status == "" {
		b.Status = BookingStatusConfirmed
	}
	if b.SessionType == "" {
		b.SessionType = SessionTypeVirtual
	}
	return nil
}

// IsTerminalStatus reports whether the given status has no outgoing
// transitions in the admin workflow.
func IsTerminalStatus(status string) bool {
	switch status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	default:
		return false
	}
}

// IsValidBookingStatus reports whether status is one of the four workflow states.
func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	default:
		return false
	}
}
