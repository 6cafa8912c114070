package models

import (
	"time"

	"gorm.io/gorm"
)

// Service represents a bookable consultation offering. Bookings keep a
// denormalized snapshot of Title/ID so history survives renames and deletes.
type Service struct {
	ID              uint64         `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Slug            string         `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=3,max=255"`
	Description     string         `gorm:"type:text" json:"description"`
	Visible         bool           `gorm:"type:tinyint(1);default:1;index" json:"visible"`
	PriceVirtual    int            `gorm:"not null;default:0" json:"price_virtual" validate:"gte=0"`    // cents
	PriceInPerson   int            `gorm:"not null;default:0" json:"price_in_person" validate:"gte=0"`  // cents
	DurationMinutes int            `gorm:"not null;default:60" json:"duration_minutes" validate:"gt=0"`
	SortOrder       int            `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
