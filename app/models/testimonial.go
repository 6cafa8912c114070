package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a client quote shown on the public site once approved.
type Testimonial struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	ClientName string         `gorm:"type:varchar(150);not null" json:"client_name" validate:"required,min=2,max=150"`
	Quote      string         `gorm:"type:text;not null" json:"quote" validate:"required"`
	Rating     int            `gorm:"not null;default:5" json:"rating" validate:"gte=1,lte=5"`
	Approved   bool           `gorm:"type:tinyint(1);default:0;index" json:"approved"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Testimonial model
func (Testimonial) TableName() string {
	return "testimonials"
}
