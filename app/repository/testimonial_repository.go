package repository

import (
	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// testimonialRepository implements the TestimonialRepository interface
type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository instance
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

// Create creates a new testimonial in the database
func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// GetByID retrieves a testimonial by its ID
func (r *testimonialRepository) GetByID(id uint64) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// GetAll retrieves all testimonials, newest first
func (r *testimonialRepository) GetAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

// GetApproved retrieves the publicly visible testimonials
func (r *testimonialRepository) GetApproved() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Where("approved = ?", true).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

// GetRecent retrieves the most recent testimonials for the dashboard feed
func (r *testimonialRepository) GetRecent(limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Limit(limit).Find(&testimonials).Error
	return testimonials, err
}

// Update updates an existing testimonial in the database
func (r *testimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete soft deletes a testimonial by its ID
func (r *testimonialRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}

// Count returns the total number of testimonials
func (r *testimonialRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Testimonial{}).Count(&count).Error
	return count, err
}
