package repository

import (
	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// inquiryRepository implements the InquiryRepository interface
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository instance
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create creates a new inquiry in the database
func (r *inquiryRepository) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// GetByID retrieves an inquiry by its ID
func (r *inquiryRepository) GetByID(id uint64) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// GetAll retrieves all inquiries, newest first
func (r *inquiryRepository) GetAll() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// GetByStatus retrieves inquiries in a given inbox state
func (r *inquiryRepository) GetByStatus(status string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// GetRecent retrieves the most recent inquiries for the dashboard feed
func (r *inquiryRepository) GetRecent(limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Order("created_at DESC").Limit(limit).Find(&inquiries).Error
	return inquiries, err
}

// UpdateStatus sets the inbox state of an inquiry
func (r *inquiryRepository) UpdateStatus(id uint64, status string) error {
	res := r.db.Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft deletes an inquiry by its ID
func (r *inquiryRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Inquiry{}, id).Error
}

// Count returns the total number of inquiries
func (r *inquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of inquiries in a given inbox state
func (r *inquiryRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
