package repository

import (
	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// serviceRepository implements the ServiceRepository interface
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// Create creates a new service in the database
func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// GetByID retrieves a service by its ID
func (r *serviceRepository) GetByID(id uint64) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetBySlug retrieves a service by its slug
func (r *serviceRepository) GetBySlug(slug string) (*models.Service, error) {
	var service models.Service
	err := r.db.Where("slug = ?", slug).First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetAll retrieves all services ordered for the admin listing
func (r *serviceRepository) GetAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("sort_order ASC, title ASC").Find(&services).Error
	return services, err
}

// GetVisible retrieves the publicly bookable services
func (r *serviceRepository) GetVisible() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("visible = ?", true).Order("sort_order ASC, title ASC").Find(&services).Error
	return services, err
}

// Update updates an existing service in the database
func (r *serviceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete soft deletes a service by its ID
func (r *serviceRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Service{}, id).Error
}

// Count returns the total number of services
func (r *serviceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *serviceRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *serviceRepository) SlugExistsExceptID(slug string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
