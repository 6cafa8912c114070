package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// bookingRepository implements the BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking in the database
func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by its ID
func (r *bookingRepository) GetByID(id uint64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByCalendlyID retrieves a booking by its external Calendly event URI
func (r *bookingRepository) GetByCalendlyID(calendlyID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Where("calendly_id = ?", calendlyID).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List retrieves bookings for the given time-window filter, ordered by
// scheduled_at descending. "upcoming" is boundary-inclusive (>= now),
// "today" covers [start of local day, +24h).
func (r *bookingRepository) List(filter BookingFilter, now time.Time) ([]models.Booking, error) {
	q := r.db.Model(&models.Booking{})

	switch filter {
	case BookingFilterUpcoming:
		q = q.Where("scheduled_at >= ?", now)
	case BookingFilterPast:
		q = q.Where("scheduled_at < ?", now)
	case BookingFilterToday:
		start := startOfDay(now)
		q = q.Where("scheduled_at >= ? AND scheduled_at < ?", start, start.Add(24*time.Hour))
	}

	var bookings []models.Booking
	err := q.Order("scheduled_at DESC").Find(&bookings).Error
	return bookings, err
}

// Update saves all fields of an existing booking
func (r *bookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

// UpdateStatus sets the workflow status of a booking
func (r *bookingRepository) UpdateStatus(id uint64, status string) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateNotes sets the admin notes of a booking
func (r *bookingRepository) UpdateNotes(id uint64, notes string) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("notes", notes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a booking by its ID
func (r *bookingRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertByCalendlyID atomically creates or updates the booking keyed by its
// unique calendly_id. The update column list intentionally excludes notes:
// notes are admin-only and must survive webhook redeliveries.
func (r *bookingRepository) UpsertByCalendlyID(booking *models.Booking) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "calendly_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client_name", "client_email", "client_phone",
			"service_id", "service_name", "session_type",
			"scheduled_at", "duration", "status", "updated_at",
		}),
	}).Create(booking).Error
}

// Count returns the total number of bookings
func (r *bookingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// Stats computes the dashboard rollups with the same window semantics as List.
func (r *bookingRepository) Stats(now time.Time) (*BookingStats, error) {
	stats := &BookingStats{}

	if err := r.db.Model(&models.Booking{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Booking{}).
		Where("scheduled_at >= ? AND status = ?", now, models.BookingStatusConfirmed).
		Count(&stats.UpcomingConfirmed).Error; err != nil {
		return nil, err
	}
	start := startOfDay(now)
	if err := r.db.Model(&models.Booking{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, start.Add(24*time.Hour)).
		Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCompleted).
		Count(&stats.Completed).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
