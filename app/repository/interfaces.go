package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// BookingFilter selects a time window for booking listings.
type BookingFilter string

const (
	BookingFilterAll      BookingFilter = "all"
	BookingFilterUpcoming BookingFilter = "upcoming"
	BookingFilterPast     BookingFilter = "past"
	BookingFilterToday    BookingFilter = "today"
)

// ParseBookingFilter maps a query-string value onto a known filter,
// defaulting to "all".
func ParseBookingFilter(s string) BookingFilter {
	switch BookingFilter(s) {
	case BookingFilterUpcoming, BookingFilterPast, BookingFilterToday:
		return BookingFilter(s)
	default:
		return BookingFilterAll
	}
}

// BookingStats holds the dashboard rollup counts for bookings.
type BookingStats struct {
	Total             int64 `json:"total"`
	UpcomingConfirmed int64 `json:"upcoming_confirmed"`
	Today             int64 `json:"today"`
	Completed         int64 `json:"completed"`
}

// BookingRepository defines the interface for booking-related database operations
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint64) (*models.Booking, error)
	GetByCalendlyID(calendlyID string) (*models.Booking, error)
	List(filter BookingFilter, now time.Time) ([]models.Booking, error)
	Update(booking *models.Booking) error
	UpdateStatus(id uint64, status string) error
	UpdateNotes(id uint64, notes string) error
	Delete(id uint64) error
	UpsertByCalendlyID(booking *models.Booking) error
	Count() (int64, error)
	Stats(now time.Time) (*BookingStats, error)
}

// ServiceRepository defines the interface for service-related operations
type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(id uint64) (*models.Service, error)
	GetBySlug(slug string) (*models.Service, error)
	GetAll() ([]models.Service, error)
	GetVisible() ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id uint64) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint64) (bool, error)
}

// PostRepository defines the interface for blog-post-related operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint64) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetPublished(offset, limit int) ([]models.Post, error)
	GetAll(offset, limit int) ([]models.Post, error)
	GetAllWithoutPagination() ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint64) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint64) (bool, error)
}

// TestimonialRepository defines the interface for testimonial operations
type TestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	GetByID(id uint64) (*models.Testimonial, error)
	GetAll() ([]models.Testimonial, error)
	GetApproved() ([]models.Testimonial, error)
	GetRecent(limit int) ([]models.Testimonial, error)
	Update(testimonial *models.Testimonial) error
	Delete(id uint64) error
	Count() (int64, error)
}

// InquiryRepository defines the interface for contact-inquiry operations
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	GetByID(id uint64) (*models.Inquiry, error)
	GetAll() ([]models.Inquiry, error)
	GetByStatus(status string) ([]models.Inquiry, error)
	GetRecent(limit int) ([]models.Inquiry, error)
	UpdateStatus(id uint64, status string) error
	Delete(id uint64) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// WebhookEventRepository journals inbound provider deliveries.
type WebhookEventRepository interface {
	// Record stores the delivery and reports whether it was newly created
	// (false means an exact duplicate was already journaled).
	Record(event *models.WebhookEvent) (bool, error)
	GetByPayloadHash(provider, payloadHash string) (*models.WebhookEvent, error)
	MarkProcessed(id uint64, processingErr error) error
	GetRecent(limit int) ([]models.WebhookEvent, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Booking      BookingRepository
	Service      ServiceRepository
	Post         PostRepository
	Testimonial  TestimonialRepository
	Inquiry      InquiryRepository
	User         UserRepository
	WebhookEvent WebhookEventRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Booking:      NewBookingRepository(db),
		Service:      NewServiceRepository(db),
		Post:         NewPostRepository(db),
		Testimonial:  NewTestimonialRepository(db),
		Inquiry:      NewInquiryRepository(db),
		User:         NewUserRepository(db),
		WebhookEvent: NewWebhookEventRepository(db),
	}
}
