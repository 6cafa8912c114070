package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/calendly"
)

var (
	// ErrNotFound marks an operation against a booking id that does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidStatus marks a status value outside the workflow enum.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrInvalidTransition marks a workflow move the transition table forbids.
	ErrInvalidTransition = errors.New("status transition not allowed")
	// ErrValidation marks a manual-create input that failed validation.
	ErrValidation = errors.New("invalid booking data")
)

// Service provides the booking workflow on top of the repositories:
// idempotent synchronization from scheduler webhooks, the admin status
// machine, and the dashboard rollups.
type Service struct {
	repo     repository.BookingRepository
	services repository.ServiceRepository
	views    ViewCache
}

// NewService creates a booking service from injected dependencies. views may
// be nil when no cache is available (tests, one-off tools).
func NewService(repo repository.BookingRepository, services repository.ServiceRepository, views ViewCache) *Service {
	return &Service{repo: repo, services: services, views: views}
}

// NewServiceFromDB creates a booking service from a GORM DB handle with the
// default Redis-backed view cache.
func NewServiceFromDB(db *gorm.DB) *Service {
	repos := repository.NewRepositories(db)
	return NewService(repos.Booking, repos.Service, NewRedisViewCache())
}

// CreateInput carries a manual (admin-entered) booking.
type CreateInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	ServiceID   *uint64
	ServiceName string
	SessionType string
	ScheduledAt time.Time
	Duration    int
	Notes       string
}

// Create stores a manually entered booking. Duration defaults to 60 minutes,
// status starts CONFIRMED. When a service id is given the display name is
// snapshotted from the service record so later renames do not rewrite
// booking history.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Booking, error) {
	_ = ctx
	name := strings.TrimSpace(in.ClientName)
	email := strings.TrimSpace(in.ClientEmail)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: client name and email are required", ErrValidation)
	}
	if in.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_at is required", ErrValidation)
	}
	if in.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	sessionType := strings.TrimSpace(in.SessionType)
	if sessionType == "" {
		sessionType = models.SessionTypeVirtual
	}
	if sessionType != models.SessionTypeVirtual && sessionType != models.SessionTypeInPerson {
		return nil, fmt.Errorf("%w: unknown session type %q", ErrValidation, in.SessionType)
	}

	serviceName := strings.TrimSpace(in.ServiceName)
	if in.ServiceID != nil && s.services != nil {
		if svc, err := s.services.GetByID(*in.ServiceID); err == nil {
			serviceName = svc.Title
		}
	}
	if serviceName == "" {
		serviceName = calendly.DefaultServiceName
	}

	booking := &models.Booking{
		ClientName:  name,
		ClientEmail: email,
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		ServiceID:   in.ServiceID,
		ServiceName: serviceName,
		SessionType: sessionType,
		ScheduledAt: in.ScheduledAt,
		Duration:    in.Duration,
		Status:      models.BookingStatusConfirmed,
		Notes:       in.Notes,
	}
	if booking.Duration == 0 {
		booking.Duration = models.DefaultBookingDuration
	}

	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}
	s.invalidateViews()
	return booking, nil
}

// IngestWebhookEvent converts a normalized scheduler event into an
// idempotent upsert keyed by the event URI. invitee.created confirms,
// invitee.canceled cancels. A cancellation for an id we have never seen
// still creates a cancelled record: the provider says the appointment
// existed, so the tombstone keeps the admin view truthful. Admin notes are
// never touched by this path.
func (s *Service) IngestWebhookEvent(ctx context.Context, ev *calendly.WebhookEvent) (*models.Booking, error) {
	_ = ctx
	if ev == nil || ev.CalendlyID == "" {
		return nil, fmt.Errorf("%w: missing calendly event uri", ErrValidation)
	}

	status := models.BookingStatusConfirmed
	if ev.Type == calendly.EventInviteeCanceled {
		status = models.BookingStatusCancelled
	}

	calendlyID := ev.CalendlyID
	booking := &models.Booking{
		CalendlyID:  &calendlyID,
		ClientName:  ev.InviteeName,
		ClientEmail: ev.InviteeEmail,
		ServiceName: ev.ServiceName,
		SessionType: ev.SessionType,
		ScheduledAt: ev.StartTime,
		Duration:    ev.Duration,
		Status:      status,
	}

	if err := s.repo.UpsertByCalendlyID(booking); err != nil {
		return nil, err
	}
	s.invalidateViews()

	// Re-read so callers see the converged row (id, preserved notes).
	stored, err := s.repo.GetByCalendlyID(calendlyID)
	if err != nil {
		return booking, nil
	}
	return stored, nil
}

// Get retrieves one booking by id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.Booking, error) {
	_ = ctx
	b, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List retrieves bookings in the given time window, newest scheduled first.
func (s *Service) List(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	_ = ctx
	return s.repo.List(filter, time.Now())
}

// ChangeStatus applies the admin workflow: CONFIRMED may move to COMPLETED,
// CANCELLED or NO_SHOW; closed-out states admit no exit. Re-applying the
// current status is a no-op.
func (s *Service) ChangeStatus(ctx context.Context, id uint64, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !CanTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateViews()

	current.Status = status
	return current, nil
}

// UpdateNotes replaces the admin notes of a booking.
func (s *Service) UpdateNotes(ctx context.Context, id uint64, notes string) (*models.Booking, error) {
	if err := s.repo.UpdateNotes(id, notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateViews()
	return s.Get(ctx, id)
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	_ = ctx
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateViews()
	return nil
}

// Stats returns the dashboard rollups, served from the view cache when warm.
func (s *Service) Stats(ctx context.Context) (*repository.BookingStats, error) {
	_ = ctx
	if s.views != nil {
		if stats, ok := s.views.GetStats(); ok {
			return stats, nil
		}
	}

	stats, err := s.repo.Stats(time.Now())
	if err != nil {
		return nil, err
	}
	if s.views != nil {
		s.views.SetStats(stats)
	}
	return stats, nil
}

func (s *Service) invalidateViews() {
	if s.views != nil {
		s.views.Invalidate()
	}
}
