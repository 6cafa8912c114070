package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/calendly"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	nextID   uint64
	bookings map[uint64]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1, bookings: map[uint64]*models.Booking{}}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	if b.Status == "" {
		b.Status = models.BookingStatusConfirmed
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(id uint64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetByCalendlyID(calendlyID string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.CalendlyID != nil && *b.CalendlyID == calendlyID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) List(filter repository.BookingFilter, now time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id uint64, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdateNotes(id uint64, notes string) error {
	b, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Notes = notes
	return nil
}

func (f *fakeBookingRepo) Delete(id uint64) error {
	if _, ok := f.bookings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.bookings, id)
	return nil
}

// UpsertByCalendlyID mirrors the SQL upsert: insert on a new key, otherwise
// update everything except the admin notes.
func (f *fakeBookingRepo) UpsertByCalendlyID(b *models.Booking) error {
	if b.CalendlyID == nil {
		return errors.New("missing calendly id")
	}
	existing, err := f.GetByCalendlyID(*b.CalendlyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return f.Create(b)
	}
	if err != nil {
		return err
	}

	stored := f.bookings[existing.ID]
	stored.ClientName = b.ClientName
	stored.ClientEmail = b.ClientEmail
	stored.ClientPhone = b.ClientPhone
	stored.ServiceID = b.ServiceID
	stored.ServiceName = b.ServiceName
	stored.SessionType = b.SessionType
	stored.ScheduledAt = b.ScheduledAt
	stored.Duration = b.Duration
	stored.Status = b.Status
	return nil
}

func (f *fakeBookingRepo) Count() (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) Stats(now time.Time) (*repository.BookingStats, error) {
	stats := &repository.BookingStats{Total: int64(len(f.bookings))}
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusCompleted {
			stats.Completed++
		}
		if b.Status == models.BookingStatusConfirmed && !b.ScheduledAt.Before(now) {
			stats.UpcomingConfirmed++
		}
	}
	return stats, nil
}

// fakeViewCache records cache traffic.
type fakeViewCache struct {
	stats         *repository.BookingStats
	invalidations int
}

func (f *fakeViewCache) GetStats() (*repository.BookingStats, bool) {
	if f.stats == nil {
		return nil, false
	}
	return f.stats, true
}

func (f *fakeViewCache) SetStats(stats *repository.BookingStats) { f.stats = stats }

func (f *fakeViewCache) Invalidate() {
	f.stats = nil
	f.invalidations++
}

func newTestService() (*Service, *fakeBookingRepo, *fakeViewCache) {
	repo := newFakeBookingRepo()
	views := &fakeViewCache{}
	return NewService(repo, nil, views), repo, views
}

func TestCreateDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	b, err := svc.Create(context.Background(), CreateInput{
		ClientName:  "Jane Muster",
		ClientEmail: "jane@example.com",
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, models.DefaultBookingDuration, b.Duration)
	assert.Equal(t, models.SessionTypeVirtual, b.SessionType)
	assert.Equal(t, calendly.DefaultServiceName, b.ServiceName)
	assert.Nil(t, b.CalendlyID)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService()
	scheduled := time.Now().Add(time.Hour)

	_, err := svc.Create(context.Background(), CreateInput{ClientEmail: "x@y.z", ScheduledAt: scheduled})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{ClientName: "X", ScheduledAt: scheduled})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{ClientName: "X", ClientEmail: "x@y.z"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{
		ClientName: "X", ClientEmail: "x@y.z", ScheduledAt: scheduled, SessionType: "telepathy",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangeStatusWorkflow(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusNoShow, true},
		{models.BookingStatusCompleted, models.BookingStatusConfirmed, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusCompleted, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusNoShow, models.BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			svc, repo, _ := newTestService()
			seed := &models.Booking{
				ClientName:  "Jane",
				ClientEmail: "jane@example.com",
				ScheduledAt: time.Now(),
				Status:      tc.from,
			}
			require.NoError(t, repo.Create(seed))

			updated, err := svc.ChangeStatus(context.Background(), seed.ID, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
				stored, _ := repo.GetByID(seed.ID)
				assert.Equal(t, tc.to, stored.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				stored, _ := repo.GetByID(seed.ID)
				assert.Equal(t, tc.from, stored.Status)
			}
		})
	}
}

func TestChangeStatusSameStatusIsNoOp(t *testing.T) {
	svc, repo, views := newTestService()
	seed := &models.Booking{ClientName: "J", ClientEmail: "j@x.y", ScheduledAt: time.Now(), Status: models.BookingStatusCancelled}
	require.NoError(t, repo.Create(seed))

	updated, err := svc.ChangeStatus(context.Background(), seed.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	assert.Zero(t, views.invalidations)
}

func TestChangeStatusRejections(t *testing.T) {
	svc, repo, _ := newTestService()
	seed := &models.Booking{ClientName: "J", ClientEmail: "j@x.y", ScheduledAt: time.Now(), Status: models.BookingStatusConfirmed}
	require.NoError(t, repo.Create(seed))

	_, err := svc.ChangeStatus(context.Background(), seed.ID, "PENDING")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.ChangeStatus(context.Background(), 9999, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngestWebhookEventCreateThenCancel(t *testing.T) {
	svc, repo, _ := newTestService()

	created := &calendly.WebhookEvent{
		Type:         calendly.EventInviteeCreated,
		CalendlyID:   "https://api.calendly.com/scheduled_events/abc",
		InviteeName:  "Jane Muster",
		InviteeEmail: "jane@example.com",
		ServiceName:  "Initial Consultation",
		SessionType:  models.SessionTypeVirtual,
		StartTime:    time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Duration:     45,
	}

	b, err := svc.IngestWebhookEvent(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, 45, b.Duration)

	// Admin annotates the booking between deliveries.
	_, err = svc.UpdateNotes(context.Background(), b.ID, "bring lab results")
	require.NoError(t, err)

	canceled := *created
	canceled.Type = calendly.EventInviteeCanceled

	b2, err := svc.IngestWebhookEvent(context.Background(), &canceled)
	require.NoError(t, err)
	assert.Equal(t, b.ID, b2.ID, "upsert must converge on the same row")
	assert.Equal(t, models.BookingStatusCancelled, b2.Status)
	assert.Equal(t, "bring lab results", b2.Notes, "webhook sync must not touch admin notes")

	total, _ := repo.Count()
	assert.EqualValues(t, 1, total)
}

func TestIngestWebhookEventCancelUnseenCreatesTombstone(t *testing.T) {
	svc, repo, _ := newTestService()

	ev := &calendly.WebhookEvent{
		Type:         calendly.EventInviteeCanceled,
		CalendlyID:   "https://api.calendly.com/scheduled_events/never-seen",
		InviteeName:  "Jane Muster",
		InviteeEmail: "jane@example.com",
		ServiceName:  "Initial Consultation",
		SessionType:  models.SessionTypeInPerson,
		StartTime:    time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC),
		Duration:     60,
	}

	b, err := svc.IngestWebhookEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)

	total, _ := repo.Count()
	assert.EqualValues(t, 1, total)
}

func TestIngestWebhookEventRedeliveryIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestService()

	ev := &calendly.WebhookEvent{
		Type:         calendly.EventInviteeCreated,
		CalendlyID:   "https://api.calendly.com/scheduled_events/abc",
		InviteeName:  "Jane",
		InviteeEmail: "jane@example.com",
		ServiceName:  "Follow-up Session",
		SessionType:  models.SessionTypeVirtual,
		StartTime:    time.Now().Add(24 * time.Hour),
		Duration:     30,
	}

	first, err := svc.IngestWebhookEvent(context.Background(), ev)
	require.NoError(t, err)
	second, err := svc.IngestWebhookEvent(context.Background(), ev)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	total, _ := repo.Count()
	assert.EqualValues(t, 1, total)
}

func TestIngestWebhookEventRejectsMissingID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.IngestWebhookEvent(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.IngestWebhookEvent(context.Background(), &calendly.WebhookEvent{Type: calendly.EventInviteeCreated})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatsUsesViewCache(t *testing.T) {
	svc, repo, views := newTestService()
	require.NoError(t, repo.Create(&models.Booking{
		ClientName: "J", ClientEmail: "j@x.y",
		ScheduledAt: time.Now().Add(time.Hour),
		Status:      models.BookingStatusConfirmed,
	}))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Total)
	require.NotNil(t, views.stats, "first read must warm the cache")

	// A write invalidates; the next read recomputes.
	_, err = svc.Create(context.Background(), CreateInput{
		ClientName: "K", ClientEmail: "k@x.y", ScheduledAt: time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Nil(t, views.stats)

	stats, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
}

func TestDelete(t *testing.T) {
	svc, repo, views := newTestService()
	seed := &models.Booking{ClientName: "J", ClientEmail: "j@x.y", ScheduledAt: time.Now()}
	require.NoError(t, repo.Create(seed))

	require.NoError(t, svc.Delete(context.Background(), seed.ID))
	assert.Positive(t, views.invalidations)

	err := svc.Delete(context.Background(), seed.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
