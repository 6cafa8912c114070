package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestBookingGetByCalendlyID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	calendlyID := "https://api.calendly.com/scheduled_events/abc"
	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE calendly_id = \\?").
		WithArgs(calendlyID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "calendly_id", "client_name", "client_email", "status", "duration"}).
			AddRow(7, calendlyID, "Jane Muster", "jane@example.com", models.BookingStatusConfirmed, 45))

	b, err := repo.GetByCalendlyID(calendlyID)
	require.NoError(t, err)
	assert.EqualValues(t, 7, b.ID)
	assert.Equal(t, "Jane Muster", b.ClientName)
	assert.Equal(t, 45, b.Duration)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingGetByCalendlyIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE calendly_id = \\?").
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByCalendlyID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(7, models.BookingStatusCompleted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatusNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(9999, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpsertByCalendlyID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	// The MySQL dialect renders the conflict clause as
	// ON DUPLICATE KEY UPDATE; the update list must never include notes.
	mock.ExpectExec("INSERT INTO `bookings` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(7, 1))

	calendlyID := "https://api.calendly.com/scheduled_events/abc"
	err := repo.UpsertByCalendlyID(&models.Booking{
		CalendlyID:  &calendlyID,
		ClientName:  "Jane Muster",
		ClientEmail: "jane@example.com",
		ServiceName: "Initial Consultation",
		SessionType: models.SessionTypeVirtual,
		ScheduledAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Duration:    45,
		Status:      models.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingDeleteNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectExec("DELETE FROM `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRecordDeduplicates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWebhookEventRepository(db)

	event := &models.WebhookEvent{
		Provider:    models.WebhookProviderCalendly,
		PayloadHash: "deadbeef",
		EventType:   "invitee.created",
		PayloadJSON: "{}",
	}

	// first delivery inserts a row
	mock.ExpectExec("INSERT INTO `webhook_events`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	created, err := repo.Record(event)
	require.NoError(t, err)
	assert.True(t, created)

	// exact redelivery hits the unique key and inserts nothing
	mock.ExpectExec("INSERT INTO `webhook_events`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	created, err = repo.Record(event)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventGetByPayloadHash(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWebhookEventRepository(db)

	processedAt := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `webhook_events` WHERE provider = \\? AND payload_hash = \\?").
		WithArgs(models.WebhookProviderCalendly, "deadbeef", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider", "payload_hash", "processed_at", "processing_error"}).
			AddRow(11, models.WebhookProviderCalendly, "deadbeef", processedAt, "datastore unavailable"))

	event, err := repo.GetByPayloadHash(models.WebhookProviderCalendly, "deadbeef")
	require.NoError(t, err)
	assert.EqualValues(t, 11, event.ID)
	assert.False(t, event.Processed(), "failed deliveries must not count as processed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventProcessed(t *testing.T) {
	now := time.Now()
	assert.False(t, (&models.WebhookEvent{}).Processed())
	assert.False(t, (&models.WebhookEvent{ProcessedAt: &now, ProcessingError: "boom"}).Processed())
	assert.True(t, (&models.WebhookEvent{ProcessedAt: &now}).Processed())
}

func TestBookingListWindows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)
	now := time.Now()

	// upcoming is boundary-inclusive
	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE scheduled_at >= \\? ORDER BY scheduled_at DESC").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	_, err := repo.List(BookingFilterUpcoming, now)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE scheduled_at < \\? ORDER BY scheduled_at DESC").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.List(BookingFilterPast, now)
	require.NoError(t, err)

	// today covers [start of local day, +24h)
	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE scheduled_at >= \\? AND scheduled_at < \\? ORDER BY scheduled_at DESC").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.List(BookingFilterToday, now)
	require.NoError(t, err)

	// all has no window
	mock.ExpectQuery("SELECT \\* FROM `bookings` ORDER BY scheduled_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.List(BookingFilterAll, now)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseBookingFilter(t *testing.T) {
	assert.Equal(t, BookingFilterUpcoming, ParseBookingFilter("upcoming"))
	assert.Equal(t, BookingFilterPast, ParseBookingFilter("past"))
	assert.Equal(t, BookingFilterToday, ParseBookingFilter("today"))
	assert.Equal(t, BookingFilterAll, ParseBookingFilter("all"))
	assert.Equal(t, BookingFilterAll, ParseBookingFilter(""))
	assert.Equal(t, BookingFilterAll, ParseBookingFilter("tomorrow"))
}
