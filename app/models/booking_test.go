package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusHelpers(t *testing.T) {
	for _, s := range []string{BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow} {
		assert.True(t, IsValidBookingStatus(s), s)
	}
	assert.False(t, IsValidBookingStatus("PENDING"))
	assert.False(t, IsValidBookingStatus("confirmed"), "statuses are case sensitive")
	assert.False(t, IsValidBookingStatus(""))

	assert.False(t, IsTerminalStatus(BookingStatusConfirmed))
	assert.True(t, IsTerminalStatus(BookingStatusCompleted))
	assert.True(t, IsTerminalStatus(BookingStatusCancelled))
	assert.True(t, IsTerminalStatus(BookingStatusNoShow))
}

func TestBookingBeforeCreateDefaults(t *testing.T) {
	b := &Booking{}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, DefaultBookingDuration, b.Duration)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.Equal(t, SessionTypeVirtual, b.SessionType)

	b = &Booking{Duration: 30, Status: BookingStatusCancelled, SessionType: SessionTypeInPerson}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, 30, b.Duration)
	assert.Equal(t, BookingStatusCancelled, b.Status)
	assert.Equal(t, SessionTypeInPerson, b.SessionType)
}
