package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

func TestCanTransition(t *testing.T) {
	// open state
	assert.True(t, CanTransition(models.BookingStatusConfirmed, models.BookingStatusCompleted))
	assert.True(t, CanTransition(models.BookingStatusConfirmed, models.BookingStatusCancelled))
	assert.True(t, CanTransition(models.BookingStatusConfirmed, models.BookingStatusNoShow))

	// closed-out states admit no exit
	for _, from := range []string{models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusNoShow} {
		for _, to := range []string{models.BookingStatusConfirmed, models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusNoShow} {
			if from == to {
				assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
			} else {
				assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	}
}
