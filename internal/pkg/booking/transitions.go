package booking

import (
	"github.com/DanielHoffweber/VitalTable/app/models"
)

// allowedTransitions is the admin workflow: a confirmed booking can be
// closed out one way, closed-out bookings stay closed. The webhook upsert
// path does not go through this table (the provider's event stream is
// last-write-wins).
var allowedTransitions = map[string][]string{
	models.BookingStatusConfirmed: {
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	},
}

// CanTransition reports whether the workflow permits moving a booking from
// one status to another. Re-applying the current status is a permitted no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
