package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/booking"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/database"
)

func bookingService() *booking.Service {
	return booking.NewServiceFromDB(database.GetDB())
}

// HandleAdminBookingList lists bookings in a time window
// (?filter=all|upcoming|past|today), newest scheduled first.
func HandleAdminBookingList(c *fiber.Ctx) error {
	filter := repository.ParseBookingFilter(c.Query("filter", "all"))

	bookings, err := bookingService().List(c.UserContext(), filter)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load bookings")
	}

	return c.JSON(fiber.Map{
		"filter":   string(filter),
		"bookings": bookings,
	})
}

// HandleAdminBookingGet returns one booking.
func HandleAdminBookingGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "booking id must be numeric")
	}

	b, err := bookingService().Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "booking not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load booking")
	}

	return c.JSON(b)
}

type adminBookingCreateRequest struct {
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	ClientPhone string  `json:"client_phone"`
	ServiceID   *uint64 `json:"service_id"`
	ServiceName string  `json:"service_name"`
	SessionType string  `json:"session_type"`
	ScheduledAt string  `json:"scheduled_at"` // RFC 3339
	Duration    int     `json:"duration"`
	Notes       string  `json:"notes"`
}

// HandleAdminBookingCreate stores a manually entered booking (phone or
// walk-in appointments that never went through the scheduler).
func HandleAdminBookingCreate(c *fiber.Ctx) error {
	var req adminBookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_scheduled_at", "scheduled_at must be RFC 3339")
	}

	b, err := bookingService().Create(c.UserContext(), booking.CreateInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		SessionType: req.SessionType,
		ScheduledAt: scheduledAt,
		Duration:    req.Duration,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, booking.ErrValidation) {
			return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not create booking")
	}

	return c.Status(fiber.StatusCreated).JSON(b)
}

type adminBookingStatusRequest struct {
	Status string `json:"status"`
}

// HandleAdminBookingStatus applies a workflow transition. Re-applying the
// current status answers 200 with the unchanged booking; a forbidden
// transition answers 409.
func HandleAdminBookingStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "booking id must be numeric")
	}

	var req adminBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}

	b, err := bookingService().ChangeStatus(c.UserContext(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, "not_found", "booking not found")
		case errors.Is(err, booking.ErrInvalidStatus):
			return jsonError(c, fiber.StatusBadRequest, "invalid_status", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			return jsonError(c, fiber.StatusConflict, "invalid_transition", err.Error())
		default:
			return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update booking")
		}
	}

	return c.JSON(b)
}

type adminBookingNotesRequest struct {
	Notes string `json:"notes"`
}

// HandleAdminBookingNotes replaces the internal notes of a booking.
func HandleAdminBookingNotes(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "booking id must be numeric")
	}

	var req adminBookingNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}

	b, err := bookingService().UpdateNotes(c.UserContext(), id, req.Notes)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "booking not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update booking")
	}

	return c.JSON(b)
}

// HandleAdminBookingDelete removes a booking permanently.
func HandleAdminBookingDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "booking id must be numeric")
	}

	if err := bookingService().Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "booking not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not delete booking")
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminBookingStats returns the dashboard rollups for bookings.
func HandleAdminBookingStats(c *fiber.Ctx) error {
	stats, err := bookingService().Stats(c.UserContext())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load booking stats")
	}

	return c.JSON(stats)
}
