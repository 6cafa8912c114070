package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/booking"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/calendly"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/database"
)

// webhookFailure is the opaque error body for any delivery we could not
// process. Calendly retries on 5xx, so persistent failures stay visible in
// the journal instead of being silently dropped.
const webhookFailure = "Webhook processing failed"

// HandleCalendlyWebhookCheck answers scheduler (and monitoring) probes.
func HandleCalendlyWebhookCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Calendly webhook endpoint is active",
	})
}

// HandleCalendlyWebhook ingests invitee.created / invitee.canceled
// deliveries. Every delivery is journaled first; an exact redelivery of a
// successfully processed payload is acknowledged without touching the
// booking store, while a redelivery of a failed one is processed again
// against the journaled row. Unknown event types are acknowledged and
// ignored, and malformed payloads answer 500 so the provider retries while
// the journal keeps the evidence.
func HandleCalendlyWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := strings.TrimSpace(c.Get("Calendly-Webhook-Signature"))
	cfg := calendly.LoadConfig()

	signatureValid := calendly.VerifyWebhookSignature(rawBody, signature, cfg.WebhookSecret)
	if !signatureValid {
		if cfg.RequireSignature {
			log.Warnf("[CalendlyWebhook] rejected delivery with invalid signature")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_signature"})
		}
		log.Warnf("[CalendlyWebhook] accepting delivery with missing or invalid signature")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	eventType, envelopeErr := calendly.EventTypeOf(rawBody)

	hash := sha256.Sum256(rawBody)
	repos := repository.GetGlobalRepositories()
	stored := &models.WebhookEvent{
		Provider:       models.WebhookProviderCalendly,
		PayloadHash:    hex.EncodeToString(hash[:]),
		EventType:      eventType,
		PayloadJSON:    string(rawBody),
		SignatureValid: signatureValid,
	}
	created, err := repos.WebhookEvent.Record(stored)
	if err != nil {
		log.Errorf("[CalendlyWebhook] journal write failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": webhookFailure})
	}
	if !created {
		prior, priorErr := repos.WebhookEvent.GetByPayloadHash(stored.Provider, stored.PayloadHash)
		if priorErr != nil {
			log.Errorf("[CalendlyWebhook] journal lookup failed: %v", priorErr)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": webhookFailure})
		}
		if prior.Processed() {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "duplicate": true})
		}
		// The provider is redelivering a payload we failed on. Run it again
		// against the journaled row so the booking eventually converges.
		log.Warnf("[CalendlyWebhook] reprocessing previously failed delivery %d", prior.ID)
		stored.ID = prior.ID
	}

	if envelopeErr != nil {
		_ = repos.WebhookEvent.MarkProcessed(stored.ID, envelopeErr)
		log.Errorf("[CalendlyWebhook] malformed delivery: %v", envelopeErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": webhookFailure})
	}
	if !calendly.IsInviteeEvent(eventType) {
		_ = repos.WebhookEvent.MarkProcessed(stored.ID, nil)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "ignored": true})
	}

	ev, err := calendly.ParseWebhookEvent(rawBody)
	if err != nil {
		_ = repos.WebhookEvent.MarkProcessed(stored.ID, err)
		log.Errorf("[CalendlyWebhook] malformed %s delivery: %v", eventType, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": webhookFailure})
	}

	svc := booking.NewServiceFromDB(database.GetDB())
	synced, syncErr := svc.IngestWebhookEvent(ctx, ev)
	_ = repos.WebhookEvent.MarkProcessed(stored.ID, syncErr)
	if syncErr != nil {
		log.Errorf("[CalendlyWebhook] booking sync failed for %s: %v", ev.CalendlyID, syncErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": webhookFailure})
	}

	log.Infof("[CalendlyWebhook] %s synchronized booking %d (%s)", ev.Type, synced.ID, synced.Status)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
