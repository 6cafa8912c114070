package calendly

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/DanielHoffweber/VitalTable/internal/pkg/env"
)

const (
	EventInviteeCreated  = "invitee.created"
	EventInviteeCanceled = "invitee.canceled"

	// DefaultServiceName is used when the scheduled event carries no
	// display name.
	DefaultServiceName = "Consultation"
)

// Config holds the per-deployment Calendly settings.
type Config struct {
	EmbedURL         string
	WebhookSecret    string
	RequireSignature bool
}

// LoadConfig reads the Calendly settings from the environment. An empty
// secret means deliveries are accepted unauthenticated (deployment warning,
// not an error).
func LoadConfig() *Config {
	return &Config{
		EmbedURL:         strings.TrimRight(strings.TrimSpace(env.GetEnv("CALENDLY_EMBED_URL", "")), "/"),
		WebhookSecret:    strings.TrimSpace(env.GetEnv("CALENDLY_WEBHOOK_SECRET", "")),
		RequireSignature: env.GetEnv("CALENDLY_WEBHOOK_REQUIRE_SIGNATURE", "false") == "true",
	}
}

// WebhookEvent is a normalized invitee event derived from a webhook delivery.
type WebhookEvent struct {
	Type         string
	CalendlyID   string
	InviteeName  string
	InviteeEmail string
	ServiceName  string
	SessionType  string // "virtual" | "in-person"
	StartTime    time.Time
	Duration     int // minutes
}

// IsInviteeEvent reports whether the delivery type is one we synchronize.
// Anything else is acknowledged and ignored.
func IsInviteeEvent(eventType string) bool {
	switch strings.ToLower(strings.TrimSpace(eventType)) {
	case EventInviteeCreated, EventInviteeCanceled:
		return true
	default:
		return false
	}
}

// EventTypeOf extracts just the event type from a raw delivery so the caller
// can decide whether to ignore it before full parsing.
func EventTypeOf(payload []byte) (string, error) {
	var envelope struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return "", err
	}
	return strings.TrimSpace(envelope.Event), nil
}

// ParseWebhookEvent validates and normalizes an invitee.created /
// invitee.canceled delivery. The event URI becomes the idempotency key,
// the duration is the rounded start/end distance in minutes and must be
// positive, and the session type is derived from the location kind.
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var raw struct {
		Event   string `json:"event"`
		Payload struct {
			URI   string `json:"uri"`
			Event struct {
				Name      string `json:"name"`
				StartTime string `json:"start_time"`
				EndTime   string `json:"end_time"`
				Location  struct {
					Type string `json:"type"`
				} `json:"location"`
			} `json:"event"`
			Invitee struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"invitee"`
		} `json:"payload"`
	}

	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	eventType := strings.ToLower(strings.TrimSpace(raw.Event))
	if !IsInviteeEvent(eventType) {
		return nil, fmt.Errorf("unsupported calendly event type: %s", raw.Event)
	}

	out := &WebhookEvent{
		Type:         eventType,
		CalendlyID:   strings.TrimSpace(raw.Payload.URI),
		InviteeName:  strings.TrimSpace(raw.Payload.Invitee.Name),
		InviteeEmail: strings.TrimSpace(raw.Payload.Invitee.Email),
		ServiceName:  strings.TrimSpace(raw.Payload.Event.Name),
		SessionType:  DeriveSessionType(raw.Payload.Event.Location.Type),
	}
	if out.CalendlyID == "" {
		return nil, errors.New("calendly webhook payload missing event uri")
	}
	if out.InviteeEmail == "" {
		return nil, errors.New("calendly webhook payload missing invitee email")
	}
	if out.InviteeName == "" {
		out.InviteeName = out.InviteeEmail
	}
	if out.ServiceName == "" {
		out.ServiceName = DefaultServiceName
	}

	start, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.Payload.Event.StartTime))
	if err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.Payload.Event.EndTime))
	if err != nil {
		return nil, fmt.Errorf("invalid end_time: %w", err)
	}
	out.StartTime = start

	out.Duration = DeriveDuration(start, end)
	if out.Duration <= 0 {
		return nil, fmt.Errorf("non-positive event duration: start=%s end=%s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return out, nil
}

// DeriveDuration returns the rounded distance between start and end in
// minutes. Callers must reject non-positive results.
func DeriveDuration(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// DeriveSessionType maps a Calendly location kind onto our session types.
// Physical and inbound-call locations are in-person appointments; every
// other (or missing) location means a remote consultation.
func DeriveSessionType(locationType string) string {
	switch strings.ToLower(strings.TrimSpace(locationType)) {
	case "physical", "inbound_call":
		return "in-person"
	default:
		return "virtual"
	}
}
