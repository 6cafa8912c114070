package calendly

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveryJSON(event, uri, name, email, serviceName, locationType, start, end string) []byte {
	return []byte(fmt.Sprintf(`{
		"event": %q,
		"payload": {
			"uri": %q,
			"event": {
				"name": %q,
				"start_time": %q,
				"end_time": %q,
				"location": {"type": %q}
			},
			"invitee": {"name": %q, "email": %q}
		}
	}`, event, uri, serviceName, start, end, locationType, name, email))
}

func TestParseWebhookEventCreated(t *testing.T) {
	payload := deliveryJSON(
		"invitee.created",
		"https://api.calendly.com/scheduled_events/abc123",
		"Jane Muster", "jane@example.com",
		"Initial Consultation", "zoom",
		"2026-03-10T09:00:00Z", "2026-03-10T09:45:00Z",
	)

	ev, err := ParseWebhookEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, EventInviteeCreated, ev.Type)
	assert.Equal(t, "https://api.calendly.com/scheduled_events/abc123", ev.CalendlyID)
	assert.Equal(t, "Jane Muster", ev.InviteeName)
	assert.Equal(t, "jane@example.com", ev.InviteeEmail)
	assert.Equal(t, "Initial Consultation", ev.ServiceName)
	assert.Equal(t, "virtual", ev.SessionType)
	assert.Equal(t, 45, ev.Duration)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), ev.StartTime.UTC())
}

func TestParseWebhookEventCanceled(t *testing.T) {
	payload := deliveryJSON(
		"invitee.canceled",
		"https://api.calendly.com/scheduled_events/abc123",
		"Jane Muster", "jane@example.com",
		"Initial Consultation", "physical",
		"2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z",
	)

	ev, err := ParseWebhookEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, EventInviteeCanceled, ev.Type)
	assert.Equal(t, "in-person", ev.SessionType)
	assert.Equal(t, 60, ev.Duration)
}

func TestParseWebhookEventFallbacks(t *testing.T) {
	// Missing invitee name falls back to the email, missing event name to
	// the default service name.
	payload := deliveryJSON(
		"invitee.created",
		"https://api.calendly.com/scheduled_events/xyz",
		"", "jane@example.com",
		"", "",
		"2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z",
	)

	ev, err := ParseWebhookEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", ev.InviteeName)
	assert.Equal(t, DefaultServiceName, ev.ServiceName)
	assert.Equal(t, "virtual", ev.SessionType)
}

func TestParseWebhookEventRejections(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"not json", []byte(`{{`)},
		{"unsupported event", deliveryJSON("routing_form_submission.created", "uri", "n", "e@x.com", "s", "", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z")},
		{"missing uri", deliveryJSON("invitee.created", "", "n", "e@x.com", "s", "", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z")},
		{"missing email", deliveryJSON("invitee.created", "uri", "n", "", "s", "", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z")},
		{"bad start", deliveryJSON("invitee.created", "uri", "n", "e@x.com", "s", "", "yesterday", "2026-03-10T10:00:00Z")},
		{"bad end", deliveryJSON("invitee.created", "uri", "n", "e@x.com", "s", "", "2026-03-10T09:00:00Z", "")},
		{"zero duration", deliveryJSON("invitee.created", "uri", "n", "e@x.com", "s", "", "2026-03-10T09:00:00Z", "2026-03-10T09:00:00Z")},
		{"negative duration", deliveryJSON("invitee.created", "uri", "n", "e@x.com", "s", "", "2026-03-10T10:00:00Z", "2026-03-10T09:00:00Z")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWebhookEvent(tc.payload)
			assert.Error(t, err)
		})
	}
}

func TestEventTypeOf(t *testing.T) {
	typ, err := EventTypeOf([]byte(`{"event":"invitee.created","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "invitee.created", typ)

	typ, err = EventTypeOf([]byte(`{"payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "", typ)

	_, err = EventTypeOf([]byte(`not json`))
	assert.Error(t, err)
}

func TestIsInviteeEvent(t *testing.T) {
	assert.True(t, IsInviteeEvent("invitee.created"))
	assert.True(t, IsInviteeEvent("invitee.canceled"))
	assert.True(t, IsInviteeEvent(" Invitee.Created "))
	assert.False(t, IsInviteeEvent("routing_form_submission.created"))
	assert.False(t, IsInviteeEvent(""))
}

func TestDeriveSessionType(t *testing.T) {
	assert.Equal(t, "in-person", DeriveSessionType("physical"))
	assert.Equal(t, "in-person", DeriveSessionType("inbound_call"))
	assert.Equal(t, "virtual", DeriveSessionType("zoom"))
	assert.Equal(t, "virtual", DeriveSessionType("google_conference"))
	assert.Equal(t, "virtual", DeriveSessionType(""))
}

func TestDeriveDuration(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, DeriveDuration(start, start.Add(30*time.Minute)))
	// sub-minute distances round to the nearest minute
	assert.Equal(t, 30, DeriveDuration(start, start.Add(30*time.Minute+20*time.Second)))
	assert.Equal(t, 0, DeriveDuration(start, start))
	assert.Equal(t, -30, DeriveDuration(start, start.Add(-30*time.Minute)))
}

func signedHeader(t *testing.T, payload []byte, timestamp, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"event":"invitee.created"}`)
	secret := "whsec_test"
	header := signedHeader(t, payload, "1767200000", secret)

	assert.True(t, VerifyWebhookSignature(payload, header, secret))
	assert.False(t, VerifyWebhookSignature(payload, header, "other-secret"))
	assert.False(t, VerifyWebhookSignature([]byte(`tampered`), header, secret))
	assert.False(t, VerifyWebhookSignature(payload, "", secret))
	assert.False(t, VerifyWebhookSignature(payload, header, ""))
	assert.False(t, VerifyWebhookSignature(payload, "t=123", secret))
	assert.False(t, VerifyWebhookSignature(payload, "v1=abcd", secret))
	assert.False(t, VerifyWebhookSignature(payload, "t=123,v1=zzzz", secret))
}
