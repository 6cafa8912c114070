package models

import "time"

const WebhookProviderCalendly = "calendly"

// WebhookEvent stores provider webhook deliveries with deduplication
// metadata for idempotent processing. PayloadHash is a SHA-256 of the raw
// body so an exact redelivery can be short-circuited before it reaches the
// booking store.
type WebhookEvent struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	Provider        string     `gorm:"type:varchar(20);not null;index:ux_webhook_events_provider_hash,unique,priority:1;index" json:"provider"`
	PayloadHash     string     `gorm:"type:varchar(64);not null;index:ux_webhook_events_provider_hash,unique,priority:2" json:"payload_hash"`
	EventType       string     `gorm:"type:varchar(100);not null;index" json:"event_type"`
	PayloadJSON     string     `gorm:"type:longtext;not null" json:"payload_json"`
	SignatureValid  bool       `gorm:"default:false;index" json:"signature_valid"`
	ProcessedAt     *time.Time `gorm:"type:timestamp;default:null" json:"processed_at,omitempty"`
	ProcessingError string     `gorm:"type:text" json:"processing_error"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Processed reports whether the delivery was handled successfully. A
// journaled delivery that failed (or was never stamped) must be run again
// when the provider redelivers it.
func (e *WebhookEvent) Processed() bool {
	return e.ProcessedAt != nil && e.ProcessingError == ""
}

// TableName specifies the table name for the WebhookEvent model
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
