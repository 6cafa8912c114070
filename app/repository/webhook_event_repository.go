package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DanielHoffweber/VitalTable/app/models"
)

// webhookEventRepository implements the WebhookEventRepository interface
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository instance
func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// Record journals a delivery. The (provider, payload_hash) unique key makes
// exact redeliveries insert nothing; the second return value is false in
// that case and the caller can answer the provider without reprocessing.
func (r *webhookEventRepository) Record(event *models.WebhookEvent) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(event)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetByPayloadHash loads the journaled delivery behind the dedup key.
func (r *webhookEventRepository) GetByPayloadHash(provider, payloadHash string) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	err := r.db.Where("provider = ? AND payload_hash = ?", provider, payloadHash).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarkProcessed stamps the delivery with the processing outcome
func (r *webhookEventRepository) MarkProcessed(id uint64, processingErr error) error {
	now := time.Now()
	updates := map[string]interface{}{
		"processed_at":     &now,
		"processing_error": "",
	}
	if processingErr != nil {
		updates["processing_error"] = processingErr.Error()
	}
	return r.db.Model(&models.WebhookEvent{}).Where("id = ?", id).Updates(updates).Error
}

// GetRecent retrieves the most recent deliveries for the admin event log
func (r *webhookEventRepository) GetRecent(limit int) ([]models.WebhookEvent, error) {
	var events []models.WebhookEvent
	err := r.db.Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
