package booking

import (
	"encoding/json"
	"log"
	"time"

	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/cache"
)

const (
	statsCacheKey    = "bookings:stats"
	viewCachePattern = "bookings:*"
	statsCacheTTL    = time.Minute
)

// ViewCache serves and invalidates the denormalized booking views (admin
// list page, dashboard stats). Implementations must tolerate a cold or
// unreachable backend: a miss is always an acceptable answer.
type ViewCache interface {
	GetStats() (*repository.BookingStats, bool)
	SetStats(stats *repository.BookingStats)
	Invalidate()
}

// redisViewCache backs ViewCache with the shared Redis cache.
type redisViewCache struct{}

// NewRedisViewCache returns the Redis-backed booking view cache.
func NewRedisViewCache() ViewCache {
	return redisViewCache{}
}

func (redisViewCache) GetStats() (*repository.BookingStats, bool) {
	raw, err := cache.Get(statsCacheKey)
	if err != nil {
		return nil, false
	}
	var stats repository.BookingStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (redisViewCache) SetStats(stats *repository.BookingStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := cache.Set(statsCacheKey, string(raw), statsCacheTTL); err != nil {
		log.Printf("Failed to cache booking stats: %v", err)
	}
}

func (redisViewCache) Invalidate() {
	if _, err := cache.DeleteByPattern(viewCachePattern); err != nil {
		log.Printf("Failed to invalidate booking views: %v", err)
	}
}
