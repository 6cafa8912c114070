package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortRecentActivity(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	activity := []activityEntry{
		{Kind: "inquiry", ID: 1, CreatedAt: base.Add(-2 * time.Hour)},
		{Kind: "inquiry", ID: 2, CreatedAt: base},
		{Kind: "testimonial", ID: 3, CreatedAt: base},
		{Kind: "testimonial", ID: 4, CreatedAt: base.Add(-1 * time.Hour)},
	}

	sorted := sortRecentActivity(activity)

	// newest first; the two entries sharing a timestamp keep their merge
	// order (inquiries were appended before testimonials)
	assert.EqualValues(t, 2, sorted[0].ID)
	assert.EqualValues(t, 3, sorted[1].ID)
	assert.EqualValues(t, 4, sorted[2].ID)
	assert.EqualValues(t, 1, sorted[3].ID)
}

func TestSortRecentActivityCapsTheFeed(t *testing.T) {
	base := time.Now()

	var activity []activityEntry
	for i := 0; i < 2*recentActivityLimit; i++ {
		activity = append(activity, activityEntry{
			ID:        uint64(i + 1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	sorted := sortRecentActivity(activity)
	assert.Len(t, sorted, recentActivityLimit)
	assert.EqualValues(t, 2*recentActivityLimit, sorted[0].ID)
}
