package controllers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/booking"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/database"
)

const recentActivityLimit = 5

// activityEntry is one row of the dashboard activity feed.
type activityEntry struct {
	Kind      string    `json:"kind"` // "inquiry" | "testimonial"
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// HandleAdminDashboard aggregates the admin landing numbers: booking
// rollups, content counts and the latest activity across inquiries and
// testimonials.
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	svc := booking.NewServiceFromDB(database.GetDB())
	bookingStats, err := svc.Stats(c.UserContext())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load booking stats")
	}

	postCount, _ := repos.Post.Count()
	serviceCount, _ := repos.Service.Count()
	testimonialCount, _ := repos.Testimonial.Count()
	inquiryCount, _ := repos.Inquiry.Count()
	newInquiries, _ := repos.Inquiry.CountByStatus(models.InquiryStatusNew)

	activity := make([]activityEntry, 0, 2*recentActivityLimit)
	if inquiries, err := repos.Inquiry.GetRecent(recentActivityLimit); err == nil {
		for _, q := range inquiries {
			title := q.Subject
			if title == "" {
				title = "Inquiry from " + q.Name
			}
			activity = append(activity, activityEntry{
				Kind:      "inquiry",
				ID:        q.ID,
				Title:     title,
				CreatedAt: q.CreatedAt,
			})
		}
	}
	if testimonials, err := repos.Testimonial.GetRecent(recentActivityLimit); err == nil {
		for _, t := range testimonials {
			activity = append(activity, activityEntry{
				Kind:      "testimonial",
				ID:        t.ID,
				Title:     "Testimonial by " + t.ClientName,
				CreatedAt: t.CreatedAt,
			})
		}
	}
	activity = sortRecentActivity(activity)

	return c.JSON(fiber.Map{
		"bookings": bookingStats,
		"counts": fiber.Map{
			"posts":         postCount,
			"services":      serviceCount,
			"testimonials":  testimonialCount,
			"inquiries":     inquiryCount,
			"new_inquiries": newInquiries,
		},
		"recent_activity": activity,
	})
}

// sortRecentActivity orders the merged feed newest first and caps it. The
// sort is stable so entries sharing a timestamp keep their merge order.
func sortRecentActivity(activity []activityEntry) []activityEntry {
	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].CreatedAt.After(activity[j].CreatedAt)
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	return activity
}

// HandleAdminWebhookEvents lists the latest journaled provider deliveries.
func HandleAdminWebhookEvents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	events, err := repository.GetGlobalRepositories().WebhookEvent.GetRecent(limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load webhook events")
	}

	return c.JSON(fiber.Map{"events": events})
}
