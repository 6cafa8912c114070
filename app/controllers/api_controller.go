package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/calendly"
)

// HandleBookingConfig exposes what the public booking widget needs: the
// scheduler embed URL and the currently visible services. Prices stay in
// cents; the client formats them.
func HandleBookingConfig(c *fiber.Ctx) error {
	cfg := calendly.LoadConfig()

	services, err := repository.GetGlobalRepositories().Service.GetVisible()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load services")
	}

	type serviceEntry struct {
		ID              uint64 `json:"id"`
		Title           string `json:"title"`
		Slug            string `json:"slug"`
		Description     string `json:"description"`
		PriceVirtual    int    `json:"price_virtual"`
		PriceInPerson   int    `json:"price_in_person"`
		DurationMinutes int    `json:"duration_minutes"`
	}

	entries := make([]serviceEntry, 0, len(services))
	for _, s := range services {
		entries = append(entries, serviceEntry{
			ID:              s.ID,
			Title:           s.Title,
			Slug:            s.Slug,
			Description:     s.Description,
			PriceVirtual:    s.PriceVirtual,
			PriceInPerson:   s.PriceInPerson,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return c.JSON(fiber.Map{
		"embed_url": cfg.EmbedURL,
		"services":  entries,
	})
}
