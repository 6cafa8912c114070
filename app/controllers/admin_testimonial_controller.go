package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
)

// AdminTestimonialController handles admin testimonial requests using repository pattern
type AdminTestimonialController struct {
	testimonialRepo repository.TestimonialRepository
}

// NewAdminTestimonialController creates a new admin testimonial controller with repository
func NewAdminTestimonialController(testimonialRepo repository.TestimonialRepository) *AdminTestimonialController {
	return &AdminTestimonialController{
		testimonialRepo: testimonialRepo,
	}
}

type adminTestimonialRequest struct {
	ClientName string `json:"client_name"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	Approved   bool   `json:"approved"`
}

// HandleList returns all testimonials including unapproved ones.
func (atc *AdminTestimonialController) HandleList(c *fiber.Ctx) error {
	testimonials, err := atc.testimonialRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load testimonials")
	}
	return c.JSON(fiber.Map{"testimonials": testimonials})
}

// HandleCreate stores a new client quote. Quotes start unapproved unless
// flagged otherwise.
func (atc *AdminTestimonialController) HandleCreate(c *fiber.Ctx) error {
	var req adminTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.Quote) == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "client_name and quote are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "rating must be between 1 and 5")
	}

	testimonial := &models.Testimonial{
		ClientName: strings.TrimSpace(req.ClientName),
		Quote:      strings.TrimSpace(req.Quote),
		Rating:     req.Rating,
		Approved:   req.Approved,
	}
	if err := atc.testimonialRepo.Create(testimonial); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not create testimonial")
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// HandleUpdate replaces the editable fields of a testimonial (including the
// approval flag that gates public visibility).
func (atc *AdminTestimonialController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "testimonial id must be numeric")
	}

	testimonial, err := atc.testimonialRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "testimonial not found")
	}

	var req adminTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.Quote) == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "client_name and quote are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "rating must be between 1 and 5")
	}

	testimonial.ClientName = strings.TrimSpace(req.ClientName)
	testimonial.Quote = strings.TrimSpace(req.Quote)
	testimonial.Rating = req.Rating
	testimonial.Approved = req.Approved

	if err := atc.testimonialRepo.Update(testimonial); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update testimonial")
	}

	return c.JSON(testimonial)
}

// HandleDelete removes a testimonial.
func (atc *AdminTestimonialController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "testimonial id must be numeric")
	}

	if _, err := atc.testimonialRepo.GetByID(id); err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "testimonial not found")
	}
	if err := atc.testimonialRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not delete testimonial")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Global admin testimonial controller instance
var adminTestimonialController *AdminTestimonialController

// InitializeAdminTestimonialController initializes the global admin testimonial controller
func InitializeAdminTestimonialController() {
	testimonialRepo := repository.GetGlobalFactory().GetTestimonialRepository()
	adminTestimonialController = NewAdminTestimonialController(testimonialRepo)
}

// GetAdminTestimonialController returns the global admin testimonial controller instance
func GetAdminTestimonialController() *AdminTestimonialController {
	if adminTestimonialController == nil {
		InitializeAdminTestimonialController()
	}
	return adminTestimonialController
}
