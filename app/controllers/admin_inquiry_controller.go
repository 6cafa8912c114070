package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
)

// AdminInquiryController handles the admin contact inbox using repository pattern
type AdminInquiryController struct {
	inquiryRepo repository.InquiryRepository
}

// NewAdminInquiryController creates a new admin inquiry controller with repository
func NewAdminInquiryController(inquiryRepo repository.InquiryRepository) *AdminInquiryController {
	return &AdminInquiryController{
		inquiryRepo: inquiryRepo,
	}
}

// HandleList returns the inbox, optionally filtered by state
// (?status=NEW|READ|REPLIED|ARCHIVED).
func (aic *AdminInquiryController) HandleList(c *fiber.Ctx) error {
	status := c.Query("status", "")

	var (
		inquiries []models.Inquiry
		err       error
	)
	if status != "" {
		if !models.IsValidInquiryStatus(status) {
			return jsonError(c, fiber.StatusBadRequest, "invalid_status", "unknown inquiry status")
		}
		inquiries, err = aic.inquiryRepo.GetByStatus(status)
	} else {
		inquiries, err = aic.inquiryRepo.GetAll()
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load inquiries")
	}

	return c.JSON(fiber.Map{"inquiries": inquiries})
}

// HandleGet returns one inquiry by id.
func (aic *AdminInquiryController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "inquiry id must be numeric")
	}

	inquiry, err := aic.inquiryRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "inquiry not found")
	}
	return c.JSON(inquiry)
}

type adminInquiryStatusRequest struct {
	Status string `json:"status"`
}

// HandleStatus moves an inquiry to another inbox state.
func (aic *AdminInquiryController) HandleStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "inquiry id must be numeric")
	}

	var req adminInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if !models.IsValidInquiryStatus(req.Status) {
		return jsonError(c, fiber.StatusBadRequest, "invalid_status", "unknown inquiry status")
	}

	if _, err := aic.inquiryRepo.GetByID(id); err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "inquiry not found")
	}
	if err := aic.inquiryRepo.UpdateStatus(id, req.Status); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update inquiry")
	}

	inquiry, err := aic.inquiryRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load inquiry")
	}
	return c.JSON(inquiry)
}

// HandleDelete removes an inquiry from the inbox.
func (aic *AdminInquiryController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "inquiry id must be numeric")
	}

	if _, err := aic.inquiryRepo.GetByID(id); err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "inquiry not found")
	}
	if err := aic.inquiryRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not delete inquiry")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Global admin inquiry controller instance
var adminInquiryController *AdminInquiryController

// InitializeAdminInquiryController initializes the global admin inquiry controller
func InitializeAdminInquiryController() {
	inquiryRepo := repository.GetGlobalFactory().GetInquiryRepository()
	adminInquiryController = NewAdminInquiryController(inquiryRepo)
}

// GetAdminInquiryController returns the global admin inquiry controller instance
func GetAdminInquiryController() *AdminInquiryController {
	if adminInquiryController == nil {
		InitializeAdminInquiryController()
	}
	return adminInquiryController
}
