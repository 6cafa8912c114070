package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
)

// AdminServiceController handles admin service requests using repository pattern
type AdminServiceController struct {
	serviceRepo repository.ServiceRepository
}

// NewAdminServiceController creates a new admin service controller with repository
func NewAdminServiceController(serviceRepo repository.ServiceRepository) *AdminServiceController {
	return &AdminServiceController{
		serviceRepo: serviceRepo,
	}
}

type adminServiceRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	Visible         bool   `json:"visible"`
	PriceVirtual    int    `json:"price_virtual"`
	PriceInPerson   int    `json:"price_in_person"`
	DurationMinutes int    `json:"duration_minutes"`
	SortOrder       int    `json:"sort_order"`
}

func (asc *AdminServiceController) validate(req *adminServiceRequest) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if req.PriceVirtual < 0 || req.PriceInPerson < 0 {
		return "prices must not be negative"
	}
	if req.DurationMinutes <= 0 {
		return "duration_minutes must be positive"
	}
	return ""
}

// HandleList returns all services including hidden ones.
func (asc *AdminServiceController) HandleList(c *fiber.Ctx) error {
	services, err := asc.serviceRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load services")
	}
	return c.JSON(fiber.Map{"services": services})
}

// HandleGet returns one service by id.
func (asc *AdminServiceController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "service id must be numeric")
	}

	service, err := asc.serviceRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "service not found")
	}
	return c.JSON(service)
}

// HandleCreate stores a new consultation offering.
func (asc *AdminServiceController) HandleCreate(c *fiber.Ctx) error {
	var req adminServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if msg := asc.validate(&req); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", msg)
	}

	serviceSlug := strings.TrimSpace(req.Slug)
	if serviceSlug == "" {
		serviceSlug = slugify(req.Title)
	}
	slugExists, err := asc.serviceRepo.SlugExists(serviceSlug)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not check slug")
	}
	if slugExists {
		serviceSlug = fmt.Sprintf("%s-%d", serviceSlug, time.Now().Unix())
	}

	service := &models.Service{
		Title:           strings.TrimSpace(req.Title),
		Slug:            serviceSlug,
		Description:     req.Description,
		Visible:         req.Visible,
		PriceVirtual:    req.PriceVirtual,
		PriceInPerson:   req.PriceInPerson,
		DurationMinutes: req.DurationMinutes,
		SortOrder:       req.SortOrder,
	}
	if err := asc.serviceRepo.Create(service); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not create service")
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleUpdate replaces the editable fields of a service. Existing bookings
// keep their snapshotted service name.
func (asc *AdminServiceController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "service id must be numeric")
	}

	service, err := asc.serviceRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "service not found")
	}

	var req adminServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if msg := asc.validate(&req); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", msg)
	}

	serviceSlug := strings.TrimSpace(req.Slug)
	if serviceSlug == "" {
		serviceSlug = slugify(req.Title)
	}
	if serviceSlug != service.Slug {
		slugExists, err := asc.serviceRepo.SlugExistsExceptID(serviceSlug, id)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not check slug")
		}
		if slugExists {
			serviceSlug = fmt.Sprintf("%s-%d", serviceSlug, time.Now().Unix())
		}
	}

	service.Title = strings.TrimSpace(req.Title)
	service.Slug = serviceSlug
	service.Description = req.Description
	service.Visible = req.Visible
	service.PriceVirtual = req.PriceVirtual
	service.PriceInPerson = req.PriceInPerson
	service.DurationMinutes = req.DurationMinutes
	service.SortOrder = req.SortOrder

	if err := asc.serviceRepo.Update(service); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update service")
	}

	return c.JSON(service)
}

// HandleDelete soft-deletes a service. Bookings that reference it keep the
// denormalized service name.
func (asc *AdminServiceController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "service id must be numeric")
	}

	if _, err := asc.serviceRepo.GetByID(id); err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "service not found")
	}
	if err := asc.serviceRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not delete service")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Global admin service controller instance
var adminServiceController *AdminServiceController

// InitializeAdminServiceController initializes the global admin service controller
func InitializeAdminServiceController() {
	serviceRepo := repository.GetGlobalFactory().GetServiceRepository()
	adminServiceController = NewAdminServiceController(serviceRepo)
}

// GetAdminServiceController returns the global admin service controller instance
func GetAdminServiceController() *AdminServiceController {
	if adminServiceController == nil {
		InitializeAdminServiceController()
	}
	return adminServiceController
}
