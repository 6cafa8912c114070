package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/controllers"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	api := adminGroup.Group("/api")
	api.Get("/dashboard", controllers.HandleAdminDashboard)
	api.Get("/webhook-events", controllers.HandleAdminWebhookEvents)

	// Booking workflow
	api.Get("/bookings", controllers.HandleAdminBookingList)
	api.Get("/bookings/stats", controllers.HandleAdminBookingStats)
	api.Post("/bookings", controllers.HandleAdminBookingCreate)
	api.Get("/bookings/:id", controllers.HandleAdminBookingGet)
	api.Patch("/bookings/:id/status", controllers.HandleAdminBookingStatus)
	api.Patch("/bookings/:id/notes", controllers.HandleAdminBookingNotes)
	api.Delete("/bookings/:id", controllers.HandleAdminBookingDelete)

	// Blog management
	postController := controllers.GetAdminPostController()
	api.Get("/posts", postController.HandleList)
	api.Post("/posts", postController.HandleCreate)
	api.Get("/posts/:id", postController.HandleGet)
	api.Put("/posts/:id", postController.HandleUpdate)
	api.Delete("/posts/:id", postController.HandleDelete)

	// Service management
	serviceController := controllers.GetAdminServiceController()
	api.Get("/services", serviceController.HandleList)
	api.Post("/services", serviceController.HandleCreate)
	api.Get("/services/:id", serviceController.HandleGet)
	api.Put("/services/:id", serviceController.HandleUpdate)
	api.Delete("/services/:id", serviceController.HandleDelete)

	// Testimonial management
	testimonialController := controllers.GetAdminTestimonialController()
	api.Get("/testimonials", testimonialController.HandleList)
	api.Post("/testimonials", testimonialController.HandleCreate)
	api.Put("/testimonials/:id", testimonialController.HandleUpdate)
	api.Delete("/testimonials/:id", testimonialController.HandleDelete)

	// Contact inbox
	inquiryController := controllers.GetAdminInquiryController()
	api.Get("/inquiries", inquiryController.HandleList)
	api.Get("/inquiries/:id", inquiryController.HandleGet)
	api.Patch("/inquiries/:id/status", inquiryController.HandleStatus)
	api.Delete("/inquiries/:id", inquiryController.HandleDelete)

	// Media uploads
	api.Post("/media", controllers.HandleAdminMediaUpload)
}
