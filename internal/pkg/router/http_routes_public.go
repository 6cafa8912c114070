package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/controllers"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Landing + static pages
	app.Get("/", loggedInMiddleware, controllers.HandleStart)
	app.Get("/services", loggedInMiddleware, controllers.HandleServices)
	app.Get("/services/:slug", loggedInMiddleware, controllers.HandleServiceDetail)

	// Blog
	app.Get("/blog", loggedInMiddleware, controllers.HandleBlog)
	app.Get("/blog/:slug", loggedInMiddleware, controllers.HandleBlogPost)

	// Contact form
	app.Get("/contact", loggedInMiddleware, controllers.HandleContact)
	app.Post("/contact", loggedInMiddleware, controllers.HandleContact)

	// Auth
	app.Get("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	app.Post("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Social OAuth
	app.Get("/auth/:provider", controllers.HandleOAuthLogin)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)

	// Scheduler webhooks (no session, signature-verified in controller).
	// Registered before the /api group so the rate limiter never throttles
	// provider deliveries.
	app.Get("/api/webhooks/calendly", controllers.HandleCalendlyWebhookCheck)
	app.Post("/api/webhooks/calendly", controllers.HandleCalendlyWebhook)
}
