package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/controllers"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/database"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/middleware"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/oauth"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// init repositories
	repository.InitializeFactory(database.GetDB())

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize admin controllers with repositories
	controllers.InitializeAdminPostController()
	controllers.InitializeAdminServiceController()
	controllers.InitializeAdminTestimonialController()
	controllers.InitializeAdminInquiryController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// UserContextMiddleware already set all user context; all user
	// information is available via usercontext.GetUserContext(c)
	return c.Next()
}
