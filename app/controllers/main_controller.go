package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/calendly"
)

const blogPageSize = 10

// HandleStart renders the landing page with visible services and approved
// testimonials.
func HandleStart(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	services, err := repos.Service.GetVisible()
	if err != nil {
		services = nil
	}
	testimonials, err := repos.Testimonial.GetApproved()
	if err != nil {
		testimonials = nil
	}

	return c.Render("home", fiber.Map{
		"Title":        "Home",
		"IsLoggedIn":   isLoggedIn(c),
		"Username":     ExtractUsername(c),
		"Services":     services,
		"Testimonials": testimonials,
		"Flash":        flash.Get(c),
	}, "layouts/main")
}

// HandleServices renders the service overview.
func HandleServices(c *fiber.Ctx) error {
	services, err := repository.GetGlobalRepositories().Service.GetVisible()
	if err != nil {
		services = nil
	}

	return c.Render("services", fiber.Map{
		"Title":      "Services",
		"IsLoggedIn": isLoggedIn(c),
		"Services":   services,
	}, "layouts/main")
}

// HandleServiceDetail renders one service with the booking widget config.
func HandleServiceDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	service, err := repository.GetGlobalRepositories().Service.GetBySlug(slug)
	if err != nil || !service.Visible {
		return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
			"Title": "Not Found",
		}, "layouts/main")
	}

	cfg := calendly.LoadConfig()

	return c.Render("service_detail", fiber.Map{
		"Title":      service.Title,
		"IsLoggedIn": isLoggedIn(c),
		"Service":    service,
		"EmbedURL":   cfg.EmbedURL,
	}, "layouts/main")
}

// HandleBlog renders the published article list, newest first.
func HandleBlog(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	posts, err := repository.GetGlobalRepositories().Post.GetPublished((page-1)*blogPageSize, blogPageSize)
	if err != nil {
		posts = nil
	}

	return c.Render("blog", fiber.Map{
		"Title":      "Blog",
		"IsLoggedIn": isLoggedIn(c),
		"Posts":      posts,
		"Page":       page,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
		"HasMore":    len(posts) == blogPageSize,
	}, "layouts/main")
}

// HandleBlogPost renders a single published article.
func HandleBlogPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := repository.GetGlobalRepositories().Post.GetBySlug(slug)
	if err != nil || !post.Published {
		return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
			"Title": "Not Found",
		}, "layouts/main")
	}

	return c.Render("blog_post", fiber.Map{
		"Title":      post.Title,
		"IsLoggedIn": isLoggedIn(c),
		"Post":       post,
	}, "layouts/main")
}
