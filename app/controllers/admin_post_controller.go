package controllers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
)

// AdminPostController handles admin blog-post requests using repository pattern
type AdminPostController struct {
	postRepo repository.PostRepository
}

// NewAdminPostController creates a new admin post controller with repository
func NewAdminPostController(postRepo repository.PostRepository) *AdminPostController {
	return &AdminPostController{
		postRepo: postRepo,
	}
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL slug from a title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type adminPostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Slug          string `json:"slug"`
	CoverImageURL string `json:"cover_image_url"`
	Published     bool   `json:"published"`
}

// HandleList returns all posts including drafts.
func (apc *AdminPostController) HandleList(c *fiber.Ctx) error {
	posts, err := apc.postRepo.GetAllWithoutPagination()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not load posts")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// HandleGet returns one post by id.
func (apc *AdminPostController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "post id must be numeric")
	}

	post, err := apc.postRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "post not found")
	}
	return c.JSON(post)
}

// HandleCreate stores a new post. A missing slug is derived from the title;
// a colliding slug gets a timestamp suffix.
func (apc *AdminPostController) HandleCreate(c *fiber.Ctx) error {
	var req adminPostRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "title and content are required")
	}

	postSlug := strings.TrimSpace(req.Slug)
	if postSlug == "" {
		postSlug = slugify(req.Title)
	}
	slugExists, err := apc.postRepo.SlugExists(postSlug)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not check slug")
	}
	if slugExists {
		// Slug already exists, append timestamp
		postSlug = fmt.Sprintf("%s-%d", postSlug, time.Now().Unix())
	}

	userID, _ := c.Locals(USER_ID).(uint)
	post := &models.Post{
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		Excerpt:       strings.TrimSpace(req.Excerpt),
		Slug:          postSlug,
		CoverImageURL: strings.TrimSpace(req.CoverImageURL),
		Published:     req.Published,
		UserID:        userID,
	}
	if err := apc.postRepo.Create(post); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not create post")
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdate replaces the editable fields of a post.
func (apc *AdminPostController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "post id must be numeric")
	}

	post, err := apc.postRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "post not found")
	}

	var req adminPostRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_body", "request body must be valid JSON")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "title and content are required")
	}

	postSlug := strings.TrimSpace(req.Slug)
	if postSlug == "" {
		postSlug = slugify(req.Title)
	}
	if postSlug != post.Slug {
		slugExists, err := apc.postRepo.SlugExistsExceptID(postSlug, id)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not check slug")
		}
		if slugExists {
			postSlug = fmt.Sprintf("%s-%d", postSlug, time.Now().Unix())
		}
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Slug = postSlug
	post.CoverImageURL = strings.TrimSpace(req.CoverImageURL)
	post.Published = req.Published

	if err := apc.postRepo.Update(post); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not update post")
	}

	return c.JSON(post)
}

// HandleDelete removes a post.
func (apc *AdminPostController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_id", "post id must be numeric")
	}

	if _, err := apc.postRepo.GetByID(id); err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "post not found")
	}
	if err := apc.postRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "could not delete post")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Global admin post controller instance
var adminPostController *AdminPostController

// InitializeAdminPostController initializes the global admin post controller
func InitializeAdminPostController() {
	postRepo := repository.GetGlobalFactory().GetPostRepository()
	adminPostController = NewAdminPostController(postRepo)
}

// GetAdminPostController returns the global admin post controller instance
func GetAdminPostController() *AdminPostController {
	if adminPostController == nil {
		InitializeAdminPostController()
	}
	return adminPostController
}
