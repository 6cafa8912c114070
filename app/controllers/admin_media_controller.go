package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/DanielHoffweber/VitalTable/internal/pkg/media"
)

var (
	mediaClient     *media.Client
	mediaClientOnce sync.Once
)

func getMediaClient() *media.Client {
	mediaClientOnce.Do(func() {
		cfg, err := media.LoadConfig()
		if err != nil {
			log.Errorf("[Media] invalid configuration: %v", err)
			return
		}
		if !cfg.IsEnabled() {
			return
		}
		client, err := media.NewClient(cfg)
		if err != nil {
			log.Errorf("[Media] client init failed: %v", err)
			return
		}
		mediaClient = client
	})
	return mediaClient
}

// HandleAdminMediaUpload accepts a multipart cover image, normalizes it and
// stores it in the object storage. Returns the public URL for use as a post
// cover.
func HandleAdminMediaUpload(c *fiber.Ctx) error {
	client := getMediaClient()
	if client == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "media_disabled", "media uploads are not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "missing_file", "multipart field 'file' is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "unreadable_file", "uploaded file could not be read")
	}
	defer f.Close()

	url, err := client.UploadCover(c.UserContext(), f)
	if err != nil {
		log.Errorf("[Media] cover upload failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "upload_failed", "cover image could not be stored")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
