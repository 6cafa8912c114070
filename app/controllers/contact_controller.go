package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"github.com/DanielHoffweber/VitalTable/app/models"
	"github.com/DanielHoffweber/VitalTable/app/repository"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/env"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/hcaptcha"
	"github.com/DanielHoffweber/VitalTable/internal/pkg/mail"
)

var contactValidator = validator.New()

// HandleContact renders the contact form (GET) and stores an inquiry (POST).
// Submissions pass hCaptcha when a site key is configured, get an opaque
// reference code for follow-up mail, and trigger a notification to the
// practice inbox.
func HandleContact(c *fiber.Ctx) error {
	hcaptchaSitekey := env.GetEnv("HCAPTCHA_SITEKEY", "")

	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{"type": "error"}

		if hcaptchaSitekey != "" {
			token := c.FormValue("h-captcha-response")
			if ok, err := hcaptcha.Verify(token); !ok {
				log.Warnf("[Contact] captcha verification failed: %v", err)
				fm["message"] = "Captcha verification failed, please try again"
				return flash.WithError(c, fm).Redirect("/contact")
			}
		}

		inquiry := &models.Inquiry{
			Reference: uuid.New().String(),
			Name:      strings.TrimSpace(c.FormValue("name")),
			Email:     strings.TrimSpace(c.FormValue("email")),
			Subject:   strings.TrimSpace(c.FormValue("subject")),
			Message:   strings.TrimSpace(c.FormValue("message")),
			Status:    models.InquiryStatusNew,
		}

		if err := contactValidator.Struct(inquiry); err != nil {
			fm["message"] = "Please fill in your name, a valid email address and a message of at least 10 characters"
			return flash.WithError(c, fm).Redirect("/contact")
		}

		if err := repository.GetGlobalRepositories().Inquiry.Create(inquiry); err != nil {
			log.Errorf("[Contact] failed to store inquiry: %v", err)
			fm["message"] = "Something went wrong, please try again later"
			return flash.WithError(c, fm).Redirect("/contact")
		}

		// Notification mail failures must not lose the stored inquiry
		if notify := env.GetEnv("CONTACT_NOTIFY_EMAIL", ""); notify != "" {
			body := fmt.Sprintf(
				"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p><p>Reference: %s</p>",
				inquiry.Name, inquiry.Email, inquiry.Message, inquiry.Reference,
			)
			subject := inquiry.Subject
			if subject == "" {
				subject = "New contact inquiry"
			}
			_ = mail.SendMail(notify, "[VitalTable] "+subject, body)
		}

		fm = fiber.Map{
			"type":    "success",
			"message": fmt.Sprintf("Thank you! Your message was received (reference %s)", inquiry.Reference),
		}
		return flash.WithSuccess(c, fm).Redirect("/contact")
	}

	return c.Render("contact", fiber.Map{
		"Title":           "Contact",
		"IsLoggedIn":      isLoggedIn(c),
		"HCaptchaSiteKey": hcaptchaSitekey,
		"Flash":           flash.Get(c),
	}, "layouts/main")
}
