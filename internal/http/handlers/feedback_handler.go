package handlers

import (
	"errors"

	applog "feedbackhub/internal/log"
	"feedbackhub/internal/services"
	"feedbackhub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	Feedback *services.FeedbackService
}

type submitRequest struct {
	ReceiverEmail string `json:"receiver_email" validate:"required"`
	Message       string `json:"message" validate:"required"`
	Tag           string `json:"tag"`
	IsAnonymous   bool   `json:"is_anonymous"`
}

func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		applog.Security(c, "feedback.submit.fail", map[string]any{"reason": "missing_fields"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}

	id, err := h.Feedback.Submit(claims.UserID, services.SubmitInput{
		ReceiverEmail: req.ReceiverEmail,
		Message:       req.Message,
		Tag:           req.Tag,
		IsAnonymous:   req.IsAnonymous,
	})
	if err != nil {
		return err
	}

	applog.Audit(c, "feedback.submit", map[string]any{"feedback_id": id, "anonymous": req.IsAnonymous})
	return c.JSON(fiber.Map{"message": "Feedback submitted"})
}

// List returns the caller's inbox, newest first.
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	rows, err := h.Feedback.Inbox(claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// Sent returns feedback the caller submitted, newest first.
func (h *FeedbackHandler) Sent(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	rows, err := h.Feedback.Sent(claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func (h *FeedbackHandler) Acknowledge(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feedback not found"})
	}

	if err := h.Feedback.Acknowledge(int64(id), claims.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			applog.Security(c, "feedback.acknowledge.denied", map[string]any{"feedback_id": id})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feedback not found"})
		}
		return err
	}

	applog.Audit(c, "feedback.acknowledge", map[string]any{"feedback_id": id})
	return c.JSON(fiber.Map{"message": "Feedback acknowledged"})
}
