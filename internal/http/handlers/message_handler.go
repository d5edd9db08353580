package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shophood/internal/domain"
	applog "shophood/internal/log"
	"shophood/internal/services"
	"shophood/internal/validate"
)

type MessageHandler struct {
	Messaging *services.MessagingService
}

// Conversations returns the user's threads keyed by counterpart id, plus the
// unread badge count.
func (h *MessageHandler) Conversations(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	return c.JSON(fiber.Map{
		"conversations": h.Messaging.ConversationsFor(u.ID),
		"unread":        h.Messaging.UnreadCount(u.ID),
	})
}

type sendReq struct {
	To      string `json:"to" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	var req sendReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.Messaging.Send(u.ID, req.To, req.Content)
	switch err {
	case nil:
	case services.ErrEmptyMessage:
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	case services.ErrUnknownRecipient:
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	default:
		applog.Error(c, "message.send.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not send message")
	}
	applog.Info(c, "message.send", map[string]any{"to": req.To})
	return c.Status(fiber.StatusCreated).JSON(m)
}

// MarkRead is idempotent; replies ok even for unknown ids. Only mail
// addressed to the session user is affected.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonErr(c, fiber.StatusBadRequest, "invalid message id")
	}
	h.Messaging.MarkRead(u.ID, id)
	return c.JSON(fiber.Map{"ok": true})
}
