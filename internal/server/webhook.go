package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UpdateProcessor dispatches a decoded update to the bot handlers.
// *tele.Bot satisfies it.
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// WebhookHandler receives Telegram updates pushed to the webhook endpoint
type WebhookHandler struct {
	processor UpdateProcessor
	logger    *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(processor UpdateProcessor, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		processor: processor,
		logger:    logger,
	}
}

// Receive decodes the update, runs it through the bot and always answers OK
// once the payload is accepted.
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	var update tele.Update
	if err := c.App().Config().JSONDecoder(c.Body(), &update); err != nil {
		h.logger.Warn("Malformed webhook payload",
			zap.Error(err),
			zap.Int("size", len(c.Body())),
		)
		return fiber.NewError(fiber.StatusBadRequest, "malformed update")
	}

	h.logger.Debug("Webhook update received", zap.Int("update_id", update.ID))
	h.processor.ProcessUpdate(update)

	return c.SendString("OK")
}
