package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on conversation state
func (h *Handler) handleText(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		h.logger.Debug("Ignoring unknown command",
			zap.Int64("user_id", userID),
			zap.String("command", text),
		)
		return nil
	}

	reply, ok := h.conversation.Handle(userID, text)
	if !ok {
		h.logger.Debug("No active conversation, message ignored", zap.Int64("user_id", userID))
		return nil
	}

	return h.send(c, reply)
}
