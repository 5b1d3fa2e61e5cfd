package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	userID := c.Sender().ID

	h.logger.Info("User started conversation",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.send(c, h.conversation.Start(userID))
}

// handleCancel handles /cancel command
func (h *Handler) handleCancel(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	userID := c.Sender().ID

	h.logger.Info("User canceled conversation",
		zap.Int64("user_id", userID),
		zap.String("state", string(h.conversation.State(userID))),
	)

	return h.send(c, h.conversation.Cancel(userID))
}
