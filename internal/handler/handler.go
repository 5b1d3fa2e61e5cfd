package handler

import (
	"migrationbot/internal/domain"
	"migrationbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	conversation *service.ConversationService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	conversation *service.ConversationService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		conversation: conversation,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers.
// Middlewares are attached first since telebot binds them at Handle time.
func (h *Handler) RegisterHandlers(middlewares ...tele.MiddlewareFunc) {
	h.bot.Use(middlewares...)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages, including reply keyboard presses
	h.bot.Handle(tele.OnText, h.handleText)
}

// menuMarkup returns a one-time reply keyboard with the given options in one row
func menuMarkup(options []string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}

	btns := make([]tele.Btn, 0, len(options))
	for _, option := range options {
		btns = append(btns, menu.Text(option))
	}
	menu.Reply(menu.Row(btns...))

	return menu
}

// send delivers a conversation reply to the chat
func (h *Handler) send(c tele.Context, reply domain.Reply) error {
	if reply.HasKeyboard() {
		return c.Send(reply.Text, menuMarkup(reply.Options))
	}
	return c.Send(reply.Text)
}
