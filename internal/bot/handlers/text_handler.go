package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fitbot/internal/dispatch"
)

// NewTextHandler returns the default handler for plain text messages.
// Updates without text and messages starting with a command are ignored:
// known commands have their own handlers, unknown ones and commands for
// other bots get no reply.
func NewTextHandler(deps HandlerDeps) bot.HandlerFunc {
	return textHandler{deps}.Handle
}

type textHandler struct {
	deps HandlerDeps
}

func (h textHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "text")

	msg := update.Message
	if msg == nil || msg.Text == "" {
		log.DebugContext(ctx, "Ignoring update without text message", "update_id", update.ID)
		return
	}
	if cmd, ok := parseCommand(msg, botUsername(h.deps.Config)); ok {
		log.DebugContext(ctx, "Ignoring command without handler", "command", cmd.Name, "for_us", cmd.ForUs, "update_id", update.ID, "chat_id", msg.Chat.ID)
		return
	}

	log.InfoContext(ctx, "Handling text message", "chat_id", msg.Chat.ID, "update_id", update.ID)

	reply := h.deps.Dispatcher.Route(ctx, dispatch.Text(msg.Text))
	sendReply(ctx, b, log, msg.Chat.ID, reply)
}
