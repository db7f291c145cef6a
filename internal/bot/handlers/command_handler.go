package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fitbot/internal/dispatch"
)

// NewCommandHandler returns a handler that answers the /name command.
func NewCommandHandler(deps HandlerDeps, name string) bot.HandlerFunc {
	return commandHandler{deps: deps, name: name}.Handle
}

type commandHandler struct {
	deps HandlerDeps
	name string
}

func (h commandHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "command", "command", h.name)

	if update.Message == nil {
		log.WarnContext(ctx, "Command handler received update without message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling command", "chat_id", chatID, "update_id", update.ID)

	reply := h.deps.Dispatcher.Route(ctx, dispatch.Command(h.name))
	sendReply(ctx, b, log, chatID, reply)
}
