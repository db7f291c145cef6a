package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
)

// sendReply sends text to chatID once. Failures are logged, not retried.
func sendReply(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	if text == "" {
		log.WarnContext(ctx, "Empty reply, nothing to send", "chat_id", chatID)
		return
	}

	sent, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		return
	}

	log.DebugContext(ctx, "Sent reply", "chat_id", chatID, "message_id", sent.ID)
}
