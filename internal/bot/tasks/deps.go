// Package tasks implements the bot's scheduled tasks and their registry.
package tasks

import (
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TaskDeps contains the dependencies shared by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Bot      *bot.Bot
	Commands []models.BotCommand
}
