package telegram

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fitbot/internal/bot/handlers"
)

// BotCommands builds the command menu from the registered handlers, sorted by
// command name. Handlers without a description are left out.
func BotCommands(registeredHandlers map[string]handlers.RegisteredHandler) []models.BotCommand {
	cmds := make([]models.BotCommand, 0, len(registeredHandlers))
	for _, h := range registeredHandlers {
		if h.Pattern == "" || h.Description == "" {
			continue
		}
		cmds = append(cmds, models.BotCommand{Command: h.Pattern, Description: h.Description})
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Command < cmds[j].Command })
	return cmds
}

// SyncCommands publishes cmds as the bot's command menu.
func SyncCommands(ctx context.Context, b *bot.Bot, cmds []models.BotCommand) error {
	if b == nil {
		return errors.New("bot instance cannot be nil")
	}
	if len(cmds) == 0 {
		return errors.New("no commands to publish")
	}

	ok, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: cmds})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	if !ok {
		return errors.New("telegram refused to set bot commands")
	}
	return nil
}
