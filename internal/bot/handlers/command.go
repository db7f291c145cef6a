package handlers

import (
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fitbot/internal/config"
)

// parsedCommand is the bot command a message opens with.
type parsedCommand struct {
	Name string
	// ForUs is false when the command is addressed to another bot
	// ("/train@OtherBot").
	ForUs bool
}

// parseCommand extracts the leading command of msg. A "@username" suffix is
// stripped; it must name this bot (case-insensitive) for ForUs to hold. When
// the bot's own username is unknown every addressed command is taken as ours.
func parseCommand(msg *models.Message, botUsername string) (parsedCommand, bool) {
	if msg == nil {
		return parsedCommand{}, false
	}

	for _, e := range msg.Entities {
		if e.Type != models.MessageEntityTypeBotCommand || e.Offset != 0 {
			continue
		}
		// Commands are ASCII, so the UTF-16 entity length equals the byte length.
		if e.Length < 2 || e.Length > len(msg.Text) {
			return parsedCommand{}, false
		}

		name, addressee, addressed := strings.Cut(msg.Text[1:e.Length], "@")
		forUs := !addressed || botUsername == "" || strings.EqualFold(addressee, botUsername)
		return parsedCommand{Name: name, ForUs: forUs}, true
	}

	return parsedCommand{}, false
}

// botUsername returns the username filled from getMe, or "" before startup.
func botUsername(cfg *config.Config) string {
	if cfg == nil || cfg.Telegram.BotInfo == nil {
		return ""
	}
	return cfg.Telegram.BotInfo.Username
}

// commandMatcher matches "/name" and "/name@<this bot>" exactly. The bot
// username is read on every update, so it may be filled after registration.
func commandMatcher(deps HandlerDeps, name string) tgbot.MatchFunc {
	return func(update *models.Update) bool {
		if update == nil || update.Message == nil {
			return false
		}
		cmd, ok := parseCommand(update.Message, botUsername(deps.Config))
		return ok && cmd.ForUs && cmd.Name == name
	}
}
