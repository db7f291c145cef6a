package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/fitbot/internal/dispatch"
)

// RegisteredHandler represents a command handler with its description and middleware.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	Pattern     string
	Description string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchFunc   tgbot.MatchFunc
}

// Menu descriptions published with setMyCommands.
const (
	startDescription = "начать работу"
	helpDescription  = "показать список команд"
	trainDescription = "получить тренировочный план"
	foodDescription  = "узнать про правильное питание"
)

// RegisterAllCommands returns the command handlers keyed by "/name".
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	commands := []struct {
		name        string
		description string
	}{
		{dispatch.CommandStart, startDescription},
		{dispatch.CommandHelp, helpDescription},
		{dispatch.CommandTrain, trainDescription},
		{dispatch.CommandFood, foodDescription},
	}

	handlers := make(map[string]RegisteredHandler, len(commands))
	for _, c := range commands {
		handlers["/"+c.name] = RegisteredHandler{
			Pattern:     c.name,
			Description: c.description,
			Handler:     NewCommandHandler(deps, c.name),
			MatchFunc:   commandMatcher(deps, c.name),
		}
	}

	return handlers
}
