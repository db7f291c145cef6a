// Package handlers contains the Telegram command and message handlers,
// along with their registration table.
package handlers

import (
	"log/slog"

	"github.com/edgard/fitbot/internal/config"
	"github.com/edgard/fitbot/internal/dispatch"
)

// HandlerDeps provides dependencies for Telegram handlers.
type HandlerDeps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Dispatcher *dispatch.Dispatcher
}
