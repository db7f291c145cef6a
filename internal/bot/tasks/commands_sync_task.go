package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/fitbot/internal/telegram"
)

const commandsSyncTimeout = 30 * time.Second

// newCommandsSyncTask republishes the command menu so it survives edits made
// elsewhere (for example through BotFather).
func newCommandsSyncTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", CommandsSyncTask)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, commandsSyncTimeout)
		defer cancel()

		start := time.Now()
		if err := telegram.SyncCommands(ctx, deps.Bot, deps.Commands); err != nil {
			log.ErrorContext(ctx, "Command menu sync failed", "error", err, "duration", time.Since(start))
			return fmt.Errorf("commands sync failed: %w", err)
		}

		log.InfoContext(ctx, "Command menu synced", "commands", len(deps.Commands), "duration", time.Since(start))
		return nil
	}
}
