// Package bot wires the fitness bot's long-running components together and
// manages their lifecycle.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"golang.org/x/sync/errgroup"
)

// Poller is the part of the Telegram client the orchestrator drives.
// *tgbot.Bot satisfies it.
type Poller interface {
	Start(ctx context.Context)
}

var _ Poller = (*tgbot.Bot)(nil)

// Bot runs the Telegram listener and the task scheduler until shutdown.
type Bot struct {
	logger    *slog.Logger
	tgBot     Poller
	scheduler *Scheduler
}

// NewBot creates the orchestrator for tgBot and scheduler.
func NewBot(logger *slog.Logger, tgBot Poller, scheduler *Scheduler) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		tgBot:     tgBot,
		scheduler: scheduler,
	}
}

// Run starts every component and blocks until ctx is cancelled or one of
// them fails. A cancelled context is a graceful stop and returns nil.
func (b *Bot) Run(ctx context.Context) error {
	if b.tgBot == nil || b.scheduler == nil {
		return errors.New("bot orchestrator is missing a component")
	}

	b.logger.Info("Starting bot orchestrator")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener")
		b.tgBot.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped")

		if gCtx.Err() == nil {
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		if err := b.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully")
	return nil
}
