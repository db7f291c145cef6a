// Package main contains the entrypoint for the fitness Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/fitbot/internal/bot"
	"github.com/edgard/fitbot/internal/bot/handlers"
	"github.com/edgard/fitbot/internal/bot/tasks"
	"github.com/edgard/fitbot/internal/completion"
	"github.com/edgard/fitbot/internal/config"
	"github.com/edgard/fitbot/internal/dispatch"
	"github.com/edgard/fitbot/internal/logger"
	"github.com/edgard/fitbot/internal/telegram"
)

const startupSyncTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logger, completion client, dispatcher, Telegram bot and
// scheduler, then blocks until shutdown. It returns the process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	client, err := completion.New(ctx, cfg.Completion, log)
	if err != nil {
		log.Error("Failed to initialize completion client", "provider", cfg.Completion.Provider, "error", err)
		return 1
	}

	dispatcher := dispatch.New(log, client, completion.NewPrompts(cfg.Completion.Prompts), cfg.Messages)

	hDeps := handlers.HandlerDeps{
		Logger:     log,
		Config:     cfg,
		Dispatcher: dispatcher,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewTextHandler(hDeps)),
		tgbot.WithErrorsHandler(logger.ErrorsHandler(log)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	cmdHandlers := handlers.RegisterAllCommands(hDeps)
	if err := telegram.RegisterHandlers(tg, log, cmdHandlers); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	commands := telegram.BotCommands(cmdHandlers)
	syncCtx, cancel := context.WithTimeout(ctx, startupSyncTimeout)
	if err := telegram.SyncCommands(syncCtx, tg, commands); err != nil {
		log.Warn("Failed to publish command menu", "error", err)
	}
	cancel()

	tDeps := tasks.TaskDeps{
		Logger:   log,
		Bot:      tg,
		Commands: commands,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, tg, sched)

	log.Info("Starting bot", "commands", dispatcher.Commands())
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully")
	return 0
}
