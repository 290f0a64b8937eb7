package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vodeneev/betbrief/internal/enricher/service"
	"github.com/Vodeneev/betbrief/internal/pkg/chat"
	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/logging"
)

const (
	defaultConfigPath = "configs/production.yaml"
	updateTimeout     = 60
)

func main() {
	var configPath string
	var token string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&token, "token", "", "Telegram bot token, overrides telegram.bot_token and TELEGRAM_BOT_TOKEN")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if token != "" {
		cfg.Telegram.BotToken = token
	}
	if cfg.Telegram.BotToken == "" {
		log.Fatal("Telegram bot token is required. Set -token flag or TELEGRAM_BOT_TOKEN env var")
	}

	logger, logCloser := logging.SetupLogger(&cfg.Logging, "telegram-bot")
	defer logCloser.Close()

	svc, err := service.New(cfg, logger)
	if err != nil {
		log.Fatalf("telegram-bot: %v", err)
	}
	defer svc.Close()

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	api.Debug = cfg.Telegram.Debug
	slog.Info("Authorized on account", "username", api.Self.UserName)

	b := newBot(api, svc.Enrich, chat.NewClient(&cfg.Chat, logger), cfg.Telegram.AllowedChats, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping bot...")
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			b.wait()
			slog.Info("Telegram bot stopped")
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}
