// cmd/bot/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"solana-pair-screener-bot/internal/bot"
	"solana-pair-screener-bot/internal/config"
	"solana-pair-screener-bot/internal/dexscreener"
	"solana-pair-screener-bot/internal/telegram"
	"solana-pair-screener-bot/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Logger error: %v", err)
	}
	defer zl.Sync()

	client := dexscreener.NewClient(cfg.DexscreenerBaseURL, cfg.ChainID, cfg.RequestTimeout, zl)
	tgBot := telegram.NewBot(cfg.TelegramAPIURL, cfg.TelegramBotToken, zl)
	controller := bot.NewController(client, tgBot, cfg, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl.Info("🚀 Screener bot starting",
		zap.String("chain", cfg.ChainID),
		zap.Strings("search_terms", cfg.SearchTerms),
		zap.Int("max_results", cfg.MaxResults))

	if err := tgBot.Run(ctx, cfg.PollTimeout, controller); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("bot stopped", zap.Error(err))
	}

	zl.Info("✅ Shutdown complete")
}
