package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Aerucodes/CryptoDM/pkg/bootstrap"
	"github.com/Aerucodes/CryptoDM/pkg/config"
	"github.com/Aerucodes/CryptoDM/pkg/logger"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}

	zlog := logger.NewZapLogger("cryptodm", level)
	defer zlog.Sync()

	ctx := context.Background()
	store := bootstrap.NewStorage(ctx, cfg, zlog)
	defer store.Close()

	wallets, err := store.ListWallets(ctx)
	if err != nil {
		zlog.Fatalw("failed to list wallets", "error", err)
	}
	count, err := store.CountTransactions(ctx)
	if err != nil {
		zlog.Fatalw("failed to count transactions", "error", err)
	}

	zlog.Infow("storage ready", "wallets", len(wallets), "transactions", count)
}
