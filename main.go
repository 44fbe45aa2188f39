package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/auth"
	"github.com/Waleedkhan5609/Online-Shopping-cart/cli"
	"github.com/Waleedkhan5609/Online-Shopping-cart/config"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting store",
		zap.String("product_file", cfg.ProductFile),
		zap.String("account_file", cfg.AccountFile))

	s := store.New(cfg.ProductFile, cfg.AccountFile, logger)
	s.Load()

	app, err := cli.New(s, auth.New(cfg.Admin()), logger)
	if err != nil {
		logger.Fatal("failed to start CLI", zap.Error(err))
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Fatal("CLI exited with error", zap.Error(err))
	}
}
