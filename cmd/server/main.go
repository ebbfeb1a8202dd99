package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"faq-bot/internal/cache"
	"faq-bot/internal/config"
	"faq-bot/internal/http/router"
	"faq-bot/internal/logger"
	"faq-bot/internal/service"
	"faq-bot/internal/store"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	port := flags.Int("port", cfg.Port, "Port number for the web server")
	_ = flags.Parse(os.Args[1:])
	cfg.Port = *port

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The collection is loaded once; without it there is nothing to serve.
	items, err := store.Load(ctx, cfg)
	if err != nil {
		zl.Fatal("load faq", zap.String("source", cfg.Source), zap.Error(err))
	}
	zl.Info("faq loaded", zap.String("source", cfg.Source), zap.Int("items", len(items)))

	var matches service.MatchCache
	rdb, err := config.NewRedis(ctx, cfg)
	if err != nil {
		zl.Warn("match cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
		matches = cache.NewMatchCache(rdb, items, cfg.CacheTTL)
		zl.Info("match cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	app := router.New(service.NewFAQService(items, matches, zl), zl)

	go func() {
		<-ctx.Done()
		zl.Info("shutdown signal received")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			zl.Warn("shutdown", zap.Error(err))
		}
	}()

	addr := cfg.Addr()
	zl.Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zl.Fatal("listen", zap.Error(err))
	}
}
