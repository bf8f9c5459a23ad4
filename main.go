// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/stsysd/taskboard/api"
	"github.com/stsysd/taskboard/config"
	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/service"
	"github.com/stsysd/taskboard/store"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config path] [migrate [up|status|version]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// 設定の読み込み
	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if flag.Arg(0) == "migrate" {
		if err := runMigrate(cfg, flag.Arg(1), log); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		return
	} else if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	// SQLiteストアの初期化（マイグレーション関数を渡す）
	sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate, store.WithLogger(log))
	if err != nil {
		log.Error("cannot init sqlite store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = sqliteStore.Close() }()

	server := api.NewServer(service.New(sqliteStore, log), cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
