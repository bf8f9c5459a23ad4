package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/stsysd/taskboard/config"
	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/store"
)

// runMigrate は migrate サブコマンドを実行します。command が空の場合は up として扱います。
func runMigrate(cfg config.Config, command string, log *slog.Logger) error {
	var run func(*sql.DB) error
	switch command {
	case "", "up":
		run = db.Migrate
	case "status":
		run = db.MigrationStatus
	case "version":
		run = func(conn *sql.DB) error {
			v, err := db.MigrationVersion(conn)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	// ストアの接続設定を使い、生成直後に run だけを実行する
	st, err := store.NewSQLiteStore(cfg.DataDir, run, store.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("migrate finished", "command", command, "data_dir", cfg.DataDir)
	return st.Close()
}
