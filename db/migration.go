package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed schema/*.sql
var embedMigrations embed.FS

const migrationDir = "schema"

// setupGoose は埋め込みスキーマと SQLite 方言を goose に設定します。
func setupGoose() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate はデータベースを最新のスキーマまでマイグレーションします。
func Migrate(conn *sql.DB) error {
	// 外部キー制約を有効化
	if _, err := conn.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(conn, migrationDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// MigrationStatus は各マイグレーションの適用状況をログに出力します。
func MigrationStatus(conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Status(conn, migrationDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// MigrationVersion は現在のスキーマバージョンを返します。
func MigrationVersion(conn *sql.DB) (int64, error) {
	if err := setupGoose(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersion(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}
