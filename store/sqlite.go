// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

// Store はtaskboardのすべての永続化操作をまとめたインターフェースです。
type Store interface {
	ProjectStore
	UserStore
	TaskStatusStore
	TaskStore
	AssignmentStore
	CommentStore
	HistoryStore

	// WithinTx は fn を1つのトランザクション内で実行します。
	// fn がエラーを返した場合はロールバックします。
	WithinTx(ctx context.Context, fn func(Store) error) error
	// Ping はデータベースへの疎通を確認します。
	Ping(ctx context.Context) error
	// Close はストアの接続を閉じます。
	Close() error
}

// SQLiteStore はSQLiteを使用したStoreの実装です。
type SQLiteStore struct {
	conn    *sqlx.DB
	ext     sqlx.ExtContext
	queries *db.Queries
	tx      *sqlx.Tx
	log     *slog.Logger
}

// Option は SQLiteStore の生成オプションです。
type Option func(*SQLiteStore)

// WithLogger はストアが使うロガーを設定します。
func WithLogger(log *slog.Logger) Option {
	return func(s *SQLiteStore) {
		s.log = log
	}
}

// dsn はデータベースファイルへの接続文字列を組み立てます。
func dsn(dbPath string) string {
	return "file:" + dbPath + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL"
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
// migrate には接続直後に実行するマイグレーション関数を渡します。
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error, opts ...Option) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "taskboard.db")

	conn, err := sqlx.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := migrate(conn.DB); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &SQLiteStore{
		conn:    conn,
		ext:     conn,
		queries: db.New(conn.DB),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WithinTx は fn を1つのトランザクション内で実行します。
// すでにトランザクション内にいる場合は fn をそのまま実行します。
func (s *SQLiteStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SQLiteStore{
		conn:    s.conn,
		ext:     tx,
		queries: s.queries.WithTx(tx.Tx),
		tx:      tx,
		log:     s.log,
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping はデータベースへの疎通を確認します。
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	if s.tx != nil {
		return errors.New("cannot close a transaction-scoped store")
	}
	return s.conn.Close()
}

// isForeignKeyViolation は err がSQLiteの外部キー制約違反かどうかを返します。
func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// writeError は書き込み時のエラーを変換します。
// 外部キー制約違反は msg を持つ ValidationError になります。
func writeError(err error, op, msg string) error {
	if isForeignKeyViolation(err) {
		return model.NewValidationError(msg)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// readError は1件取得時のエラーを変換します。
func readError(err error, resource string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewNotFoundError(resource, id)
	}
	return fmt.Errorf("failed to get %s: %w", resource, err)
}

// affected は更新・削除された行数を返します。
// 外部キー制約違反はそのまま返すので、呼び出し側で writeError により変換します。
func affected(result sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
