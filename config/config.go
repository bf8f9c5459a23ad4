// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// HTTPConfig はHTTPサーバーの設定です。
type HTTPConfig struct {
	Address string        `yaml:"address" env:"TASKBOARD_HTTP_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"TASKBOARD_HTTP_TIMEOUT" env-default:"5s"`
}

// PaginationConfig は一覧取得のページサイズの設定です。
type PaginationConfig struct {
	DefaultSize int `yaml:"default_size" env:"TASKBOARD_DEFAULT_PAGE_SIZE" env-default:"10"`
	// MaxSize が0の場合はページサイズに上限を設けない
	MaxSize int `yaml:"max_size" env:"TASKBOARD_MAX_PAGE_SIZE" env-default:"0"`
}

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	LogLevel   string           `yaml:"log_level" env:"TASKBOARD_LOG_LEVEL" env-default:"INFO"`
	DataDir    string           `yaml:"data_dir" env:"TASKBOARD_DATA_DIR" env-default:"./data"`
	HTTP       HTTPConfig       `yaml:"http"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// Load は設定を読み込みます。configPath が空またはファイルが存在しない場合は環境変数だけを使います。
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
		}
		// ファイルがなければ環境変数にフォールバック
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}
	return cfg, cfg.validate()
}

// MustLoad は Load と同じですが、失敗した場合はプロセスを終了します。
func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c Config) validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.Pagination.DefaultSize < 1 {
		return errors.New("pagination.default_size must be positive")
	}
	if c.Pagination.MaxSize < 0 {
		return errors.New("pagination.max_size must not be negative")
	}
	if c.Pagination.MaxSize != 0 && c.Pagination.MaxSize < c.Pagination.DefaultSize {
		return errors.New("pagination.max_size must not be smaller than default_size")
	}
	return nil
}
