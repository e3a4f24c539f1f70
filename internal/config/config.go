package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8000）

	DBDriver    string // sqlite / postgres
	DBPath      string // SQLiteのストアファイル（app.db）
	DatabaseURL string // postgresのDSN

	GoEnv    string // dev/prod
	LogLevel string // logrusのレベル名
}

// Loadは環境変数から設定を読む。.envがあれば先に読み込む（なくてもエラーにしない）
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port: getenv("PORT", "8000"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DBPath:      getenv("DB_PATH", "app.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		GoEnv:    getenv("GO_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	//必須チェック
	if _, err := strconv.Atoi(strings.TrimPrefix(cfg.Port, ":")); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return Config{}, fmt.Errorf("DB_PATH is required")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", cfg.DBDriver)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Addrは listen 用の ":8000" 形式を返す
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
