package db

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"webapi/internal/config"
)

const createProductsSQLite = `
CREATE TABLE products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    in_stock INTEGER NOT NULL DEFAULT 1
)`

const createProductsPostgres = `
CREATE TABLE products (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    price DOUBLE PRECISION NOT NULL,
    in_stock INTEGER NOT NULL DEFAULT 1
)`

// Open はDBに接続して *gorm.DB を返す。
func Open(cfg config.Config) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg)
	if err != nil {
		return nil, err
	}

	// ログは logrus 側で出すので GORM 自身のログは止める
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "db: open")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, errors.Wrap(err, "db: get sql.DB")
	}
	// SQLiteはファイル1つなので、書き込みを1本の接続に直列化する
	if cfg.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "db: ping")
	}
	return gdb, nil
}

func buildDialector(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DBPath), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, errors.Errorf("db: unsupported driver %q", cfg.DBDriver)
	}
}

// EnsureStore はストアファイルが無ければ作成して products テーブルを定義する。
// ファイルが既にあれば何もしない（スキーマの確認もしない）。
func EnsureStore(path string, log logrus.FieldLogger) error {
	_, err := os.Stat(path)
	if err == nil {
		log.WithField("path", path).Info("store already exists")
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "db: stat %s", path)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return errors.Wrapf(err, "db: create %s", path)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return errors.Wrap(err, "db: get sql.DB")
	}
	defer sqlDB.Close()

	if err := gdb.Exec(createProductsSQLite).Error; err != nil {
		return errors.Wrap(err, "db: create products table")
	}

	log.WithField("path", path).Info("store created")
	return nil
}

// EnsureTable は postgres 用。products テーブルが無ければ作る。
func EnsureTable(gdb *gorm.DB, log logrus.FieldLogger) error {
	if gdb.Migrator().HasTable("products") {
		log.Info("products table already exists")
		return nil
	}
	if err := gdb.Exec(createProductsPostgres).Error; err != nil {
		return errors.Wrap(err, "db: create products table")
	}
	log.Info("products table created")
	return nil
}
