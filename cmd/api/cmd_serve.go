package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"webapi/internal/config"
	"webapi/internal/handler"
	"webapi/internal/infra/db"
	"webapi/internal/infra/logging"
	infraRepo "webapi/internal/infra/repository"
	"webapi/internal/server"
	"webapi/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the store file and products table if absent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		gdb, err := openStore(cfg, log)
		if err != nil {
			return err
		}
		return closeStore(gdb)
	},
}

func bootstrap() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.GoEnv, cfg.LogLevel), nil
}

// 起動時に1回だけストアを初期化してから接続する
func openStore(cfg config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	if cfg.DBDriver == config.DriverSQLite {
		if err := db.EnsureStore(cfg.DBPath, log); err != nil {
			return nil, err
		}
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == config.DriverPostgres {
		if err := db.EnsureTable(gdb, log); err != nil {
			_ = closeStore(gdb)
			return nil, err
		}
	}
	return gdb, nil
}

func closeStore(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	gdb, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore(gdb)

	//Repository → Usecase → Handler
	productRepo := infraRepo.NewProductGormRepository(gdb)
	productUC := usecase.NewProductUsecase(productRepo, log)
	productH := handler.NewProductHandler(productUC)

	e := server.New(log, productH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx, cfg.Addr(), e, log)
}
