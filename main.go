package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"board-api/internal/app"
	"board-api/internal/config"
	"board-api/internal/db"
	"board-api/internal/db/seeder"
	"board-api/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	logger, err := utils.NewLogger(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	utils.LoadEnv(logger)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Config loaded",
		zap.String("server_port", cfg.ServerPort),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("db_host", cfg.DBHost),
		zap.String("env", cfg.Env),
	)

	cliApp := &cli.App{
		Name:  "board-api",
		Usage: "bulletin board CRUD service",
		Action: func(*cli.Context) error {
			return serve(&cfg, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "migrate the schema and start the HTTP server",
				Action: func(*cli.Context) error {
					return serve(&cfg, logger)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the boards schema and exit",
				Action: func(*cli.Context) error {
					return migrate(&cfg, logger)
				},
			},
			{
				Name:  "seed",
				Usage: "insert sample boards into an empty table and exit",
				Action: func(*cli.Context) error {
					return seed(&cfg, logger)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	application, err := app.Bootstrap(cfg, logger)
	if err != nil {
		return err
	}

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    addr,
		Handler: application.Router.Engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("addr", "localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := application.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server exited gracefully")
	return nil
}

func migrate(cfg *config.Config, logger *zap.Logger) error {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return err
	}
	return db.Migrate(dbConn, logger, app.Models()...)
}

func seed(cfg *config.Config, logger *zap.Logger) error {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return err
	}
	if err := db.Migrate(dbConn, logger, app.Models()...); err != nil {
		return err
	}
	return seeder.NewSeeder(dbConn, logger).Seed()
}
