package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/hairizuan-noorazman/testcases/cmd/backend/handlers"
	"github.com/hairizuan-noorazman/testcases/database"
	"github.com/hairizuan-noorazman/testcases/globalparam"
	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/step"
	"github.com/hairizuan-noorazman/testcases/testcase"
	"github.com/hairizuan-noorazman/testcases/testsuite"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	db, err := database.Connect(cfg.Database.Connection())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	defer sqlDB.Close()

	log.Info(ctx, "database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	caseStore := testcase.NewMySQLStore(db, log)
	stepStore := step.NewMySQLStore(db, log)
	paramStore := globalparam.NewMySQLStore(db, log)
	suiteStore := testsuite.NewMySQLStore(db, log)

	service := testcase.NewService(testcase.Dependencies{
		DB:           db,
		Cases:        caseStore,
		Steps:        stepStore,
		GlobalParams: paramStore,
		Suites:       suiteStore,
		Expander:     testsuite.NewExpander(stepStore, suiteStore),
	}, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(db, service, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info(ctx, "shutting down server", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error(ctx, "server stopped with error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
