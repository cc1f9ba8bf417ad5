package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/database"
	"github.com/Alidiabb/quickcounsel/internal/router"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	db, err := database.Connect(cfg.DB)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer closeDatabase(db)

	app := router.New(cfg, db, metrics.NewManager())
	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":      cfg.Server.Port,
		"address":   listenAddr,
		"db_driver": cfg.DB.Driver,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("server_shutting_down", map[string]interface{}{"signal": sig.String()})
	case <-ctx.Done():
		logger.Info("server_shutting_down", map[string]interface{}{"reason": ctx.Err().Error()})
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("server_shutdown_failed", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
		return err
	}

	logger.Info("server_stopped", nil)
	return nil
}

// closeDatabase releases db, logging rather than returning a close failure
// since it runs on the way out.
func closeDatabase(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Error("database_close_failed", err, nil)
	}
}
