package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contavel-dev/contavel/internal/config"
	"github.com/contavel-dev/contavel/internal/metrics"
	"github.com/contavel-dev/contavel/internal/scheduler"
	"github.com/contavel-dev/contavel/internal/store"
)

func newSchedulerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the scheduled-transaction settlement daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			return runScheduler(dir)
		},
	}
	return cmd
}

func runScheduler(dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	if err != nil {
		return err
	}
	s, err := store.Load(dir)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on shutdown

	collector := metrics.NewCollector()
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: cfg.Scheduler.ListenAddr, Handler: mux}
	go func() {
		logger.Info("metrics listening", zap.String("addr", cfg.Scheduler.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
	logger.Info("scheduler starting",
		zap.String("dir", dir),
		zap.Duration("interval", interval))
	scheduler.New(s, collector, logger, interval).Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown", zap.Error(err))
	}

	logger.Info("scheduler stopping, saving books")
	return s.Save(dir)
}
