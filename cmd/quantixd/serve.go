package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/quantix/api/handler"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/quantix/internal/infrastructure/postgres"
	"github.com/fastygo/quantix/internal/middleware"
	"github.com/fastygo/quantix/internal/router"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/internal/services/lifecycle"
	"github.com/fastygo/quantix/internal/streak"
	"github.com/fastygo/quantix/pkg/httpcontext"
	focusUC "github.com/fastygo/quantix/usecase/focus"
	goalUC "github.com/fastygo/quantix/usecase/goal"
	journalUC "github.com/fastygo/quantix/usecase/journal"
	profileUC "github.com/fastygo/quantix/usecase/profile"
	settingsUC "github.com/fastygo/quantix/usecase/settings"
	streakUC "github.com/fastygo/quantix/usecase/streak"
	taskUC "github.com/fastygo/quantix/usecase/task"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HUD API on the local loopback",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, zapLogger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, stop := manager.SignalContext(parent)
	defer stop()

	store, err := localstore.Open(cfg.LocalStore.Path, localstore.DefaultBucket)
	if err != nil {
		return err
	}
	manager.Register("local_store", func(ctx context.Context) error {
		return store.Close()
	})

	deviceID, err := services.EnsureDeviceID(store, cfg.Device.ID)
	if err != nil {
		_ = manager.Shutdown(context.Background())
		return err
	}
	zapLogger = zapLogger.With(zap.String("device_id", deviceID))

	if cfg.Remote.Enabled && cfg.Migrations.Enabled {
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			zapLogger.Warn("migrations skipped", zap.Error(err))
		}
	}

	rem := connectRemotes(appCtx, cfg, zapLogger)
	manager.Register("remotes", func(ctx context.Context) error {
		return rem.close(zapLogger)
	})

	mon := monitor.New(rem.pool, rem.redis, store, cfg.Remote.CheckInterval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	remoteStores := rem.stores(cfg)
	mirror := services.NewMirror(remoteStores, mon, zapLogger, services.MirrorConfig{
		QueueSize: cfg.Sync.QueueSize,
		Timeout:   cfg.Remote.Timeout,
	})
	mirror.Start()
	manager.Register("mirror", func(ctx context.Context) error {
		mirror.Stop(ctx)
		return nil
	})

	rule, err := streak.ParseDailyRule(cfg.Dashboard.DailyListRule)
	if err != nil {
		_ = manager.Shutdown(context.Background())
		return err
	}
	sync := services.NewSynchronizer(store, remoteStores, mirror, mon, zapLogger, services.SyncConfig{
		DeviceID:        deviceID,
		Timezone:        cfg.Device.Timezone,
		DailyRule:       rule,
		ProfileDebounce: cfg.Sync.ProfileDebounce,
		TickInterval:    cfg.Focus.TickInterval,
	})
	// Stops before the mirror, flushing the pending profile write into its queue.
	manager.Register("synchronizer", sync.Close)

	report := sync.Hydrate(appCtx)
	zapLogger.Info("state hydrated",
		zap.Bool("remote_available", report.RemoteAvailable),
		zap.Int("replaced", len(report.Replaced)))

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout, deviceID)
	handlers := router.Handlers{
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
		Status:   apiHandler.NewStatusHandler(sync, mirror, ctxAdapter, zapLogger),
		Profile:  apiHandler.NewProfileHandler(profileUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Task:     apiHandler.NewTaskHandler(taskUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Focus:    apiHandler.NewFocusHandler(focusUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Streak:   apiHandler.NewStreakHandler(streakUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Journal:  apiHandler.NewJournalHandler(journalUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Goal:     apiHandler.NewGoalHandler(goalUC.New(sync, zapLogger), ctxAdapter, zapLogger),
		Settings: apiHandler.NewSettingsHandler(settingsUC.New(sync, zapLogger), ctxAdapter, zapLogger),
	}

	wrap := middleware.Chain(middleware.Recover(zapLogger), middleware.RequestLogger(zapLogger))
	r := router.New(handlers, wrap)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		serveErr <- server.ListenAndServe(cfg.Address())
	}()
	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	var runErr error
	select {
	case <-appCtx.Done():
	case err := <-serveErr:
		if err != nil {
			zapLogger.Error("server stopped", zap.Error(err))
			runErr = err
		}
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
		runErr = errors.Join(runErr, err)
	}
	return runErr
}
