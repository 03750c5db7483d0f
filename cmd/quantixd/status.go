package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/infrastructure/monitor"
	"github.com/fastygo/quantix/internal/services"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show local store and remote mirror reachability",
		Long: `Probe every backend once and print:
- local store path and key count
- device identity
- postgres and redis reachability`,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}
	quiet := zap.NewNop()

	// The daemon holds the file lock while serving.
	store, err := localstore.Open(cfg.LocalStore.Path, localstore.DefaultBucket)
	if err != nil {
		return fmt.Errorf("local store %s: %w", cfg.LocalStore.Path, err)
	}
	defer store.Close()

	deviceID, err := services.EnsureDeviceID(store, cfg.Device.ID)
	if err != nil {
		return err
	}

	rem := connectRemotes(cmd.Context(), cfg, quiet)
	defer rem.close(quiet)

	mon := monitor.New(rem.pool, rem.redis, store, cfg.Remote.CheckInterval, quiet)
	mon.Refresh()
	status := mon.GetStatus()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Quantix Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "  Device:      %s\n", deviceID)
	fmt.Fprintf(out, "  Local store: %s (%s, %d keys)\n", cfg.LocalStore.Path, onlineLabel(status.LocalStore), status.LocalKeys)
	fmt.Fprintf(out, "  PostgreSQL:  %s\n", onlineLabel(status.PostgreSQL))
	fmt.Fprintf(out, "  Redis:       %s\n", onlineLabel(status.Redis))
	if !status.PostgreSQL {
		fmt.Fprintln(out, "\nRunning in degraded mode: changes stay local until the mirror returns.")
	}
	return nil
}

func onlineLabel(ok bool) string {
	if ok {
		return "online"
	}
	return "offline"
}
