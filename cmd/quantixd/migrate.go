package main

import (
	"github.com/spf13/cobra"

	pgInfra "github.com/fastygo/quantix/internal/infrastructure/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the remote mirror schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zapLogger, err := loadRuntime()
			if err != nil {
				return err
			}
			defer zapLogger.Sync()
			return pgInfra.RunMigrations(cfg, zapLogger)
		},
	}
}
