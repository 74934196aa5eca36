package main

import (
	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var down bool

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			if down {
				if err = migrations.Down(db); err != nil {
					return err
				}
				logger.Info("Schema rolled back")
				return nil
			}

			changed, err := migrations.Up(db)
			if err != nil {
				return err
			}
			logger.Info("Schema migrated", "changed", changed)
			return nil
		},
	}
	command.Flags().BoolVar(&down, "down", false, "roll back every migration")

	return command
}
