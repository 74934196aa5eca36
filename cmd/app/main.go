package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "marketplace",
		Short:        "Marketplace order lifecycle and dispatch service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
