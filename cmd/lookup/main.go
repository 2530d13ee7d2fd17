package main

import (
	"log"
	"os"

	"customer-lookup/internal/config"
	"customer-lookup/internal/fields"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(config.FromEnv()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "lookup",
		Short:        "Search a customer directory",
		SilenceUsage: true,
	}
	reg := fields.Default().WithSearchFields(cfg.SearchFields...)
	root.AddCommand(
		newServeCmd(cfg, reg),
		newSearchCmd(cfg, reg),
		newFieldsCmd(reg),
	)
	return root
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "[lookup] ", log.LstdFlags|log.LUTC|log.Lshortfile)
}
