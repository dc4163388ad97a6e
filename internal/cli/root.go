// Package cli wires the sweets command tree: serve and migrate.
package cli

import (
	"fmt"

	"github.com/deppfellow/sweets/internal/config"
	"github.com/deppfellow/sweets/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "sweets",
		Short:         "Sweets API",
		Long:          "HTTP API to list, create, retrieve, update and delete sweets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "",
		"YAML config file (defaults to $"+config.ConfigFileEnv+")")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// bootstrap is what every command needs before doing its work.
type bootstrap struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
}

func loadRuntime(opts *RootOptions) (*bootstrap, error) {
	cfg, err := config.LoadConfigFrom(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLogger(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("continuing without New Relic")
	}

	return &bootstrap{
		cfg:           cfg,
		loggerService: loggerService,
		log:           log,
	}, nil
}
