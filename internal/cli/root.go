package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/logging"
)

type rootOptions struct {
	config    string
	logLevel  string
	logFormat string
}

// NewRootCmd creates the root command of the simulator.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "cpu-scheduler-sim",
		Short:        "Simulate SJF and Round Robin CPU scheduling",
		Long:         "cpu-scheduler-sim computes waiting and turnaround times for a static set of processes under FCFS, SJF and Round Robin.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.config, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(opts),
		newSimulateCmd(opts),
	)
	return root
}

// loadEnvironment resolves configuration and builds the logger; flags win over the config file.
func (o *rootOptions) loadEnvironment() (*config.SchedulerConfig, *slog.Logger, error) {
	var (
		cfg *config.SchedulerConfig
		err error
	)
	if o.config != "" {
		cfg, err = config.Load(o.config)
	} else {
		cfg, err = config.GetSchedulerConfig()
	}
	if err != nil {
		return nil, nil, err
	}

	level, format := cfg.LogLevel, cfg.LogFormat
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.logFormat != "" {
		format = o.logFormat
	}
	return cfg, logging.NewLogger(logging.ParseLevel(level), format), nil
}
