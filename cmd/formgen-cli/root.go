package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	configFile string
	config     *viper.Viper
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "formgen",
		Short: "Build, inspect and fill dynamic forms",
		Long: `formgen loads declarative form schemas (JSON or YAML), validates them
against the form engine and fills them interactively or over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.config = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./formgen.yaml)")
	cmd.PersistentFlags().String(cfgKeyLogLevel, "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newFillCmd(a))
	cmd.AddCommand(newServeCmd(a))
	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
