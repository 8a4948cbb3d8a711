/*
File    : di/root.go
Project : di compiler front-end
*/

package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zuiderkwast/di/config"
	"github.com/zuiderkwast/di/repl"
)

const version = "0.1.0"

// Global flags available to all subcommands.
var (
	configFile string
	cfg        *config.Config
)

// NewRootCmd creates the root command for the dlc CLI. A bare "dlc FILE"
// runs the default lex command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dlc [COMMAND] FILE",
		Short: "dlc - the di compiler front-end",
		Long: `dlc analyzes di source files: it lexes, parses and annotates them and
dumps the result of the requested stage. The default command is lex.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("color", "auto", "colorize output: auto, always or never")
	cmd.PersistentFlags().Bool("warn-errors", false, "treat warnings as errors")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(cfg.LogLevel)
		switch cfg.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}
		return nil
	}

	cmd.AddCommand(newFileCmd("source", "Dump the raw source text", runSource))
	cmd.AddCommand(newFileCmd("lex", "Dump the token stream", runLex))
	cmd.AddCommand(newFileCmd("parse", "Dump the raw syntax tree", runParse))
	cmd.AddCommand(newFileCmd("annotate", "Dump the annotated syntax tree", runAnnotate))
	cmd.AddCommand(newFileCmd("pp", "Pretty-print the parsed source", runPrettyPrint))
	cmd.AddCommand(newReplCmd())

	return cmd
}

// newFileCmd wraps a stage runner taking a single FILE argument.
func newFileCmd(name, short string, run func(string) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func newReplCmd() *cobra.Command {
	dump := false
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(version)
			r.Dump = dump
			return r.Start()
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump annotated trees instead of pretty-printing")
	return cmd
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
