/*
 * main.go, part of gotraj.
 *
 * Copyright 2024 The gotraj Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/rmera/gotraj/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	cfgFile string

	logLevel   string
	logFormat  string
	workers    int
	noProgress bool
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "dcdtool",
	Short: "Inspect and analyze CHARMM/NAMD DCD trajectories",
	Long: `dcdtool reads DCD trajectory files with random access to frames and
atom histories. It prints headers and coordinates, repairs the frame count
of files whose writer was interrupted, and computes per-atom statistics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if noProgress {
			cfg.Progress = false
		}
		setupLogging(cfg)
		slog.Debug("Configuration",
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat,
			"workers", cfg.Workers,
			"progress", cfg.Progress)
		return nil
	},
}

// setupLogging installs the default slog logger, and routes the messages that the
// library packages print with the log package through it.
func setupLogging(c *config.Config) {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	}
	slog.SetDefault(slog.New(handler))
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelWarn).Writer())
	log.SetFlags(0)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is dcdtool.yaml in $HOME or pwd)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "concurrent workers for per-atom analyses")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "input compression (dcd, gz, lzw, zst). Deduced from the extension if empty")
}
