/*
 * main.go, part of gobigdft.
 *
 * Copyright 2026 The gobigdft authors
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

//Command bigdftlog reads BigDFT logfiles: it summarizes them, follows geometry
//optimizations, plots their convergence and rewrites them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gobigdft/gobigdft/inputparams"
	"github.com/gobigdft/gobigdft/logfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose     bool
	definitions string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bigdftlog",
	Short: "Read, summarize and rewrite BigDFT logfiles",
	Long: `bigdftlog reads the YAML logfiles written by BigDFT, including the
multi-document logfiles of geometry optimizations. Files ending in .gz or .zst
are decompressed on the fly.

The input variables definitions are read from the file given with
--definitions or, if BIGDFT_SOURCES is set, from
$BIGDFT_SOURCES/src/input_variables_definition.yaml. Without them, input
parameters are kept as written in the logfile.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&definitions, "definitions", "", "input variables definitions file")
	rootCmd.AddCommand(showCmd, geoptCmd, rewriteCmd, plotCmd, watchCmd)
}

//options returns the reading options for the command line flags. Definitions
//that can't be read are not fatal: the builtin ones are used instead.
func options() *logfile.Options {
	var defs *inputparams.Definitions
	var err error
	if definitions != "" {
		defs, err = inputparams.DefinitionsFromFile(definitions)
	} else {
		defs, err = inputparams.DefinitionsFromEnv()
	}
	if err != nil {
		logger.Warn("using builtin input definitions", zap.Error(err))
	} else {
		logger.Debug("input definitions loaded", zap.Strings("sections", defs.Sections()))
	}
	return &logfile.Options{Definitions: defs, Warner: logfile.ZapWarner{Logger: logger}}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, logfile.ErrIncomplete) {
			fmt.Fprintln(os.Stderr, "the run did not finish, or crashed:", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
