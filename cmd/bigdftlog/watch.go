/*
 * watch.go, part of gobigdft.
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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobigdft/gobigdft/logfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch logfile",
	Short: "Follow a logfile while BigDFT writes it",
	Long: `Reads the logfile again each time it changes, and prints one line with
the number of documents, the last energy and the last largest force. Reading
errors due to a run still in progress are only logged in debug mode.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		f := &follower{name: args[0], opts: options(), debounce: watchDebounce}
		out := cmd.OutOrStdout()
		return f.run(ctx, func(res logfile.Result, err error) {
			if err != nil {
				if errors.Is(err, logfile.ErrIncomplete) || errors.Is(err, os.ErrNotExist) {
					logger.Debug("logfile not readable yet", zap.Error(err))
				} else {
					logger.Warn("could not read logfile", zap.Error(err))
				}
				return
			}
			status(out, res)
		})
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "time to wait for writes to settle")
}

//status writes a one-line summary of the last document of res.
func status(w io.Writer, res logfile.Result) {
	logs := res.Logs()
	L := logs[len(logs)-1]
	line := fmt.Sprintf("%s %s, %d document(s)", time.Now().Format(time.TimeOnly), res.Kind, len(logs))
	if e, ok := L.Energy(); ok {
		line += fmt.Sprintf(", energy %.10f Ha", e)
	}
	if f, ok := L.Forcemax(); ok {
		line += fmt.Sprintf(", max. force %.4e Ha/Bohr", f)
	}
	fmt.Fprintln(w, line)
}

//follower reads a logfile again each time it is written.
type follower struct {
	name     string
	opts     *logfile.Options
	debounce time.Duration
}

//run calls onChange with the result of reading the logfile, once at the start
//and then after each series of writes, until ctx is done. The directory is
//watched rather than the file, so that a logfile created or replaced later is
//followed too.
func (F *follower) run(ctx context.Context, onChange func(logfile.Result, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()
	target := filepath.Clean(F.name)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	onChange(logfile.FromFile(F.name, F.opts))
	timer := time.NewTimer(F.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("logfile changed", zap.String("event", ev.Op.String()))
			timer.Reset(F.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			onChange(logfile.FromFile(F.name, F.opts))
		}
	}
}
