package main

import (
	"github.com/gobigdft/gobigdft/logfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite logfile output",
	Short: "Check a logfile and write it again",
	Long: `Reads a logfile, which must be complete, and writes its raw documents
to output. The extension of output (.gz, .zst) selects the compression, so this
also compresses or decompresses logfiles.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := logfile.FromFile(args[0], options())
		if err != nil {
			return err
		}
		if res.Kind == logfile.KindSingle {
			err = res.Log.WriteFile(args[1])
		} else {
			err = res.Seq.WriteFile(args[1])
		}
		if err != nil {
			return err
		}
		logger.Info("logfile written", zap.String("from", args[0]), zap.String("to", args[1]), zap.Stringer("kind", res.Kind))
		return nil
	},
}
