package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobigdft/gobigdft/logfile"
	"github.com/gobigdft/gobigdft/logplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var (
	plotOut    string
	plotWidth  float64
	plotHeight float64
)

var plotCmd = &cobra.Command{
	Use:   "plot logfile",
	Short: "Plot the convergence of a sequence of runs",
	Long: `Draws the energy and the largest force at each document of a
multi-document logfile, as <out>_energy.png and <out>_forces.png.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := logfile.FromFile(args[0], options())
		if err != nil {
			return err
		}
		if res.Seq == nil {
			return fmt.Errorf("%s has a single document, nothing to plot", args[0])
		}
		prefix := plotOut
		if prefix == "" {
			prefix = trimExt(args[0])
		}
		files, err := logplot.Convergence(res.Seq, prefix, filepath.Base(prefix),
			vg.Length(plotWidth)*vg.Centimeter, vg.Length(plotHeight)*vg.Centimeter)
		if err != nil {
			return err
		}
		for _, f := range files {
			logger.Info("plot written", zap.String("file", f))
		}
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "prefix of the plot files (default: the logfile name)")
	plotCmd.Flags().Float64Var(&plotWidth, "width", 12, "width of the plots, in cm")
	plotCmd.Flags().Float64Var(&plotHeight, "height", 9, "height of the plots, in cm")
}

//trimExt removes the compression and YAML extensions from name.
func trimExt(name string) string {
	for _, ext := range []string{".gz", ".zst", ".yaml", ".yml"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
