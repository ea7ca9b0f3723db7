package main

import (
	"fmt"
	"io"
	"math"

	"github.com/gobigdft/gobigdft/logfile"
	"github.com/spf13/cobra"
)

var geoptCmd = &cobra.Command{
	Use:   "geopt logfile",
	Short: "Follow a geometry optimization",
	Long: `Prints the energy and the largest force at each step of a geometry
optimization, whether it converged, and the final geometry with its bonds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := logfile.FromFile(args[0], options())
		if err != nil {
			return err
		}
		if res.Kind != logfile.KindGeopt {
			return fmt.Errorf("%s is not a geometry optimization (%s)", args[0], res.Kind)
		}
		return geoptReport(cmd.OutOrStdout(), res.Seq)
	},
}

func geoptReport(w io.Writer, S *logfile.Sequence) error {
	e, f := S.Energies(), S.ForceMaxima()
	fmt.Fprintf(w, "%4s  %18s  %12s\n", "step", "energy (Ha)", "fmax (Ha/Bohr)")
	for i := range e {
		fmt.Fprintf(w, "%4d  %18s  %12s\n", i, fmtNaN("%.10f", e[i]), fmtNaN("%.4e", f[i]))
	}
	sum := S.Summary()
	fmt.Fprintf(w, "converged: %t\n", sum.Converged)
	if sum.WithEnergy > 0 {
		fmt.Fprintf(w, "lowest energy: %.10f Ha at step %d\n", sum.MinEnergy, sum.MinStep)
	}
	geoms := S.Geometries()
	final := geoms[len(geoms)-1]
	if final == nil {
		return nil
	}
	fmt.Fprintf(w, "final geometry:\n%s", final)
	fmt.Fprintln(w, "bonds (angstroem):")
	return bonds(w, final)
}

func fmtNaN(format string, v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}
