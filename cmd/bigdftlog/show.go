package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	bigdft "github.com/gobigdft/gobigdft"
	"github.com/gobigdft/gobigdft/logfile"
	"github.com/gobigdft/gobigdft/posinp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var showCmd = &cobra.Command{
	Use:   "show logfile...",
	Short: "Summarize logfiles",
	Long: `Prints the kind of each logfile and, for each of its documents, the main
resolved attributes and the warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := readAll(args, options())
		if err != nil {
			return err
		}
		for i, res := range results {
			report(cmd.OutOrStdout(), args[i], res)
		}
		return nil
	},
}

//readAll reads the logfiles names concurrently. The results are in the order
//of names.
func readAll(names []string, opts *logfile.Options) ([]logfile.Result, error) {
	results := make([]logfile.Result, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			res, err := logfile.FromFile(name, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

//report writes a summary of res to w.
func report(w io.Writer, name string, res logfile.Result) {
	logs := res.Logs()
	fmt.Fprintf(w, "%s: %s, %d document(s)\n", name, res.Kind, len(logs))
	if res.Seq != nil {
		for _, m := range res.Seq.Warnings() {
			fmt.Fprintf(w, "  warning: %s\n", m)
		}
	}
	for i, L := range logs {
		if len(logs) > 1 {
			fmt.Fprintf(w, "document %d\n", i)
		}
		describe(w, L)
	}
}

//describe writes the attributes of L that were found, one per line.
func describe(w io.Writer, L *logfile.Logfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if n, ok := L.NAt(); ok {
		fmt.Fprintf(tw, "  atoms\t%d\n", n)
	}
	if t, ok := L.AtomTypes(); ok {
		fmt.Fprintf(tw, "  types\t%s\n", strings.Join(t, " "))
	}
	if bc, ok := L.BoundaryConditions(); ok {
		fmt.Fprintf(tw, "  boundary conditions\t%s\n", bc)
	}
	if c, ok := L.Cell(); ok {
		fmt.Fprintf(tw, "  cell (bohr)\t%v\n", c)
	}
	if e, ok := L.Energy(); ok {
		fmt.Fprintf(tw, "  energy\t%.8f Ha\t%.6f eV\n", e, e*bigdft.H2EV)
	}
	if f, ok := L.FermiLevel(); ok {
		fmt.Fprintf(tw, "  fermi level\t%.8f Ha\n", f)
	}
	if m, ok := L.Magnetization(); ok {
		fmt.Fprintf(tw, "  magnetization\t%g\n", m)
	}
	if f, ok := L.Forcemax(); ok {
		fmt.Fprintf(tw, "  max. force\t%g Ha/Bohr\n", f)
	}
	if p, ok := L.Pressure(); ok {
		fmt.Fprintf(tw, "  pressure\t%g GPa\n", p)
	}
	if d, ok := L.Dipole(); ok {
		fmt.Fprintf(tw, "  dipole (AU)\t%v\n", d)
	}
	if t, ok := L.Walltime(); ok {
		fmt.Fprintf(tw, "  walltime\t%g s\n", t)
	}
	tw.Flush()
	for _, m := range L.Warnings() {
		fmt.Fprintf(w, "  warning: %s\n", m)
	}
}

//bonds writes the bonds of pos, with their lengths in angstroem.
func bonds(w io.Writer, pos *posinp.Posinp) error {
	b, err := pos.Bonds(posinp.BondTolerance)
	if err != nil {
		return err
	}
	for _, bond := range b {
		fmt.Fprintf(w, "  %s%d-%s%d\t%.4f\n", pos.Type(bond.I), bond.I, pos.Type(bond.J), bond.J, bond.Length)
	}
	return nil
}
