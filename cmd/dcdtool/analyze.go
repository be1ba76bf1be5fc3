/*
 * analyze.go, part of gotraj.
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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rmera/gotraj/chemplot"
	"github.com/rmera/gotraj/chemstat"
	"github.com/rmera/gotraj/internal/progress"
	"github.com/rmera/gotraj/traj/dcd"
	"github.com/spf13/cobra"
)

var (
	rmsfAtoms []int
	rmsfPlot  string
	plotOut   string
	dispBins  int
	dispCorr  bool
)

var rmsfCmd = &cobra.Command{
	Use:   "rmsf FILE",
	Short: "Compute the root mean square fluctuation of free atoms",
	Long: `rmsf computes the root mean square fluctuation of each free atom (or of the
atoms given with --atoms) around its mean position, reading the atom histories
concurrently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		traj, err := dcd.OpenFormat(args[0], format)
		if err != nil {
			return err
		}
		defer traj.Close()

		var atoms []int
		if len(rmsfAtoms) > 0 {
			atoms = rmsfAtoms
		}
		total := traj.FreeAtoms()
		if atoms != nil {
			total = len(atoms)
		}
		slog.Info("Computing RMSF", "file", args[0], "atoms", total, "frames", traj.Frames(), "workers", cfg.Workers)
		bar := progress.New(total, "rmsf", cfg.Progress)
		rmsf, err := chemstat.RMSFAll(ctx, traj, atoms, cfg.Workers, bar.Increment)
		bar.Finish()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, r := range rmsf {
			a := i
			if atoms != nil {
				a = atoms[i]
			}
			fmt.Fprintf(w, "%6d %10.4f\n", traj.Atom(a).ID(), r)
		}
		if rmsfPlot != "" {
			title := "RMSF " + filepath.Base(args[0])
			if err := chemplot.Series(rmsf, title, "Atom", "RMSF", rmsfPlot); err != nil {
				return err
			}
			slog.Info("Plot written", "file", rmsfPlot)
		}
		return nil
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot FILE K",
	Short: "Plot the coordinates of the free atom K along the trajectory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		traj, err := dcd.OpenFormat(args[0], format)
		if err != nil {
			return err
		}
		defer traj.Close()
		k, err := index(args[1], traj.FreeAtoms(), "atom")
		if err != nil {
			return err
		}
		out := plotOut
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = fmt.Sprintf("%s_atom%d.png", base, k)
		}
		A := traj.Atom(k)
		title := fmt.Sprintf("Atom %d, %s", A.ID(), filepath.Base(args[0]))
		if err := chemplot.AtomTrace(A, title, out); err != nil {
			return err
		}
		slog.Info("Plot written", "file", out)
		return nil
	},
}

var dispCmd = &cobra.Command{
	Use:   "disp FILE K",
	Short: "Print the displacement of the free atom K from its first position",
	Long: `disp prints, for each frame, the distance of the free atom K to its position
in the first frame. With --bins it prints a histogram of those distances instead,
and with --autocorr the normalized autocorrelation of the displacement series.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		traj, err := dcd.OpenFormat(args[0], format)
		if err != nil {
			return err
		}
		defer traj.Close()
		k, err := index(args[1], traj.FreeAtoms(), "atom")
		if err != nil {
			return err
		}
		A := traj.Atom(k)
		w := cmd.OutOrStdout()
		switch {
		case dispCorr:
			corr, err := chemstat.DisplacementAutocorr(A)
			if err != nil {
				return err
			}
			for lag, c := range corr {
				fmt.Fprintf(w, "%6d %8.4f\n", lag, c)
			}
		case dispBins > 0:
			disp, err := chemstat.Displacement(A)
			if err != nil {
				return err
			}
			div, counts, err := chemstat.Histogram(disp, dispBins)
			if err != nil {
				return err
			}
			for i, c := range counts {
				fmt.Fprintf(w, "%10.4f %10.4f %6d\n", div[i], div[i+1], int(c))
			}
		default:
			disp, err := chemstat.Displacement(A)
			if err != nil {
				return err
			}
			h := traj.Header()
			for t, d := range disp {
				fmt.Fprintf(w, "%8d %10.4f\n", h.Time(t), d)
			}
		}
		return nil
	},
}

func init() {
	dispCmd.Flags().IntVar(&dispBins, "bins", 0, "print a histogram of the displacements with this many bins")
	dispCmd.Flags().BoolVar(&dispCorr, "autocorr", false, "print the autocorrelation of the displacements")
	rmsfCmd.Flags().IntSliceVar(&rmsfAtoms, "atoms", nil, "comma-separated free atom indexes (default all)")
	rmsfCmd.Flags().StringVar(&rmsfPlot, "plot", "", "also plot the RMSF to this file (png, svg, pdf)")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "output file (default <FILE>_atom<K>.png)")
	rootCmd.AddCommand(rmsfCmd, plotCmd, dispCmd)
}
