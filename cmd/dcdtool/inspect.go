/*
 * inspect.go, part of gotraj.
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
	"log/slog"
	"strconv"

	"github.com/rmera/gotraj/traj/dcd"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print the header of a DCD file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		traj, err := dcd.OpenFormat(args[0], format)
		if err != nil {
			return err
		}
		defer traj.Close()
		h := traj.Header()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "file:          %s\n", traj.FileName())
		fmt.Fprintf(w, "byte order:    %s\n", h.Order)
		fmt.Fprintf(w, "scale:         %s\n", h.Scale)
		fmt.Fprintf(w, "frames:        %d\n", h.Frames)
		fmt.Fprintf(w, "start:         %d\n", h.Start)
		fmt.Fprintf(w, "step:          %d\n", h.Step)
		fmt.Fprintf(w, "delta:         %g\n", h.Delta)
		fmt.Fprintf(w, "atoms:         %d (%d free, %d fixed)\n", h.Atoms, h.FreeAtoms, h.FixedAtoms)
		fmt.Fprintf(w, "charmm:        %d\n", h.CharmmVersion)
		fmt.Fprintf(w, "unit cell:     %t\n", h.UnitCell)
		fmt.Fprintf(w, "4D:            %t\n", h.FourDims)
		fmt.Fprintf(w, "frame size:    %d\n", h.FrameSize)
		for _, l := range h.TitleLines() {
			fmt.Fprintf(w, "title:         %s\n", l)
		}
		return nil
	},
}

var frameCmd = &cobra.Command{
	Use:   "frame FILE N",
	Short: "Print the coordinates of all free atoms at frame N",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		traj, err := dcd.OpenFormat(args[0], format)
		if err != nil {
			return err
		}
		defer traj.Close()
		n, err := index(args[1], traj.Frames(), "frame")
		if err != nil {
			return err
		}
		F, err := traj.Frame(n)
		if err != nil {
			return err
		}
		h := traj.Header()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# frame %d, timestep %d\n", n, h.Time(n))
		for i, c := range F.Coords(nil) {
			fmt.Fprintf(w, "%6d %s\n", traj.Atom(i).ID(), c)
		}
		return nil
	},
}

var atomCmd = &cobra.Command{
	Use:   "atom FILE K",
	Short: "Print the coordinates of the free atom K along the trajectory",
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
		A := traj.Atom(k)
		coords, err := A.Coords(nil)
		if err != nil {
			return err
		}
		h := traj.Header()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# atom %d, id %d\n", k, A.ID())
		for t, c := range coords {
			fmt.Fprintf(w, "%8d %s\n", h.Time(t), c)
		}
		return nil
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair FILE",
	Short: "Rewrite the frame count of a DCD file to match its size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := dcd.Repair(args[0])
		if err != nil {
			return err
		}
		slog.Info("Repaired", "file", args[0], "frames", frames)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", frames)
		return nil
	},
}

// index parses s as an index in [0, n).
func index(s string, n int, what string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: %w", what, s, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s index %d out of range [0,%d)", what, i, n)
	}
	return i, nil
}

func init() {
	rootCmd.AddCommand(infoCmd, frameCmd, atomCmd, repairCmd)
}
