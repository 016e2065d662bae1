/*
 * import.go, part of ballpit.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/ballpit"
	"github.com/rmera/ballpit/countplot"
)

func newImportCmd(a *app) *cobra.Command {
	var showAtoms bool
	var plotFile string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Read a structure file and print its composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			M := a.model(cmd)
			a.loadRadii(M)
			if err := M.ReadAtomsFromFile(args[0], a.cfg.Hetatm); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, M)
			if showAtoms {
				printAtoms(out, M)
			}
			if plotFile == "" {
				return nil
			}
			w := vg.Length(a.cfg.Plot.Width) * vg.Centimeter
			h := vg.Length(a.cfg.Plot.Height) * vg.Centimeter
			return countplot.Save(M, filepath.Base(args[0]), plotFile, w, h)
		},
	}
	cmd.Flags().BoolVarP(&showAtoms, "atoms", "a", false, "print every atom")
	cmd.Flags().StringVarP(&plotFile, "plot", "p", "", "save a bar chart of the composition to this file")
	return cmd
}

func printSummary(out io.Writer, M *ballpit.Model) {
	for _, s := range M.Summary() {
		fmt.Fprintln(out, s)
	}
	x, y, z := M.Centroid()
	fmt.Fprintf(out, "%d atoms, centroid %.3f %.3f %.3f\n", M.Len(), x, y, z)
}

func printAtoms(out io.Writer, M *ballpit.Model) {
	for _, at := range M.Atoms() {
		number := "?"
		if at.Resolved() {
			number = fmt.Sprint(at.Number)
		}
		fmt.Fprintf(out, "%-2s %3s %8.3f %8.3f %8.3f %6.3f\n", at.Symbol, number, at.X, at.Y, at.Z, at.Radius)
	}
}
