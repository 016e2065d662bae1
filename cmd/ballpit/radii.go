/*
 * radii.go, part of ballpit.
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
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rmera/ballpit"
)

func newRadiiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "radii",
		Short: "Load the radii definitions and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Radii == "" && !a.cfg.DefaultRadii {
				return errors.New("no radii file given, use --radii or --default-radii")
			}
			M := a.model(cmd)
			a.loadRadii(M)
			radii := M.Radii()
			symbols := make([]string, 0, len(radii))
			for k := range radii {
				symbols = append(symbols, k)
			}
			sort.Strings(symbols)
			out := cmd.OutOrStdout()
			for _, s := range symbols {
				z, _ := M.AtomicNumber(s)
				fmt.Fprintf(out, "%3d %-2s %6.3f\n", z, s, radii[s])
			}
			return nil
		},
	}
}

func newElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the supported elements with their built-in covalent radii",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			radii := ballpit.CovalentRadii()
			out := cmd.OutOrStdout()
			for z := uint(1); ; z++ {
				s, ok := ballpit.PeriodicSymbol(z)
				if !ok {
					break
				}
				fmt.Fprintf(out, "%3d %-2s %6.3f\n", z, s, radii[s])
			}
			return nil
		},
	}
}
