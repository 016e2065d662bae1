/*
 * root.go, part of ballpit.
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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rmera/ballpit"
	"github.com/rmera/ballpit/internal/config"
	"github.com/rmera/ballpit/internal/logging"
)

//app carries what all the subcommands share.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "ballpit",
		Short: "Read XYZ and PDB structures and report their atoms",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync() //fails harmlessly on terminals
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "configuration file (default ./ballpit.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("radii", "r", "", "radii definition file")
	pf.Bool("default-radii", false, "use built-in covalent radii when no radii file is given")
	pf.Bool("hetatm", false, "also read HETATM records from PDB files")
	a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	a.v.BindPFlag("radii", pf.Lookup("radii"))
	a.v.BindPFlag("default_radii", pf.Lookup("default-radii"))
	a.v.BindPFlag("hetatm", pf.Lookup("hetatm"))

	cmd.AddCommand(newImportCmd(a), newRadiiCmd(a), newElementsCmd(), newWatchCmd(a))
	return cmd
}

//init loads the configuration and sets up logging.
func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	a.cfg = cfg
	a.log = l
	return nil
}

//model returns an empty Model that shows notifications on the command's
//error output.
func (a *app) model(cmd *cobra.Command) *ballpit.Model {
	errOut := cmd.ErrOrStderr()
	n := ballpit.NotifierFunc(func(msg string) {
		fmt.Fprintln(errOut, "ballpit:", msg)
	})
	return ballpit.NewModel(ballpit.WithNotifier(n), ballpit.WithLogger(a.log))
}

//loadRadii fills the tables of M as the configuration says. Having no
//radii is not an error, the user has been told already.
func (a *app) loadRadii(M *ballpit.Model) {
	var err error
	switch {
	case a.cfg.Radii != "":
		err = M.LoadRadii(a.cfg.Radii)
	case a.cfg.DefaultRadii:
		err = M.ReadRadii(ballpit.CovalentRadiiReader())
	default:
		return
	}
	if err != nil {
		a.log.Debug("continuing without radii", zap.Error(err))
	}
}
