/*
 * watch.go, part of ballpit.
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
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Read a structure again every time it, or the radii file, changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, cmd, args[0])
		},
	}
}

//watch reads structure, and reads it again whenever it or the radii file
//are written, until ctx is done. Everything happens in this goroutine, so
//two imports never overlap.
func (a *app) watch(ctx context.Context, cmd *cobra.Command, structure string) error {
	structPath, err := filepath.Abs(structure)
	if err != nil {
		return err
	}
	var radiiPath string
	if a.cfg.Radii != "" {
		if radiiPath, err = filepath.Abs(a.cfg.Radii); err != nil {
			return err
		}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	//Many editors replace a file instead of writing to it, which would
	//end a watch on the file itself, so we watch the directories.
	dirs := map[string]bool{filepath.Dir(structPath): true}
	if radiiPath != "" {
		dirs[filepath.Dir(radiiPath)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return err
		}
	}

	M := a.model(cmd)
	out := cmd.OutOrStdout()
	reload := func(radii bool) {
		if radii {
			a.loadRadii(M)
		}
		if err := M.ReadAtomsFromFile(structPath, a.cfg.Hetatm); err != nil {
			a.log.Warn("structure not read", zap.Error(err))
			return
		}
		printSummary(out, M)
	}
	reload(true)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			switch filepath.Clean(ev.Name) {
			case radiiPath:
				a.log.Info("radii file changed", zap.String("file", ev.Name))
				reload(true)
			case structPath:
				a.log.Info("structure file changed", zap.String("file", ev.Name))
				reload(false)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watching files", zap.Error(err))
		}
	}
}
