/*
 * main_test.go, part of ballpit.
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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmera/ballpit/internal/config"
)

const (
	waterFile = "../../testdata/water.xyz"
	radiiFile = "../../testdata/radii.txt"
)

//run executes the command line args and returns what was written to
//the standard output and error.
func run(Te *testing.T, args ...string) (string, string, error) {
	Te.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestElements(Te *testing.T) {
	out, _, err := run(Te, "elements")
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 18)
	assert.Equal(Te, "  1 H   0.310", lines[0])
	assert.Equal(Te, " 18 Ar  1.060", lines[17])
}

func TestImport(Te *testing.T) {
	out, errOut, err := run(Te, "import", "--radii", radiiFile, waterFile)
	require.NoError(Te, err)
	assert.Empty(Te, errOut)
	assert.Equal(Te, "2 × H\n1 × O\n3 atoms, centroid 0.000 0.000 -0.274\n", out)
}

func TestImportAtoms(Te *testing.T) {
	out, _, err := run(Te, "import", "--atoms", "-r", radiiFile, waterFile)
	require.NoError(Te, err)
	//Every symbol in the structure is also in the radii file, so no
	//atomic number can be trusted.
	assert.Contains(Te, out, "O    ?    0.000    0.000    0.117  0.660\n")
	assert.Equal(Te, 3, strings.Count(out, " ? "))
}

func TestImportPlot(Te *testing.T) {
	plot := filepath.Join(Te.TempDir(), "water.png")
	_, _, err := run(Te, "import", "--plot", plot, waterFile)
	require.NoError(Te, err)
	info, err := os.Stat(plot)
	require.NoError(Te, err)
	assert.NotZero(Te, info.Size())
}

func TestImportErrors(Te *testing.T) {
	mol2 := filepath.Join(Te.TempDir(), "water.mol2")
	require.NoError(Te, os.WriteFile(mol2, []byte("O 0 0 0\n"), 0o644))
	_, errOut, err := run(Te, "import", mol2)
	assert.Error(Te, err)
	assert.Equal(Te, "ballpit: Invalid structure file format!\n", errOut)

	_, errOut, err = run(Te, "import", "-r", filepath.Join(Te.TempDir(), "none.txt"), waterFile)
	require.NoError(Te, err, "missing radii are not fatal")
	assert.Equal(Te, "ballpit: Invalid radii definition file!\nballpit: Please select a valid file or set radii manually.\n", errOut)

	_, _, err = run(Te, "import")
	assert.Error(Te, err)
}

func TestRadii(Te *testing.T) {
	_, _, err := run(Te, "radii")
	assert.Error(Te, err)

	out, _, err := run(Te, "radii", "--radii", radiiFile)
	require.NoError(Te, err)
	assert.Equal(Te, "  6 C   0.760\n  1 H   0.310\n  7 N   0.710\n 11 Na  1.660\n  8 O   0.660\n", out)

	out, _, err = run(Te, "radii", "--default-radii")
	require.NoError(Te, err)
	assert.Len(Te, strings.Split(strings.TrimSpace(out), "\n"), 18)
	assert.Contains(Te, out, " 17 Cl  1.020\n")
}

func TestConfigFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "ballpit.yaml")
	require.NoError(Te, os.WriteFile(path, []byte("default_radii: true\nlog:\n  format: json\n"), 0o644))
	out, _, err := run(Te, "radii", "--config", path)
	require.NoError(Te, err)
	assert.Contains(Te, out, "  8 O   0.660\n")

	_, _, err = run(Te, "elements", "--config", filepath.Join(Te.TempDir(), "none.yaml"))
	assert.Error(Te, err)
}

func TestWatchStops(Te *testing.T) {
	a := &app{v: config.New(), log: zap.NewNop()}
	a.v.Set("radii", radiiFile)
	a.v.Set("log.level", "error")
	require.NoError(Te, a.init())
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(Te, a.watch(ctx, cmd, waterFile))
	assert.True(Te, strings.HasPrefix(out.String(), "2 × H\n1 × O\n3 atoms"))
	assert.Empty(Te, errOut.String())
}
