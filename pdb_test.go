/*
 * pdb_test.go, part of ballpit.
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

package ballpit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

//pdbRecord builds an 80-column ATOM/HETATM record.
func pdbRecord(tag, name string, x, y, z float64, element string) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		tag, 1, name, "ALA", "A", 1, x, y, z, 1.0, 0.0, element)
}

func TestPDBLine(Te *testing.T) {
	line := "ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N  "
	require.True(Te, isPDBAtom(line, false))
	rec, err := pdbLine(line)
	require.NoError(Te, err)
	assert.Equal(Te, CoordRecord{Symbol: "N", X: 11.104, Y: 6.134, Z: -6.504}, rec)
}

func TestPDBRecordHelper(Te *testing.T) {
	line := pdbRecord("ATOM", "CA", 1, 2, 3, "C")
	assert.Len(Te, line, 80)
	assert.Equal(Te, "   1.000", line[30:38])
	assert.Equal(Te, " C", line[76:78])
}

func TestPDBElementColumns(Te *testing.T) {
	cases := map[string]struct {
		line string
		want string
	}{
		"right justified": {pdbRecord("ATOM", "CA", 0, 0, 0, "C"), "C"},
		"left justified":  {pdbRecord("ATOM", "CA", 0, 0, 0, "C ")[:78], "C"},
		"left trimmed":    {pdbRecord("ATOM", "NA", 0, 0, 0, "N ")[:77], "N"},
		"right trimmed":   {pdbRecord("ATOM", "NA", 0, 0, 0, " N")[:77], "Na"},
		"lower case":      {pdbRecord("ATOM", "O", 0, 0, 0, "o"), "O"},
		"two letters":     {pdbRecord("HETATM", "CL", 0, 0, 0, "CL"), "Cl"},
		"no element":      {pdbRecord("ATOM", "OG1", 0, 0, 0, "")[:66], "O"},
		"blank element":   {pdbRecord("ATOM", "1HB", 0, 0, 0, ""), "H"},
		"just coords":     {pdbRecord("ATOM", "SG", 0, 0, 0, "")[:54], "S"},
	}
	for name, c := range cases {
		rec, err := pdbLine(c.line)
		if assert.NoError(Te, err, name) {
			assert.Equal(Te, c.want, rec.Symbol, name)
		}
	}
}

func TestPDBMalformed(Te *testing.T) {
	full := pdbRecord("ATOM", "CA", 1, 2, 3, "C")
	bad := []string{
		full[:53],
		full[:30] + "  1.x00 " + full[38:],
		pdbRecord("ATOM", "ZN", 0, 0, 0, "")[:60],
	}
	for _, line := range bad {
		_, err := pdbLine(line)
		assert.Error(Te, err, line)
	}
}

func TestIsPDBAtom(Te *testing.T) {
	assert.True(Te, isPDBAtom("ATOM  ", false))
	assert.False(Te, isPDBAtom("ATOM", false))
	assert.False(Te, isPDBAtom("ATOM1 ", false))
	assert.False(Te, isPDBAtom("atom  ", false))
	assert.False(Te, isPDBAtom("HETATM    1", false))
	assert.True(Te, isPDBAtom("HETATM    1", true))
	assert.False(Te, isPDBAtom("REMARK", true))
}

func TestSymbolFromName(Te *testing.T) {
	good := map[string]string{
		" CA ": "C",
		"HG21": "H",
		"2HB ": "H",
		" NZ ": "N",
		" P  ": "P",
		"NA  ": "Na",
		"MG  ": "Mg",
		"CL  ": "Cl",
	}
	for name, want := range good {
		s, err := symbolFromName(name)
		if assert.NoError(Te, err, name) {
			assert.Equal(Te, want, s, name)
		}
	}
	for _, name := range []string{"    ", "ZN  ", "123 "} {
		_, err := symbolFromName(name)
		assert.Error(Te, err, name)
	}
}

func TestPDBHetatm(Te *testing.T) {
	M, n := newTestModel()
	require.NoError(Te, M.ReadAtomsFromFile("testdata/ala.pdb", false))
	assert.Equal(Te, AtomCountTable{"C": 3, "N": 1, "O": 1}, M.Counts())
	assert.Equal(Te, 5, M.Len())
	assert.Equal(Te, Atom{Symbol: "N", X: 11.104, Y: 6.134, Z: -6.504}, M.Atom(0))

	require.NoError(Te, M.ReadAtomsFromFile("testdata/ala.pdb", true))
	assert.Equal(Te, AtomCountTable{"C": 3, "N": 1, "O": 2, "Na": 1}, M.Counts())
	assert.Equal(Te, 7, M.Len())
	last := M.Atom(6)
	assert.Equal(Te, "Na", last.Symbol)
	assert.Equal(Te, []float64{1.5, -2.25, 0.125}, []float64{last.X, last.Y, last.Z})
	assert.Empty(Te, *n)
}

func TestPDBTrimmedElement(Te *testing.T) {
	M, _ := newTestModel()
	//Heme nitrogen NA, element left justified and the line trimmed after it.
	line := pdbRecord("HETATM", "NA", 1, 2, 3, "N ")[:77]
	require.Len(Te, line, 77)
	require.NoError(Te, M.ReadAtoms(strings.NewReader(line+"\n"), PDB, true))
	assert.Equal(Te, AtomCountTable{"N": 1}, M.Counts())
}

func TestPDBSkipsMalformed(Te *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	n := new(notes)
	M := NewModel(WithNotifier(n), WithLogger(zap.New(core)))
	good := pdbRecord("ATOM", "N", 1, 1, 1, "N")
	short := pdbRecord("ATOM", "C", 2, 2, 2, "C")[:40]
	pdb := strings.Join([]string{"HEADER", good, short, "END"}, "\n")
	require.NoError(Te, M.ReadAtoms(strings.NewReader(pdb), PDB, false))
	assert.Equal(Te, AtomCountTable{"N": 1}, M.Counts(), "malformed records are not counted")

	entries := logs.FilterMessage("skipping PDB record").All()
	require.Len(Te, entries, 1)
	err, ok := entries[0].ContextMap()["error"]
	require.True(Te, ok)
	assert.Contains(Te, fmt.Sprint(err), ":3:")

	require.Error(Te, M.ReadAtoms(strings.NewReader(short), PDB, false))
	assert.Equal(Te, notes{msgInvalidStructure}, *n)
}

func TestPDBNoAtomRecords(Te *testing.T) {
	M, n := newTestModel()
	hetOnly := pdbRecord("HETATM", "O", 0, 0, 0, "O")
	err := M.ReadAtoms(strings.NewReader(hetOnly), PDB, false)
	assert.True(Te, errors.Is(err, ErrNoAtoms))
	assert.Equal(Te, notes{msgInvalidStructure}, *n)
}
