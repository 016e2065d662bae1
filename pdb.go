/*
 * pdb.go, part of ballpit.
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
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//Columns of an ATOM/HETATM record, 0-based and half-open.
const (
	pdbTagEnd       = 6
	pdbNameStart    = 12
	pdbNameEnd      = 16
	pdbXStart       = 30
	pdbCoordWidth   = 8
	pdbCoordEnd     = 54
	pdbElementStart = 76
	pdbElementEnd   = 78
)

//readPDB reads the ATOM records, and the HETATM ones if hetatm is true,
//from a PDB file. Records that can't be parsed are logged and skipped.
func (M *Model) readPDB(r io.Reader, name string, hetatm bool) error {
	scanner := newScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !isPDBAtom(line, hetatm) {
			continue
		}
		rec, err := pdbLine(line)
		if err != nil {
			M.log.Warn("skipping PDB record", zap.Error(newError(ErrMalformedRecord, name, lineno, err, false)))
			continue
		}
		M.addRecord(rec)
	}
	return scanner.Err()
}

//isPDBAtom returns true if line is an ATOM record or, if hetatm is true,
//a HETATM record.
func isPDBAtom(line string, hetatm bool) bool {
	if len(line) < pdbTagEnd {
		return false
	}
	tag := line[:pdbTagEnd]
	return tag == "ATOM  " || (hetatm && tag == "HETATM")
}

//pdbLine gets the element and coordinates from an ATOM or HETATM line.
//The element columns may be left or right justified, and the line may end
//right after a left justified element. If they are missing or blank, the
//element is guessed from the atom name.
func pdbLine(line string) (CoordRecord, error) {
	if len(line) < pdbCoordEnd {
		return CoordRecord{}, fmt.Errorf("record too short for coordinates (%d characters)", len(line))
	}
	var c [3]float64
	var err error
	for i := range c {
		start := pdbXStart + i*pdbCoordWidth
		field := strings.TrimSpace(line[start : start+pdbCoordWidth])
		if c[i], err = strconv.ParseFloat(field, 64); err != nil {
			return CoordRecord{}, err
		}
	}
	var symbol string
	if len(line) > pdbElementStart {
		symbol = strings.ReplaceAll(line[pdbElementStart:min(len(line), pdbElementEnd)], " ", "")
	}
	if symbol == "" {
		if symbol, err = symbolFromName(line[pdbNameStart:pdbNameEnd]); err != nil {
			return CoordRecord{}, err
		}
	}
	return CoordRecord{Symbol: Canonical(symbol), X: c[0], Y: c[1], Z: c[2]}, nil
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom
//name, for files that leave the element columns empty.
//It only deals with the supported elements that show up in biomolecules.
func symbolFromName(name string) (string, error) {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	if name == "" {
		return "", fmt.Errorf("no element and no atom name")
	}
	switch name {
	case "NA", "MG", "CL":
		return Canonical(name), nil
	}
	switch name[0] {
	case 'H', 'C', 'N', 'O', 'P', 'S':
		return name[:1], nil
	}
	return "", fmt.Errorf("couldn't guess element from atom name %q", name)
}
