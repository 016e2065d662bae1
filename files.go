/*
 * files.go, part of ballpit.
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
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	msgInvalidFormat    = "Invalid structure file format!"
	msgInvalidStructure = "Invalid structure file!"
)

//Format is a structure file format.
type Format int

const (
	UnknownFormat Format = iota
	XYZ
	PDB
)

func (F Format) String() string {
	switch F {
	case XYZ:
		return "xyz"
	case PDB:
		return "pdb"
	}
	return "unknown"
}

//FormatFromName guesses the format of a structure file from the extension
//of its name, ignoring case.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return XYZ
	case ".pdb":
		return PDB
	}
	return UnknownFormat
}

//ReadAtomsFromFile replaces the atoms in the model with the ones in the
//structure file name. The format is taken from the extension, .xyz or .pdb.
//HETATM records in PDB files are only read if hetatm is true.
//
//The atoms and counts of the previous import are always discarded. If the
//format is not supported, or no atom could be read, the user is notified,
//the model is left without atoms and the error returned wraps
//ErrUnsupportedFormat or ErrNoAtoms, respectively.
func (M *Model) ReadAtomsFromFile(name string, hetatm bool) error {
	M.clearStructure()
	format := FormatFromName(name)
	if format == UnknownFormat {
		M.notify.NotifyUser(msgInvalidFormat)
		return errDecorate(newError(ErrUnsupportedFormat, name, 0, nil, true), "ReadAtomsFromFile")
	}
	S, err := openSource(name)
	if err != nil {
		M.notify.NotifyUser(msgInvalidStructure)
		return errDecorate(newError(ErrNoAtoms, name, 0, err, true), "ReadAtomsFromFile")
	}
	defer S.Close()
	return errDecorate(M.readAtoms(S, name, format, hetatm), "ReadAtomsFromFile")
}

//ReadAtoms is like ReadAtomsFromFile, but reads a structure in the given
//format from r.
func (M *Model) ReadAtoms(r io.Reader, format Format, hetatm bool) error {
	M.clearStructure()
	if format != XYZ && format != PDB {
		M.notify.NotifyUser(msgInvalidFormat)
		return errDecorate(newError(ErrUnsupportedFormat, "", 0, nil, true), "ReadAtoms")
	}
	return errDecorate(M.readAtoms(r, "", format, hetatm), "ReadAtoms")
}

func (M *Model) readAtoms(r io.Reader, name string, format Format, hetatm bool) error {
	var err error
	if format == XYZ {
		err = M.readXYZ(r)
	} else {
		err = M.readPDB(r, name, hetatm)
	}
	if err != nil {
		M.clearStructure()
		M.notify.NotifyUser(msgInvalidStructure)
		return newError(ErrNoAtoms, name, 0, err, true)
	}
	if len(M.coords) == 0 {
		M.notify.NotifyUser(msgInvalidStructure)
		return newError(ErrNoAtoms, name, 0, nil, true)
	}
	M.build()
	M.log.Info("structure read", zap.String("file", name), zap.Stringer("format", format),
		zap.Int("atoms", len(M.atoms)), zap.Int("elements", len(M.counts)))
	return nil
}
