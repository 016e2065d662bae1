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

package ballpit

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	msgInvalidRadii = "Invalid radii definition file!"
	msgRadiiHint    = "Please select a valid file or set radii manually."
)

//LoadRadii replaces the radius and atomic number tables with the ones in
//the file name. Each useful line has the form "Z symbol radius", other
//lines are ignored. Symbols are stored exactly as they are in the file.
//
//If no radius could be read, including when the file can't be opened,
//the user is notified and an error wrapping ErrEmptyRadii is returned.
//The tables are left empty, and the Model can still be used.
func (M *Model) LoadRadii(name string) error {
	S, err := openSource(name)
	if err != nil {
		M.radii = make(RadiusTable)
		M.elemZ = make(AtomicNumberTable)
		M.notifyEmptyRadii()
		return errDecorate(newError(ErrEmptyRadii, name, 0, err, false), "LoadRadii")
	}
	defer S.Close()
	return errDecorate(M.readRadii(S, name), "LoadRadii")
}

//ReadRadii is like LoadRadii, but reads the definitions from r.
func (M *Model) ReadRadii(r io.Reader) error {
	return errDecorate(M.readRadii(r, ""), "ReadRadii")
}

func (M *Model) readRadii(r io.Reader, name string) error {
	M.radii = make(RadiusTable)
	M.elemZ = make(AtomicNumberTable)
	scanner := newScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		f := Fields(scanner.Text())
		if len(f) != 3 {
			continue
		}
		z, err := leadingUint(f[0])
		if err != nil {
			M.log.Warn("skipping radii line", zap.Error(newError(ErrMalformedRecord, name, lineno, err, false)))
			continue
		}
		rad, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			M.log.Warn("skipping radii line", zap.Error(newError(ErrMalformedRecord, name, lineno, err, false)))
			continue
		}
		M.radii[f[1]] = rad
		M.elemZ[f[1]] = ZEntry{Z: uint(z)}
		if p := periodicIndex(f[1]); p != 0 && uint64(p) != z {
			M.log.Warn("atomic number differs from periodic table", zap.String("symbol", f[1]), zap.Uint64("file", z), zap.Uint("table", p))
		}
	}
	var cause error
	if err := scanner.Err(); err != nil {
		cause = err
		M.log.Error("reading radii definitions", zap.String("file", name), zap.Error(err))
	}
	if len(M.radii) == 0 {
		M.notifyEmptyRadii()
		return newError(ErrEmptyRadii, name, 0, cause, false)
	}
	M.log.Info("radii loaded", zap.String("file", name), zap.Int("definitions", len(M.radii)))
	return nil
}

func (M *Model) notifyEmptyRadii() {
	M.notify.NotifyUser(msgInvalidRadii)
	M.notify.NotifyUser(msgRadiiHint)
}

//leadingUint parses the digits at the start of s, after an optional "+",
//and ignores whatever follows them, so "8", "+8" and "8.0" all give 8.
func leadingUint(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return strconv.ParseUint(s[:end], 10, 0)
}
