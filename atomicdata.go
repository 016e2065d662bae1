/*
 * atomicdata.go, part of ballpit.
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
	"strings"

	"go.uber.org/zap"
)

//PeriodicTable holds the supported element symbols. The atomic number of
//each element is its position in the array plus one.
var PeriodicTable = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
}

//PeriodicNumber returns the atomic number of the element with the given
//canonical symbol, or 0 if the symbol is not one of the supported elements.
//The failure is reported to the global zap logger.
func PeriodicNumber(symbol string) uint {
	z := periodicIndex(symbol)
	if z == 0 {
		zap.L().Warn("symbol not in periodic table", zap.String("symbol", symbol))
	}
	return z
}

//periodicIndex is PeriodicNumber without the logging.
func periodicIndex(symbol string) uint {
	for i, s := range PeriodicTable {
		if s == symbol {
			return uint(i + 1)
		}
	}
	return 0
}

//PeriodicSymbol returns the symbol for the atomic number z and true,
//or the empty string and false if z is out of the supported range.
func PeriodicSymbol(z uint) (string, bool) {
	if z == 0 || z > uint(len(PeriodicTable)) {
		return "", false
	}
	return PeriodicTable[z-1], true
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
}

//CovalentRadii returns a copy of the built-in covalent radii for the
//supported elements.
func CovalentRadii() map[string]float64 {
	ret := make(map[string]float64, len(symbolCovrad))
	for k, v := range symbolCovrad {
		ret[k] = v
	}
	return ret
}

//CovalentRadiiReader returns the built-in covalent radii in the format of a
//radii definition file, so they can be fed to Model.ReadRadii.
func CovalentRadiiReader() io.Reader {
	var b strings.Builder
	for i, s := range PeriodicTable {
		fmt.Fprintf(&b, "%d %s %.2f\n", i+1, s, symbolCovrad[s])
	}
	return strings.NewReader(b.String())
}
