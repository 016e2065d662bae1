/*
 * atom.go, part of ballpit.
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

//Atom is a fully resolved atom from a structure file.
//Number is 0 when the atomic number could not be resolved, Radius is 0
//when no radius is known for the symbol.
type Atom struct {
	Symbol  string
	X, Y, Z float64
	Number  uint
	Radius  float64
}

//Resolved returns true if the atom has a valid atomic number.
func (A Atom) Resolved() bool {
	return A.Number != 0
}

//CoordRecord is the symbol and position of an atom, as read from the
//structure file, before radii and atomic numbers are assigned.
type CoordRecord struct {
	Symbol  string
	X, Y, Z float64
}

//ZEntry is an atomic number as given by the radii definition file.
//An Ambiguous entry has been invalidated and needs to be set by hand.
type ZEntry struct {
	Z         uint
	Ambiguous bool
}

//Number returns the atomic number of the entry, or 0 if it is ambiguous.
func (E ZEntry) Number() uint {
	if E.Ambiguous {
		return 0
	}
	return E.Z
}

//RadiusTable maps a symbol to a radius, in Angstrom.
type RadiusTable map[string]float64

//AtomicNumberTable maps a symbol to its atomic number entry.
type AtomicNumberTable map[string]ZEntry

//AtomCountTable maps a canonical symbol to the number of times it appears
//in a structure.
type AtomCountTable map[string]int
