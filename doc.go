/*
 * doc.go, part of ballpit.
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

/*
Package ballpit reads molecular structures for the ballpit viewer.

It understands two structure formats: free-format XYZ files, where every
line of the form "symbol x y z" is an atom and everything else is ignored,
and fixed-column PDB files, of which only ATOM (and, optionally, HETATM)
records are used. Input files may be gzip or zstd compressed.

Radii and atomic numbers come from a separate, three-column definition
file ("Z symbol radius") loaded with Model.LoadRadii. The tables survive
structure imports, so the usual sequence is

	m := ballpit.NewModel(ballpit.WithNotifier(n))
	m.LoadRadii("radii.txt")
	if err := m.ReadAtomsFromFile("water.xyz", false); err != nil {
		//the user was already told through n
	}
	for _, at := range m.Atoms() {
		...
	}

A Model is not safe for concurrent use. Callers must not start an import
while another one is running on the same Model.

Only the first 18 elements of the periodic table are supported.
*/
package ballpit
