/*
 * xyz.go, part of ballpit.
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

import "io"

//readXYZ reads a free-format coordinate file. Every line with a symbol and
//three numbers is an atom; the atom count, the comment and anything else
//is skipped without complaint.
func (M *Model) readXYZ(r io.Reader) error {
	scanner := newScanner(r)
	for scanner.Scan() {
		rec, ok := atomLine(Fields(scanner.Text()))
		if !ok {
			continue
		}
		rec.Symbol = Canonical(rec.Symbol)
		M.addRecord(rec)
	}
	return scanner.Err()
}
