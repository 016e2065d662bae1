/*
 * fields_test.go, part of ballpit.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(Te *testing.T) {
	cases := map[string]string{
		"hE":    "He",
		"O":     "O",
		"o":     "O",
		"CL":    "Cl",
		"fe2+":  "Fe2+",
		"":      "",
		"\xe9L": "\xe9l",
		"l\xe9": "L\xe9",
		"ÉL":    "Él",
	}
	for in, want := range cases {
		assert.Equal(Te, want, Canonical(in), "Canonical(%q)", in)
	}
}

func TestFields(Te *testing.T) {
	assert.Empty(Te, Fields(""))
	assert.Empty(Te, Fields(" \t "))
	assert.Equal(Te, []string{"C", "0.0", "1", "-2e3"}, Fields("  C\t0.0  1 -2e3\r"))
}

func TestIsAtomLine(Te *testing.T) {
	assert.True(Te, IsAtomLine([]string{"C", "0.0", "0.0", "0.0"}))
	assert.True(Te, IsAtomLine([]string{"12", "1e-3", "-4", "+.5"}), "the symbol is not checked")
	assert.False(Te, IsAtomLine([]string{"C", "0.0", "0.0abc", "0.0"}))
	assert.False(Te, IsAtomLine([]string{"C", "0.0x", "0.0", "0.0"}))
	assert.False(Te, IsAtomLine([]string{"C", "0.0", "0.0"}))
	assert.False(Te, IsAtomLine([]string{"C", "0.0", "0.0", "0.0", "0.0"}))
	assert.False(Te, IsAtomLine([]string{"C", "1e999", "0.0", "0.0"}), "out of range")
	assert.False(Te, IsAtomLine(nil))
}

func TestAtomLine(Te *testing.T) {
	rec, ok := atomLine(Fields("h 1.5 -2 3e1"))
	assert.True(Te, ok)
	assert.Equal(Te, CoordRecord{Symbol: "h", X: 1.5, Y: -2, Z: 30}, rec)
}
