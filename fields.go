/*
 * fields.go, part of ballpit.
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
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

//Fields splits a line in whitespace-separated tokens.
//An empty or blank line gives an empty slice.
func Fields(line string) []string {
	return strings.Fields(line)
}

//Canonical returns s with its first character in upper case and the rest
//in lower case, so "hE" becomes "He". Digits and charge signs are kept,
//"FE2+" becomes "Fe2+". Bytes that are not valid UTF-8 are kept as they are.
func Canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteByte(s[i]) //not UTF-8, left alone
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}

//IsAtomLine returns true if fields is a free-format atom record: exactly
//four tokens, the last three of which are complete floating point numbers.
//"0.0x" is not a number. The first token is not checked.
func IsAtomLine(fields []string) bool {
	_, ok := atomLine(fields)
	return ok
}

//atomLine parses fields as a free-format atom record. The symbol is
//returned as it is in the line.
func atomLine(fields []string) (CoordRecord, bool) {
	if len(fields) != 4 {
		return CoordRecord{}, false
	}
	var c [3]float64
	var err error
	for i := range c {
		if c[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
			return CoordRecord{}, false
		}
	}
	return CoordRecord{Symbol: fields[0], X: c[0], Y: c[1], Z: c[2]}, true
}

//newScanner returns a line scanner for r that accepts lines of up to 1 MiB.
func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}
