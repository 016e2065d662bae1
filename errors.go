/*
 * errors.go, part of ballpit.
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
)

//Kinds of errors. Use errors.Is to check for them.
var (
	ErrUnsupportedFormat = errors.New("invalid structure file format")
	ErrNoAtoms           = errors.New("invalid structure file")
	ErrEmptyRadii        = errors.New("invalid radii definition file")
	ErrMalformedRecord   = errors.New("malformed record")
)

//Error is the error type returned by this package. It carries the kind of
//error, the file and line involved, if known, and the underlying cause.
type Error struct {
	kind     error
	filename string
	line     int //0 means not known
	cause    error
	deco     []string
	critical bool
}

func newError(kind error, filename string, line int, cause error, critical bool) *Error {
	return &Error{kind: kind, filename: filename, line: line, cause: cause, critical: critical}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString(err.kind.Error())
	if err.filename != "" {
		b.WriteString(": ")
		b.WriteString(err.filename)
	}
	if err.line > 0 {
		fmt.Fprintf(&b, ":%d", err.line)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

//Unwrap gives both the kind and the cause of the error to errors.Is and errors.As.
func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//Decorate adds dec to the decoration slice of the error, and returns the
//resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the operation that produced the error could not be completed.
func (err *Error) Critical() bool { return err.critical }

//FileName returns the name of the file involved in the error, if any.
func (err *Error) FileName() string { return err.filename }

//Line returns the line number involved in the error, or 0.
func (err *Error) Line() int { return err.line }

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
