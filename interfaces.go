/*
 * interfaces.go, part of ballpit.
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

import "go.uber.org/zap"

//Notifier is anything that can show a message to the user, a status bar,
//a dialog or a terminal. Every warning meant for the user goes through it.
type Notifier interface {
	NotifyUser(message string)
}

//NotifierFunc lets an ordinary function be used as a Notifier.
type NotifierFunc func(message string)

//NotifyUser calls f(message).
func (f NotifierFunc) NotifyUser(message string) { f(message) }

//LogNotifier sends user notifications to a zap logger, at warn level.
//A nil Log means the global zap logger. It is the default Notifier.
type LogNotifier struct {
	Log *zap.Logger
}

//NotifyUser logs the message.
func (L LogNotifier) NotifyUser(message string) {
	l := L.Log
	if l == nil {
		l = zap.L()
	}
	l.Warn(message, zap.Bool("user", true))
}

//Atomer is the basic interface for a set of atoms.
type Atomer interface {
	//Atom returns the Atom with index i. Should panic if
	//out of range.
	Atom(i int) Atom

	Len() int
}

//Counter can give the number of atoms of each element in a structure.
type Counter interface {
	Counts() AtomCountTable
}
