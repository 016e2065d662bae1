/*
 * model.go, part of ballpit.
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
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Model holds the radius and atomic number tables, and the atoms of the
//last structure read. The tables are only changed by LoadRadii, ReadRadii
//and the Set methods, and survive structure imports. The atoms, counts and
//coordinate records are rebuilt from scratch by every import.
type Model struct {
	radii  RadiusTable
	elemZ  AtomicNumberTable
	counts AtomCountTable
	coords []CoordRecord
	atoms  []Atom
	notify Notifier
	log    *zap.Logger
}

//Option configures a Model.
type Option func(*Model)

//WithNotifier sets the Notifier used to tell the user about problems.
func WithNotifier(n Notifier) Option {
	return func(M *Model) {
		if n != nil {
			M.notify = n
		}
	}
}

//WithLogger sets the logger for diagnostics that are not meant for the user.
func WithLogger(l *zap.Logger) Option {
	return func(M *Model) {
		if l != nil {
			M.log = l
		}
	}
}

//NewModel returns an empty Model. Unless set with WithNotifier,
//notifications go to a LogNotifier.
func NewModel(opts ...Option) *Model {
	M := &Model{
		radii:  make(RadiusTable),
		elemZ:  make(AtomicNumberTable),
		counts: make(AtomCountTable),
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(M)
	}
	if M.notify == nil {
		M.notify = LogNotifier{Log: M.log}
	}
	return M
}

//Len returns the number of atoms in the model.
func (M *Model) Len() int {
	return len(M.atoms)
}

//Atom returns the atom with index i. It panics if i is out of range.
func (M *Model) Atom(i int) Atom {
	return M.atoms[i]
}

//Atoms returns a copy of the atoms read in the last import.
func (M *Model) Atoms() []Atom {
	ret := make([]Atom, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

//Records returns a copy of the coordinate records read in the last import.
func (M *Model) Records() []CoordRecord {
	ret := make([]CoordRecord, len(M.coords))
	copy(ret, M.coords)
	return ret
}

//Counts returns a copy of the number of atoms per symbol in the last import.
func (M *Model) Counts() AtomCountTable {
	ret := make(AtomCountTable, len(M.counts))
	for k, v := range M.counts {
		ret[k] = v
	}
	return ret
}

//Summary returns one "N × Symbol" string per element in the last import,
//sorted by symbol.
func (M *Model) Summary() []string {
	symbols := make([]string, 0, len(M.counts))
	for k := range M.counts {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	ret := make([]string, len(symbols))
	for i, s := range symbols {
		ret[i] = fmt.Sprintf("%d × %s", M.counts[s], s)
	}
	return ret
}

//Radius returns the radius for symbol, or 0 if none is defined.
//symbol is looked up exactly as it appeared in the radii file.
func (M *Model) Radius(symbol string) float64 {
	return M.radii[symbol]
}

//AtomicNumber returns the atomic number for symbol and true. If there is no
//number for symbol, or it was invalidated by a structure import, it returns
//0 and false.
func (M *Model) AtomicNumber(symbol string) (uint, bool) {
	e, ok := M.elemZ[symbol]
	if !ok || e.Ambiguous {
		return 0, false
	}
	return e.Z, true
}

//Radii returns a copy of the radius table.
func (M *Model) Radii() RadiusTable {
	ret := make(RadiusTable, len(M.radii))
	for k, v := range M.radii {
		ret[k] = v
	}
	return ret
}

//AtomicNumbers returns a copy of the atomic number table.
func (M *Model) AtomicNumbers() AtomicNumberTable {
	ret := make(AtomicNumberTable, len(M.elemZ))
	for k, v := range M.elemZ {
		ret[k] = v
	}
	return ret
}

//SetRadius sets the radius for symbol by hand, and updates the atoms.
func (M *Model) SetRadius(symbol string, r float64) {
	M.radii[symbol] = r
	M.build()
}

//SetAtomicNumber sets the atomic number for symbol by hand, which also
//resolves an ambiguous entry, and updates the atoms.
func (M *Model) SetAtomicNumber(symbol string, z uint) {
	M.elemZ[symbol] = ZEntry{Z: z}
	M.build()
}

//clearStructure empties everything that belongs to a single import.
func (M *Model) clearStructure() {
	M.counts = make(AtomCountTable)
	M.coords = M.coords[:0]
	M.atoms = nil
}

//addRecord counts rec and appends it to the coordinate records.
//If the atomic number table already has an entry for the symbol, the
//entry becomes ambiguous. The user is not told about it.
func (M *Model) addRecord(rec CoordRecord) {
	M.counts[rec.Symbol]++
	if e, ok := M.elemZ[rec.Symbol]; ok && !e.Ambiguous {
		M.log.Debug("atomic number invalidated by structure", zap.String("symbol", rec.Symbol), zap.Uint("z", e.Z))
		e.Ambiguous = true
		M.elemZ[rec.Symbol] = e
	}
	M.coords = append(M.coords, rec)
}

//build makes the atoms from the coordinate records and the current tables.
func (M *Model) build() {
	if len(M.coords) == 0 {
		M.atoms = nil
		return
	}
	M.atoms = make([]Atom, len(M.coords))
	for i, c := range M.coords {
		M.atoms[i] = Atom{
			Symbol: c.Symbol,
			X:      c.X,
			Y:      c.Y,
			Z:      c.Z,
			Number: M.elemZ[c.Symbol].Number(),
			Radius: M.radii[c.Symbol],
		}
	}
}

//Coords returns an Nx3 matrix with the positions of the atoms in A,
//or nil if A has no atoms.
func Coords(A Atomer) *mat.Dense {
	n := A.Len()
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		at := A.Atom(i)
		data = append(data, at.X, at.Y, at.Z)
	}
	return mat.NewDense(n, 3, data)
}

//Coords returns an Nx3 matrix with the positions of the atoms in the model,
//or nil if there are no atoms.
func (M *Model) Coords() *mat.Dense {
	return Coords(M)
}

//Centroid returns the geometric center of the atoms in the model.
//It is the origin for an empty model.
func (M *Model) Centroid() (x, y, z float64) {
	c := M.Coords()
	if c == nil {
		return 0, 0, 0
	}
	n := float64(M.Len())
	var ret [3]float64
	col := make([]float64, M.Len())
	for j := range ret {
		ret[j] = floats.Sum(mat.Col(col, j, c)) / n
	}
	return ret[0], ret[1], ret[2]
}
