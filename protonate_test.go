/*
 * protonate_test.go, part of gowater.
 *
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 */

package water

import (
	"fmt"
	"math/rand"
	"testing"

	v3 "github.com/rmera/gowater/v3"
)

//newFrame builds a frame from species tags and a flat coordinate list, with
//ids numbered from 1, the way a trajectory reader would.
func newFrame(symbols []string, coords []float64, cell *Cell) *Frame {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &Atom{Symbol: s, ID: i + 1}
	}
	return &Frame{Atoms: atoms, Coords: m, Cell: cell, Comment: "Properties=species:S:1:pos:R:3:id:I:1", N: len(symbols)}
}

//testFrame has, without periodicity, one water, one hydroxide, one bare
//oxygen and one xenon.
func testFrame(cell *Cell) *Frame {
	symbols := []string{Oxygen, Hydrogen, Hydrogen, Oxygen, Hydrogen, Oxygen, Xenon}
	coords := []float64{
		0, 0, 0,
		0.96, 0, 0,
		0, 0.98, 0,
		5, 5, 5,
		5, 5, 5.97,
		8, 8, 8,
		2, 7, 2,
	}
	return newFrame(symbols, coords, cell)
}

func TestStateFromCount(Te *testing.T) {
	want := map[int]State{0: Other, 1: Hydroxide, 2: Water, 3: Hydronium, 4: Other, 5: Other, 6: Other, 7: Other}
	for n, s := range want {
		if got := StateFromCount(n); got != s {
			Te.Errorf("StateFromCount(%d): got %v, want %v", n, got, s)
		}
	}
}

func TestAssignStates(Te *testing.T) {
	f := testFrame(nil)
	t, err := AssignStates(f.Coords, f, f.Cell, DefaultCutoff)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("populations found:", t)
	if t.Water != 1 || t.Hydroxide != 1 || t.Other != 1 || t.Hydronium != 0 {
		Te.Errorf("wrong tally: %v", t)
	}
	wantstates := []State{Water, Unknown, Unknown, Hydroxide, Unknown, Other, Unknown}
	for i, s := range wantstates {
		if f.Atom(i).State != s {
			Te.Errorf("atom %d (%s): got state %v, want %v", i, f.Atom(i).Symbol, f.Atom(i).State, s)
		}
	}
	if t.Sum() != 3 {
		Te.Errorf("3 oxygens in the frame, %d tallied", t.Sum())
	}
}

//An O-H pair separated by more than the cutoff in plain distance, but less
//across the periodic boundary, counts as bonded only when the cell is used.
func TestAssignStatesPBC(Te *testing.T) {
	symbols := []string{Oxygen, Hydrogen, Hydrogen}
	coords := []float64{
		0.2, 0, 0,
		3.9, 0, 0, //0.3 away from the oxygen, across the boundary of a 4 A cell
		0.2, 0.9, 0,
	}
	cell, err := NewCell(4, 10, 10)
	if err != nil {
		Te.Fatal(err)
	}
	f := newFrame(symbols, coords, cell)
	t, err := AssignStates(f.Coords, f, f.Cell, DefaultCutoff)
	if err != nil {
		Te.Fatal(err)
	}
	if f.Atom(0).State != Water || t.Water != 1 {
		Te.Errorf("with PBC the oxygen should be a water, got %v (%v)", f.Atom(0).State, t)
	}
	//the same frame without the cell misses the wrapped hydrogen
	f2 := newFrame(symbols, coords, nil)
	t2, err := AssignStates(f2.Coords, f2, f2.Cell, DefaultCutoff)
	if err != nil {
		Te.Fatal(err)
	}
	if f2.Atom(0).State != Hydroxide || t2.Hydroxide != 1 {
		Te.Errorf("without PBC the oxygen should be a hydroxide, got %v (%v)", f2.Atom(0).State, t2)
	}
	fmt.Println("TestAssignStatesPBC done", t, t2)
}

//A hydrogen at exactly the cutoff counts as bonded.
func TestCutoffTie(Te *testing.T) {
	symbols := []string{Oxygen, Hydrogen, Hydrogen}
	coords := []float64{
		0, 0, 0,
		1.0, 0, 0, //exactly at the cutoff given below
		0, 0.5, 0,
	}
	f := newFrame(symbols, coords, nil)
	if _, err := AssignStates(f.Coords, f, nil, 1.0); err != nil {
		Te.Fatal(err)
	}
	if f.Atom(0).State != Water {
		Te.Errorf("a hydrogen exactly at the cutoff should count: got %v, want %v", f.Atom(0).State, Water)
	}
}

func TestCountH(Te *testing.T) {
	f := testFrame(nil)
	temp := v3.Zeros(1)
	wanted := []int{2, 0, 0, 1, 0, 0, 0}
	for i, w := range wanted {
		if got := CountH(f.Coords, f, i, f.Cell, DefaultCutoff, temp); got != w {
			Te.Errorf("CountH(%d): got %d, want %d", i, got, w)
		}
	}
	//a hydrogen doesn't count itself even if asked about
	if got := CountH(f.Coords, f, 1, nil, 100); got != 2 {
		Te.Errorf("a hydrogen counted itself: got %d, want 2", got)
	}
}

func TestAssignStatesBadData(Te *testing.T) {
	f := testFrame(nil)
	if _, err := AssignStates(nil, f, nil, DefaultCutoff); err == nil {
		Te.Error("nil coordinates should be an error")
	}
	if _, err := AssignStates(f.Coords, nil, nil, DefaultCutoff); err == nil {
		Te.Error("nil topology should be an error")
	}
	short := v3.Zeros(2)
	if _, err := AssignStates(short, f, nil, DefaultCutoff); err == nil {
		Te.Error("mismatched coordinates/atoms should be an error")
	}
	//a non-positive cutoff falls back to the default instead of failing
	t, err := AssignStates(f.Coords, f, nil, -1)
	if err != nil {
		Te.Error(err)
	}
	if t.Water != 1 {
		Te.Errorf("default-cutoff fallback: got %v", t)
	}
}

//a box of random waters, to exercise the classifier at a realistic size.
func randomWaters(n int, l float64) *Frame {
	r := rand.New(rand.NewSource(42))
	symbols := make([]string, 0, 3*n)
	coords := make([]float64, 0, 9*n)
	for i := 0; i < n; i++ {
		x, y, z := r.Float64()*l, r.Float64()*l, r.Float64()*l
		symbols = append(symbols, Oxygen, Hydrogen, Hydrogen)
		coords = append(coords, x, y, z, x+0.96, y, z, x, y+0.97, z)
	}
	cell, err := NewCell(l, l, l)
	if err != nil {
		panic(err.Error())
	}
	return newFrame(symbols, coords, cell)
}

func BenchmarkAssignStates(B *testing.B) {
	f := randomWaters(500, 25)
	B.ResetTimer()
	for i := 0; i < B.N; i++ {
		if _, err := AssignStates(f.Coords, f, f.Cell, DefaultCutoff); err != nil {
			B.Fatal(err)
		}
	}
}
