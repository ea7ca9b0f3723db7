/*
 * gocoords.go, part of gobigdft.
 *
 * Copyright 2026 The gobigdft authors
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of F. Changes to the view
//are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Vec returns a copy of the ith vector of F as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//Norms returns the euclidean norm of each vector of F.
func (F *Matrix) Norms() []float64 {
	n := F.NVecs()
	ret := make([]float64, n)
	row := make([]float64, 3)
	for i := 0; i < n; i++ {
		mat.Row(row, i, F.Dense)
		ret[i] = floats.Norm(row, 2)
	}
	return ret
}

//MaxNorm returns the largest norm among the vectors of F, and its index.
func (F *Matrix) MaxNorm() (float64, int) {
	norms := F.Norms()
	if len(norms) == 0 {
		return 0, -1
	}
	i := floats.MaxIdx(norms)
	return norms[i], i
}

//Distance returns the euclidean distance between vectors i and j of F.
func (F *Matrix) Distance(i, j int) float64 {
	a := F.Vec(i)
	b := F.Vec(j)
	return floats.Distance(a[:], b[:], 2)
}

//EqualApprox returns true if F and A have the same shape and all their
//elements are within tol of each other.
func (F *Matrix) EqualApprox(A *Matrix, tol float64) bool {
	if F == nil || A == nil {
		return F == A
	}
	return mat.EqualApprox(F.Dense, A.Dense, tol)
}

//Scale multiplies every element of F by f, in place.
func (F *Matrix) Scale(f float64) {
	F.Dense.Scale(f, F.Dense)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		x := F.Vec(i)
		v = append(v, fmt.Sprintf("%12.6g %12.6g %12.6g", x[0], x[1], x[2]))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
