// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package vector

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Vector represents a point or direction in some ambient dimension, laid out
// as a plain sequence of real coordinates.  The zero-length vector is the
// unique point of the zero-dimensional space.
type Vector []float64

// Zero constructs the zero vector of a given length.
func Zero(n uint) Vector {
	return make(Vector, n)
}

// Of constructs a vector directly from its coordinates.
func Of(coords ...float64) Vector {
	return Vector(coords)
}

// Len returns the number of coordinates in this vector.
func (p Vector) Len() uint {
	return uint(len(p))
}

// Clone this vector producing an identical but physically disjoint vector.
func (p Vector) Clone() Vector {
	return slices.Clone(p)
}

// Dot computes the inner product of this vector with another.  Note: this
// method will panic if the two vectors have different lengths.
func (p Vector) Dot(other Vector) float64 {
	var sum float64
	// sanity check
	if len(p) != len(other) {
		panic("vectors of differing length")
	}
	//
	for i := range p {
		sum += p[i] * other[i]
	}
	//
	return sum
}

// Norm computes the Euclidean length of this vector.
func (p Vector) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Equals returns true if the two vectors are coordinate-wise identical.
func (p Vector) Equals(other Vector) bool {
	return slices.Equal(p, other)
}

// EqualsWithin returns true if the two vectors have the same length and every
// pair of coordinates differs by at most epsilon.
func (p Vector) EqualsWithin(other Vector, epsilon float64) bool {
	if len(p) != len(other) {
		return false
	}
	//
	for i := range p {
		if math.Abs(p[i]-other[i]) > epsilon {
			return false
		}
	}
	//
	return true
}

func (p Vector) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, coord := range p {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(strconv.FormatFloat(coord, 'g', -1, 64))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
