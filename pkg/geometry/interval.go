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
package geometry

import (
	"fmt"

	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// Interval provides a closed range lo..hi of the real line, viewed as a
// convex set of ambient dimension 1.  Intervals are the simplest concrete
// operand for the lazy combinators, and products of intervals describe
// axis-aligned boxes.
type Interval struct {
	lo float64
	hi float64
}

// NewInterval creates an interval representing a given range.
func NewInterval(lo float64, hi float64) Interval {
	// sanity check
	if lo > hi {
		panic("invalid interval")
	}
	//
	return Interval{lo, hi}
}

// Lo returns the lower bound of this interval.
func (p Interval) Lo() float64 {
	return p.lo
}

// Hi returns the upper bound of this interval.
func (p Interval) Hi() float64 {
	return p.hi
}

// Dimension returns the ambient dimension of this set, which is always 1.
func (p Interval) Dimension() uint {
	return 1
}

// SupportVector returns the upper bound for non-negative directions, and the
// lower bound otherwise.
func (p Interval) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := set.CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	if direction[0] >= 0 {
		return vector.Of(p.hi), nil
	}
	//
	return vector.Of(p.lo), nil
}

// Contains checks whether a given value lies within this interval.
func (p Interval) Contains(point vector.Vector) (bool, error) {
	if err := set.CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	return p.lo <= point[0] && point[0] <= p.hi, nil
}

func (p Interval) String() string {
	return fmt.Sprintf("(%g..%g)", p.lo, p.hi)
}
