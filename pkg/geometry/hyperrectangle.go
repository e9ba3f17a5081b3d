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
	"math"

	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// Hyperrectangle provides an axis-aligned box described by its center point
// and a per-coordinate radius.  Its ambient dimension is the length of the
// center vector.
type Hyperrectangle struct {
	center vector.Vector
	radius vector.Vector
}

// NewHyperrectangle constructs a box from a center point and per-coordinate
// radius.  The two vectors must have the same length and every radius must
// be non-negative.
func NewHyperrectangle(center vector.Vector, radius vector.Vector) (Hyperrectangle, error) {
	if center.Len() != radius.Len() {
		return Hyperrectangle{}, fmt.Errorf(
			"center has length %d but radius has length %d", center.Len(), radius.Len())
	}
	//
	for _, r := range radius {
		if r < 0 {
			return Hyperrectangle{}, fmt.Errorf("negative radius %g", r)
		}
	}
	//
	return Hyperrectangle{center, radius}, nil
}

// Dimension returns the ambient dimension of this box.
func (p Hyperrectangle) Dimension() uint {
	return p.center.Len()
}

// SupportVector returns the corner of this box whose offset from the center
// is sign-matched with the given direction, taking the positive corner on
// zero coordinates.
func (p Hyperrectangle) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := set.CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	corner := p.center.Clone()
	//
	for i := range corner {
		if direction[i] >= 0 {
			corner[i] += p.radius[i]
		} else {
			corner[i] -= p.radius[i]
		}
	}
	//
	return corner, nil
}

// Contains checks whether a given point lies within this box, that is within
// the per-coordinate radius of the center in every coordinate.
func (p Hyperrectangle) Contains(point vector.Vector) (bool, error) {
	if err := set.CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	for i := range point {
		if math.Abs(point[i]-p.center[i]) > p.radius[i] {
			return false, nil
		}
	}
	//
	return true, nil
}
