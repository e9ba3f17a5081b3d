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
package set

import (
	"errors"
	"fmt"

	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// ErrDimensionMismatch is returned when a direction or point passed to a set
// operation does not have exactly as many coordinates as the set's ambient
// dimension.  The vector is never truncated or padded to fit.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrVoidSet is returned when a support vector is requested from a void set,
// since an empty set contains no maximising point in any direction.
var ErrVoidSet = errors.New("void set has no support vector")

// LazySet provides an abstraction over convex sets which defers all geometric
// computation to the point where a query is actually issued.  Both concrete
// sets (intervals, balls, etc) and combinators over other lazy sets (such as
// cartesian products) implement this interface, allowing arbitrary nesting.
// Implementations are expected to treat their ambient dimension as exact:
// queries with a vector of any other length must fail with an error wrapping
// ErrDimensionMismatch rather than coercing the vector.
type LazySet interface {
	// Dimension returns the ambient dimension of this set, that is the number
	// of coordinates needed to describe one of its points.
	Dimension() uint
	// SupportVector returns a point of this set which maximises the inner
	// product with the given direction.  The direction must have exactly
	// Dimension() coordinates.  Behaviour on the zero direction is determined
	// by the underlying set.
	SupportVector(direction vector.Vector) (vector.Vector, error)
	// Contains determines whether a given point lies within this set.  The
	// point must have exactly Dimension() coordinates.
	Contains(point vector.Vector) (bool, error)
}

// CheckDimension confirms a given vector has exactly as many coordinates as
// the ambient dimension of a given set, returning a descriptive error
// wrapping ErrDimensionMismatch otherwise.
func CheckDimension(s LazySet, v vector.Vector) error {
	if v.Len() != s.Dimension() {
		return fmt.Errorf("%w: set has dimension %d but vector has length %d",
			ErrDimensionMismatch, s.Dimension(), v.Len())
	}
	//
	return nil
}
