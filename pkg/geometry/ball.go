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

// Ball provides a Euclidean ball described by its center point and radius.
type Ball struct {
	center vector.Vector
	radius float64
}

// NewBall constructs a ball from a center point and a non-negative radius.
func NewBall(center vector.Vector, radius float64) (Ball, error) {
	if radius < 0 {
		return Ball{}, fmt.Errorf("negative radius %g", radius)
	}
	//
	return Ball{center, radius}, nil
}

// Dimension returns the ambient dimension of this ball.
func (p Ball) Dimension() uint {
	return p.center.Len()
}

// SupportVector returns the boundary point of this ball furthest along the
// given direction, being the center displaced by radius along the normalised
// direction.  The zero direction yields the center itself.
func (p Ball) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := set.CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	result := p.center.Clone()
	norm := direction.Norm()
	//
	if norm == 0 {
		return result, nil
	}
	//
	for i := range result {
		result[i] += p.radius * direction[i] / norm
	}
	//
	return result, nil
}

// Contains checks whether a given point lies within radius of the center.
func (p Ball) Contains(point vector.Vector) (bool, error) {
	if err := set.CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	offset := point.Clone()
	//
	for i := range offset {
		offset[i] -= p.center[i]
	}
	//
	return offset.Norm() <= p.radius, nil
}
