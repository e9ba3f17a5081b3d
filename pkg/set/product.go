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
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// CartesianProduct is the binary lazy cartesian product of two sets.  Points
// of the product are formed by laying a point of X end to end with a point of
// Y, hence its ambient dimension is the sum of the operand dimensions.  All
// queries decompose along that split: the first dimension(X) coordinates of a
// direction or point concern X, the remainder concern Y.  Neither operand is
// mutated after composition.
type CartesianProduct struct {
	x LazySet
	y LazySet
}

// NewCartesianProduct constructs a lazy product from an ordered sequence of
// sets.  Zero operands yield the void set of dimension 1; a single operand is
// returned unchanged rather than wrapped; two or more operands are nested
// right-associatively, so [s1,s2,s3] becomes s1 × (s2 × s3).
func NewCartesianProduct(sets ...LazySet) LazySet {
	switch len(sets) {
	case 0:
		return NewVoid(1)
	case 1:
		return sets[0]
	case 2:
		return &CartesianProduct{sets[0], sets[1]}
	default:
		return &CartesianProduct{sets[0], NewCartesianProduct(sets[1:]...)}
	}
}

// X returns the first operand of this product.
func (p *CartesianProduct) X() LazySet {
	return p.x
}

// Y returns the second operand of this product.
func (p *CartesianProduct) Y() LazySet {
	return p.y
}

// Dimension returns the ambient dimension of this product, being the sum of
// the operand dimensions.
func (p *CartesianProduct) Dimension() uint {
	return p.x.Dimension() + p.y.Dimension()
}

// SupportVector computes a support vector of this product in a given
// direction by splitting the direction into the block concerning each
// operand, querying the operands independently, and laying the two results
// end to end.  This decomposition is exact, since each operand's maximiser
// does not depend on the other operand's direction coordinates.
func (p *CartesianProduct) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := CheckDimension(p, direction); err != nil {
		return nil, err
	}
	// Split direction into operand blocks
	n := p.x.Dimension()
	// Query first operand
	vx, err := p.x.SupportVector(direction[:n])
	//
	if err != nil {
		return nil, err
	}
	// Query second operand
	vy, err := p.y.SupportVector(direction[n:])
	//
	if err != nil {
		return nil, err
	}
	// Concatenate blocks
	result := make(vector.Vector, 0, len(direction))
	result = append(result, vx...)
	result = append(result, vy...)
	// Done
	return result, nil
}

// Contains determines whether a given point lies within this product.  This
// holds exactly when each operand's block of the point lies within that
// operand, hence the second operand is not queried once the first has
// rejected its block.
func (p *CartesianProduct) Contains(point vector.Vector) (bool, error) {
	if err := CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	n := p.x.Dimension()
	//
	ok, err := p.x.Contains(point[:n])
	//
	if err != nil || !ok {
		return false, err
	}
	//
	return p.y.Contains(point[n:])
}
