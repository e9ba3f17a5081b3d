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

// CartesianProductArray is the n-ary lazy cartesian product of an ordered
// sequence of sets.  It represents the same mathematical object as a nest of
// CartesianProduct values, but replaces the tree walk with a single pass over
// a flat sequence, which suits incremental construction via repeated appends.
// Operand order is significant: it determines how directions and points
// partition into per-operand blocks.  The dimension is recomputed on demand
// rather than cached, so growth never leaves it stale.
//
// Append and Merge deliberately mutate the receiver and return it, enabling
// chained composition.  Callers must not rely on the pre-append value
// remaining unchanged: every reference to the same array product observes
// all subsequent growth.
type CartesianProductArray struct {
	operands []LazySet
}

// NewCartesianProductArray constructs an empty array product.  The capacity
// hint sizes the initial allocation of the operand sequence and has no
// observable behavioural effect.
func NewCartesianProductArray(capacity uint) *CartesianProductArray {
	return &CartesianProductArray{make([]LazySet, 0, capacity)}
}

// Operands provides raw access to the underlying operand sequence of this
// product.
func (p *CartesianProductArray) Operands() []LazySet {
	return p.operands
}

// Append adds a set as the new last operand, returning the receiver.
func (p *CartesianProductArray) Append(s LazySet) *CartesianProductArray {
	p.operands = append(p.operands, s)
	//
	return p
}

// Merge appends all operands of another array product onto this one's
// sequence in order, returning the receiver.  The other product itself is
// left unchanged, but its operands are now shared with this product.
func (p *CartesianProductArray) Merge(other *CartesianProductArray) *CartesianProductArray {
	p.operands = append(p.operands, other.operands...)
	//
	return p
}

// Dimension returns the ambient dimension of this product, being the sum of
// all operand dimensions.  An empty product has dimension 0.
func (p *CartesianProductArray) Dimension() uint {
	var dimension uint
	//
	for _, s := range p.operands {
		dimension += s.Dimension()
	}
	//
	return dimension
}

// SupportVector computes a support vector of this product in a given
// direction by walking the operand sequence in order, querying each operand
// with its block of the direction and writing the result into the matching
// block of the output.
func (p *CartesianProductArray) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	var (
		result = make(vector.Vector, 0, len(direction))
		offset uint
	)
	//
	for _, s := range p.operands {
		end := offset + s.Dimension()
		//
		v, err := s.SupportVector(direction[offset:end])
		//
		if err != nil {
			return nil, err
		}
		//
		result = append(result, v...)
		offset = end
	}
	// Done
	return result, nil
}

// Contains determines whether a given point lies within this product, that
// is whether every operand contains its block of the point.  The walk stops
// at the first operand which rejects its block.  An empty product contains
// exactly the unique zero-length point.
func (p *CartesianProductArray) Contains(point vector.Vector) (bool, error) {
	if err := CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	var offset uint
	//
	for _, s := range p.operands {
		end := offset + s.Dimension()
		//
		ok, err := s.Contains(point[offset:end])
		//
		if err != nil || !ok {
			return false, err
		}
		//
		offset = end
	}
	//
	return true, nil
}
