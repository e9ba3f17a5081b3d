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

// Void represents the empty set of a given ambient dimension.  It acts as a
// designated "no constraint" placeholder, in particular as the result of
// building a product from zero operands.  A void set contains no points at
// all and, therefore, has no support vector in any direction.
type Void struct {
	dimension uint
}

// NewVoid constructs the void set of a given ambient dimension.
func NewVoid(dimension uint) Void {
	return Void{dimension}
}

// Dimension returns the ambient dimension of this set.
func (p Void) Dimension() uint {
	return p.dimension
}

// SupportVector returns an error wrapping ErrVoidSet for every well-formed
// direction, since the empty set has no maximising point.
func (p Void) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	return nil, ErrVoidSet
}

// Contains returns false for every well-formed point.
func (p Void) Contains(point vector.Vector) (bool, error) {
	if err := CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	return false, nil
}
