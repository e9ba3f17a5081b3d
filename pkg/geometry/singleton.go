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
	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// Singleton provides a set holding exactly one point.
type Singleton struct {
	point vector.Vector
}

// NewSingleton constructs a singleton set from a given point.
func NewSingleton(point vector.Vector) Singleton {
	return Singleton{point}
}

// Dimension returns the ambient dimension of this set.
func (p Singleton) Dimension() uint {
	return p.point.Len()
}

// SupportVector returns the single point of this set, which maximises every
// direction trivially.
func (p Singleton) SupportVector(direction vector.Vector) (vector.Vector, error) {
	if err := set.CheckDimension(p, direction); err != nil {
		return nil, err
	}
	//
	return p.point.Clone(), nil
}

// Contains checks whether a given point is exactly the point of this set.
func (p Singleton) Contains(point vector.Vector) (bool, error) {
	if err := set.CheckDimension(p, point); err != nil {
		return false, err
	}
	//
	return p.point.Equals(point), nil
}
