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

// Multiply composes two lazy sets into their cartesian product.  This is a
// notational convenience over the product constructors: when either operand
// is an array product the other is absorbed into it (mutating that array
// product), and two array products are merged; otherwise a fresh binary
// product is formed.  Note that absorbing into an array product always
// appends to the end of its existing sequence, regardless of which side the
// array product appears on.
func Multiply(x LazySet, y LazySet) LazySet {
	xs, xok := x.(*CartesianProductArray)
	ys, yok := y.(*CartesianProductArray)
	//
	switch {
	case xok && yok:
		return xs.Merge(ys)
	case xok:
		return xs.Append(y)
	case yok:
		return ys.Append(x)
	default:
		return NewCartesianProduct(x, y)
	}
}

// MultiplyRight appends a set onto the right of an array product, returning
// the (mutated) receiver.
func MultiplyRight(p *CartesianProductArray, s LazySet) *CartesianProductArray {
	return p.Append(s)
}

// MultiplyLeft multiplies a set onto the left of an array product.  Observe
// that the set still lands at the END of the product's operand sequence just
// as with MultiplyRight; the array product's existing block layout is never
// shifted.
func MultiplyLeft(s LazySet, p *CartesianProductArray) *CartesianProductArray {
	return p.Append(s)
}
