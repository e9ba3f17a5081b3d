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

// Package setfile provides a JSON description format for lazy convex sets,
// allowing set trees to be written down in files and reconstructed for
// querying.  Each node of a description carries exactly one of the known
// keys, for example:
//
//	{"product": [{"interval": {"lower": 0, "upper": 1}},
//	             {"ball": {"center": [0, 0], "radius": 1.5}}]}
package setfile

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-lazysets/pkg/geometry"
	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

// =============================================================================
// Raw JSON structures
// =============================================================================

type jsonNode struct {
	Product   []jsonNode     `json:"product,omitempty"`
	Interval  *jsonInterval  `json:"interval,omitempty"`
	Box       *jsonBox       `json:"box,omitempty"`
	Ball      *jsonBall      `json:"ball,omitempty"`
	Singleton *jsonSingleton `json:"singleton,omitempty"`
	Void      *jsonVoid      `json:"void,omitempty"`
}

type jsonInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type jsonBox struct {
	Center []float64 `json:"center"`
	Radius []float64 `json:"radius"`
}

type jsonBall struct {
	Center []float64 `json:"center"`
	Radius float64   `json:"radius"`
}

type jsonSingleton struct {
	Point []float64 `json:"point"`
}

type jsonVoid struct {
	Dimension uint `json:"dimension"`
}

// =============================================================================
// Translation
// =============================================================================

// FromJson parses a JSON set description into the lazy set it describes.
func FromJson(data []byte) (set.LazySet, error) {
	var node jsonNode
	//
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	//
	return translate(&node)
}

func translate(node *jsonNode) (set.LazySet, error) {
	// sanity check exactly one key given
	if err := checkWellFormed(node); err != nil {
		return nil, err
	}
	//
	switch {
	case node.Product != nil:
		return translateProduct(node.Product)
	case node.Interval != nil:
		return translateInterval(node.Interval)
	case node.Box != nil:
		box, err := geometry.NewHyperrectangle(vector.Of(node.Box.Center...), vector.Of(node.Box.Radius...))
		//
		if err != nil {
			return nil, err
		}
		//
		return box, nil
	case node.Ball != nil:
		ball, err := geometry.NewBall(vector.Of(node.Ball.Center...), node.Ball.Radius)
		//
		if err != nil {
			return nil, err
		}
		//
		return ball, nil
	case node.Singleton != nil:
		return geometry.NewSingleton(vector.Of(node.Singleton.Point...)), nil
	default:
		return set.NewVoid(node.Void.Dimension), nil
	}
}

func translateProduct(nodes []jsonNode) (set.LazySet, error) {
	product := set.NewCartesianProductArray(uint(len(nodes)))
	//
	for i := range nodes {
		operand, err := translate(&nodes[i])
		//
		if err != nil {
			return nil, err
		}
		//
		product.Append(operand)
	}
	//
	return product, nil
}

func translateInterval(node *jsonInterval) (set.LazySet, error) {
	if node.Lower > node.Upper {
		return nil, fmt.Errorf("interval bounds out of order: %g > %g", node.Lower, node.Upper)
	}
	//
	return geometry.NewInterval(node.Lower, node.Upper), nil
}

func checkWellFormed(node *jsonNode) error {
	count := 0
	//
	if node.Product != nil {
		count++
	}
	//
	if node.Interval != nil {
		count++
	}
	//
	if node.Box != nil {
		count++
	}
	//
	if node.Ball != nil {
		count++
	}
	//
	if node.Singleton != nil {
		count++
	}
	//
	if node.Void != nil {
		count++
	}
	//
	if count != 1 {
		return fmt.Errorf("set description node must have exactly one kind, found %d", count)
	}
	//
	return nil
}
