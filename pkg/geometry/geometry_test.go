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
	"testing"

	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	i := NewInterval(-1, 2)

	assert.Equal(t, uint(1), i.Dimension())

	v, err := i.SupportVector(vector.Of(1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(2), v)

	v, err = i.SupportVector(vector.Of(-3))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(-1), v)

	// Zero direction takes the upper bound
	v, err = i.SupportVector(vector.Of(0))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(2), v)

	tests := []struct {
		point    float64
		expected bool
	}{
		{-1.5, false}, {-1, true}, {0, true}, {2, true}, {2.5, false},
	}

	for _, tt := range tests {
		ok, err := i.Contains(vector.Of(tt.point))
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, ok, "containment of %g", tt.point)
	}

	_, err = i.SupportVector(vector.Of(1, 0))
	assert.ErrorIs(t, err, set.ErrDimensionMismatch)
}

func TestHyperrectangle(t *testing.T) {
	box, err := NewHyperrectangle(vector.Of(1, -1), vector.Of(2, 0.5))
	assert.NoError(t, err)
	assert.Equal(t, uint(2), box.Dimension())

	v, err := box.SupportVector(vector.Of(1, -1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(3, -1.5), v)

	// Zero coordinates take the positive corner
	v, err = box.SupportVector(vector.Of(0, 1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(3, -0.5), v)

	ok, err := box.Contains(vector.Of(0, -1))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = box.Contains(vector.Of(0, 0.5))
	assert.NoError(t, err)
	assert.False(t, ok)

	// Malformed constructions
	_, err = NewHyperrectangle(vector.Of(0, 0), vector.Of(1))
	assert.Error(t, err)
	_, err = NewHyperrectangle(vector.Of(0), vector.Of(-1))
	assert.Error(t, err)
}

func TestBall(t *testing.T) {
	ball, err := NewBall(vector.Of(1, 1), 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), ball.Dimension())

	v, err := ball.SupportVector(vector.Of(3, 0))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(3, 1), v)

	v, err = ball.SupportVector(vector.Of(0, -1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(1, -1), v)

	// Zero direction returns the center
	v, err = ball.SupportVector(vector.Of(0, 0))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(1, 1), v)

	ok, err := ball.Contains(vector.Of(2, 2))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = ball.Contains(vector.Of(3, 3))
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = NewBall(vector.Of(0), -1)
	assert.Error(t, err)
}

func TestSingleton(t *testing.T) {
	s := NewSingleton(vector.Of(1, 2, 3))

	assert.Equal(t, uint(3), s.Dimension())

	v, err := s.SupportVector(vector.Of(-1, 0, 1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(1, 2, 3), v)

	ok, err := s.Contains(vector.Of(1, 2, 3))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Contains(vector.Of(1, 2, 4))
	assert.NoError(t, err)
	assert.False(t, ok)
}

// Products of concrete sets, including a nested box-of-intervals
// configuration.
func TestProductOfConcreteSets(t *testing.T) {
	unit := NewInterval(0, 1)
	ball, err := NewBall(vector.Of(0, 0), 1)
	assert.NoError(t, err)

	p := set.NewCartesianProduct(unit, ball, NewSingleton(vector.Of(4)))
	assert.Equal(t, uint(4), p.Dimension())

	v, err := p.SupportVector(vector.Of(1, 0, 1, -1))
	assert.NoError(t, err)
	assert.Equal(t, vector.Of(1, 0, 1, 4), v)

	ok, err := p.Contains(vector.Of(0.5, 0, -1, 4))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Contains(vector.Of(0.5, 0, -1, 5))
	assert.NoError(t, err)
	assert.False(t, ok)
}
