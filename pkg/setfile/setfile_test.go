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
package setfile

import (
	"testing"

	"github.com/consensys/go-lazysets/pkg/set"
	"github.com/consensys/go-lazysets/pkg/util/vector"
)

func Test_SetFile_01(t *testing.T) {
	s := checkFromJson(t, `{"interval": {"lower": -1, "upper": 2}}`)
	//
	if s.Dimension() != 1 {
		t.Errorf("interval has dimension %d, expected 1", s.Dimension())
	}
	//
	checkSupport(t, s, vector.Of(1), vector.Of(2))
}

func Test_SetFile_02(t *testing.T) {
	s := checkFromJson(t, `{"box": {"center": [0, 0], "radius": [1, 2]}}`)
	//
	checkSupport(t, s, vector.Of(1, -1), vector.Of(1, -2))
}

func Test_SetFile_03(t *testing.T) {
	s := checkFromJson(t, `{"ball": {"center": [1, 1], "radius": 2}}`)
	//
	checkSupport(t, s, vector.Of(1, 0), vector.Of(3, 1))
}

func Test_SetFile_04(t *testing.T) {
	s := checkFromJson(t, `{"singleton": {"point": [1, 2, 3]}}`)
	//
	checkSupport(t, s, vector.Of(0, 0, 1), vector.Of(1, 2, 3))
}

func Test_SetFile_05(t *testing.T) {
	s := checkFromJson(t, `{"void": {"dimension": 2}}`)
	//
	if _, ok := s.(set.Void); !ok {
		t.Errorf("expected void set, got %v", s)
	}
	//
	if s.Dimension() != 2 {
		t.Errorf("void has dimension %d, expected 2", s.Dimension())
	}
}

func Test_SetFile_06(t *testing.T) {
	s := checkFromJson(t, `{"product": [
		{"interval": {"lower": 0, "upper": 1}},
		{"ball": {"center": [0, 0], "radius": 1}},
		{"singleton": {"point": [4]}}]}`)
	//
	if s.Dimension() != 4 {
		t.Errorf("product has dimension %d, expected 4", s.Dimension())
	}
	//
	checkSupport(t, s, vector.Of(1, 0, 1, -1), vector.Of(1, 0, 1, 4))
}

func Test_SetFile_07(t *testing.T) {
	// Products nest
	s := checkFromJson(t, `{"product": [
		{"product": [{"interval": {"lower": 0, "upper": 1}}]},
		{"interval": {"lower": -1, "upper": 0}}]}`)
	//
	checkSupport(t, s, vector.Of(1, 1), vector.Of(1, 0))
}

func Test_SetFile_08(t *testing.T) {
	s := checkFromJson(t, `{"product": []}`)
	// An empty product description yields the dimension 0 product
	if s.Dimension() != 0 {
		t.Errorf("empty product has dimension %d, expected 0", s.Dimension())
	}
}

// Malformed descriptions

func Test_SetFile_10(t *testing.T) {
	checkFromJsonFails(t, `{`)
}

func Test_SetFile_11(t *testing.T) {
	checkFromJsonFails(t, `{}`)
}

func Test_SetFile_12(t *testing.T) {
	checkFromJsonFails(t,
		`{"interval": {"lower": 0, "upper": 1}, "void": {"dimension": 1}}`)
}

func Test_SetFile_13(t *testing.T) {
	checkFromJsonFails(t, `{"interval": {"lower": 1, "upper": 0}}`)
}

func Test_SetFile_14(t *testing.T) {
	checkFromJsonFails(t, `{"box": {"center": [0, 0], "radius": [1]}}`)
}

func Test_SetFile_15(t *testing.T) {
	checkFromJsonFails(t, `{"ball": {"center": [0], "radius": -1}}`)
}

func Test_SetFile_16(t *testing.T) {
	// Malformed operands surface from inside products
	checkFromJsonFails(t, `{"product": [{"interval": {"lower": 1, "upper": 0}}]}`)
}

// ============================================================================
// Helpers
// ============================================================================

func checkFromJson(t *testing.T, text string) set.LazySet {
	t.Helper()
	//
	s, err := FromJson([]byte(text))
	//
	if err != nil {
		t.Fatalf("parsing %s failed: %v", text, err)
	}
	//
	return s
}

func checkFromJsonFails(t *testing.T, text string) {
	t.Helper()
	//
	if _, err := FromJson([]byte(text)); err == nil {
		t.Errorf("expected parsing %s to fail", text)
	}
}

func checkSupport(t *testing.T, s set.LazySet, direction vector.Vector, expected vector.Vector) {
	t.Helper()
	//
	v, err := s.SupportVector(direction)
	//
	if err != nil {
		t.Errorf("support vector along %s failed: %v", direction, err)
	} else if !v.Equals(expected) {
		t.Errorf("support vector along %s was %s, expected %s", direction, v, expected)
	}
}
