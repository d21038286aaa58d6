// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmyles/termscale/utils/numeric"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func AssertFloatEqual(t *testing.T, expected float64, actual float64, sigFigs int, msgAndArgs ...interface{}) {
	t.Helper()
	a := numeric.RoundToNearestSigFig(actual, sigFigs)
	e := numeric.RoundToNearestSigFig(expected, sigFigs)
	assert.Check(t, is.Equal(e, a), msgAndArgs...)
}

func AssertFloatsEqual(t *testing.T, expected []float64, actual []float64, sigFigs int) {
	t.Helper()
	assert.Check(t, is.Equal(len(expected), len(actual)), "slice lengths differ: expected %v actual %v", expected, actual)
	if len(expected) != len(actual) {
		return
	}
	for i := range expected {
		AssertFloatEqual(t, expected[i], actual[i], sigFigs, "index %d of %v", i, actual)
	}
}

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })
