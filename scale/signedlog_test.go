// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package scale_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/jmyles/termscale/scale"
	"github.com/jmyles/termscale/utils/sliceutils"
	"github.com/jmyles/termscale/utils/th"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickValues(ticks []scale.Tick) []float64 {
	return sliceutils.Map(ticks, func(t scale.Tick) float64 { return t.Value })
}

func TestTransformOddSymmetry(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	for _, x := range []float64{0, 0.25, 1, 5, 9.999, 10, 42, 500, 1e6, 1e100} {
		assert.Equal(t, -s.Forward(x), s.Forward(-x), "forward(-x) != -forward(x) at x=%v", x)
	}
	for _, y := range []float64{0, 0.1, 0.5, 1, 2.5, 30} {
		assert.Equal(t, -s.Inverse(y), s.Inverse(-y), "inverse(-y) != -inverse(y) at y=%v", y)
	}
}

func TestTransformZeroFixedPoint(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	assert.Equal(t, 0.0, s.Forward(0))
	assert.Equal(t, 0.0, s.Inverse(0))
}

func TestTransformRoundTrip(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	for _, x := range []float64{-1e6, -123.456, -17, -10, -9.99, -0.5, 0, 0.3, 3, 9.999, 10, 17, 123.456, 1e6} {
		th.AssertFloatEqual(t, x, s.Inverse(s.Forward(x)), 10, "round trip at x=%v", x)
	}
}

func TestTransformMonotonic(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	inputs := []float64{-1e9, -5000, -100, -10.001, -10, -9.999, -1, -0.001, 0, 0.001, 1, 9.999, 10, 10.001, 100, 5000, 1e9}
	for i := 1; i < len(inputs); i++ {
		prev, cur := s.Forward(inputs[i-1]), s.Forward(inputs[i])
		assert.Less(t, prev, cur, "forward not strictly increasing between %v and %v", inputs[i-1], inputs[i])
	}
}

func TestTransformOtherBase(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(2)
	require.Equal(t, 2.0, s.Base())
	th.AssertFloatEqual(t, 4, s.Forward(16), 10)
	th.AssertFloatEqual(t, -4, s.Forward(-16), 10)
	th.AssertFloatEqual(t, 16, s.Inverse(4), 10)
}

func TestUnionExtentIdempotent(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	e := scale.Extent{Min: -50, Max: 120}
	s.UnionExtent(e)
	first := s.GetExtent()
	s.UnionExtent(e)
	second := s.GetExtent()
	require.Equal(t, first, second, "second union of the same range changed the extent")
}

func TestTicks(t *testing.T) {
	t.Parallel()
	type Case struct {
		Name          string
		Extent        scale.Extent
		ApproxTickNum int
		Expected      []float64
	}
	cases := []Case{
		{
			Name:          "one sided positive domain",
			Extent:        scale.Extent{Min: 1, Max: 1000},
			ApproxTickNum: 10,
			Expected:      []float64{1, 10, 100, 1000},
		},
		{
			Name:          "symmetric crossing domain",
			Extent:        scale.Extent{Min: -100, Max: 100},
			ApproxTickNum: 10,
			Expected:      []float64{-100, -10, 0, 10, 100},
		},
		{
			Name:          "linear band domain",
			Extent:        scale.Extent{Min: -5, Max: 5},
			ApproxTickNum: 10,
			Expected:      []float64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5},
		},
	}
	for _, test := range cases {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			s := scale.NewSignedLog(10)
			s.SetExtent(test.Extent.Min, test.Extent.Max)
			s.CalcNiceTicks(test.ApproxTickNum)
			th.AssertFloatsEqual(t, test.Expected, tickValues(s.GetTicks(false)), 10)
		})
	}
}

func TestTicks_CrossingDomainBrackets(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(-500, 800)
	s.CalcNiceTicks(10)
	got := tickValues(s.GetTicks(false))
	require.True(t, slices.IsSorted(got), "ticks not ascending: %v", got)
	require.Contains(t, got, 0.0, "crossing domain must have a zero tick")
	assert.LessOrEqual(t, got[0], -500.0, "first tick must bracket the min")
	assert.GreaterOrEqual(t, got[len(got)-1], 800.0, "last tick must bracket the max")
}

func TestTicks_ExpandToNicedExtent(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(-500, 800)
	s.CalcNiceTicks(10)
	got := tickValues(s.GetTicks(true))
	th.AssertFloatsEqual(t, []float64{-1000, -10, 0, 10, 100, 1000}, got, 10)
}

func TestTicks_DegeneratePointDomain(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(5, 5)
	s.CalcNiceTicks(10)
	got := tickValues(s.GetTicks(false))
	require.Equal(t, []float64{5}, got)
}

func TestTicks_NoData(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.CalcNiceTicks(10)
	require.Empty(t, s.GetTicks(false))
}

func TestTicks_CountCap(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	// A tiny interval over an enormous branch width would want hundreds of
	// thousands of ticks per branch, the builder must refuse.
	got := s.MajorTickValues(scale.Extent{Min: -1e300, Max: 1e300}, 0.001)
	require.LessOrEqual(t, len(got), 20_005, "branch cap of 10,000 ticks exceeded: %d ticks", len(got))
	require.Greater(t, len(got), 100, "cap test should still produce ticks on both branches")
	require.True(t, slices.IsSorted(got))
}

func TestFixRoundingError(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.3, scale.FixRoundingError(0.30000000000000004, 0.3)) //nolint:testifylint
}

func TestGetExtent_FixFlags(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(0.3, 800)
	s.CalcNiceExtent(scale.NiceExtentOption{SplitNumber: 5, FixMin: true, FixMax: true})
	got := s.GetExtent()
	require.Equal(t, 0.3, got.Min)   //nolint:testifylint
	require.Equal(t, 800.0, got.Max) //nolint:testifylint
}

func TestCalcNiceExtent_ExtendsUnfixedBounds(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(-500, 800)
	s.CalcNiceExtent(scale.NiceExtentOption{SplitNumber: 5})
	got := s.GetExtent()
	assert.LessOrEqual(t, got.Min, -500.0)
	assert.GreaterOrEqual(t, got.Max, 800.0)
}

func TestPointQueries(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(-100, 100)
	th.AssertFloatEqual(t, 0.5, s.Normalize(0), 10)
	th.AssertFloatEqual(t, 0.75, s.Normalize(10), 10)
	th.AssertFloatEqual(t, 10, s.Scale(0.75), 10)
	th.AssertFloatEqual(t, -100, s.Scale(0), 10)
	assert.True(t, s.Contain(99))
	assert.True(t, s.Contain(-100))
	assert.False(t, s.Contain(101))
	assert.Equal(t, 42.5, s.Parse(42.5)) //nolint:testifylint
}

func TestUnionExtentFromData(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.UnionExtentFromData(fakeSeries{min: -20, max: 300}, "latency")
	got := s.GetExtent()
	th.AssertFloatEqual(t, -20, got.Min, 10)
	th.AssertFloatEqual(t, 300, got.Max, 10)
}

type fakeSeries struct {
	min, max float64
}

func (f fakeSeries) ApproximateExtent(string) (float64, float64) { return f.min, f.max }

func TestMinorTicks(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(1, 1000)
	s.CalcNiceTicks(10)
	minor := s.GetMinorTicks(2)
	require.Len(t, minor, 3, "one minor group per major gap")
	for i, gap := range minor {
		require.Len(t, gap, 1, "gap %d should hold the single midpoint", i)
	}
	// Midpoint of the 10..100 gap.
	th.AssertFloatEqual(t, 55, minor[1][0].Value, 10)
}

func TestLabels_LinearBandDriftFree(t *testing.T) {
	t.Parallel()
	s := scale.NewSignedLog(10)
	s.SetExtent(0, 0.7)
	s.CalcNiceTicks(10)
	ticks := s.GetTicks(false)
	require.NotEmpty(t, ticks)
	labels := sliceutils.Map(ticks, s.GetLabel)
	// 0.035 * 10 is 0.35000000000000003, the label must not show that.
	assert.Contains(t, labels, "0.35")
	assert.Contains(t, labels, "0.45")
	for _, label := range labels {
		assert.LessOrEqual(t, len(label), 4, "label %q leaks float drift", label)
	}
}

func TestNewSignedLog_BadBasePanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { scale.NewSignedLog(1) })
	require.Panics(t, func() { scale.NewSignedLog(-3) })
}

func ExampleSignedLog_GetTicks() {
	s := scale.NewSignedLog(10)
	s.SetExtent(-500, 800)
	s.CalcNiceTicks(10)
	for _, tick := range s.GetTicks(false) {
		fmt.Println(s.GetLabel(tick))
	}
	// Output:
	// -500
	// -10
	// 0
	// 10
	// 100
	// 800
}
