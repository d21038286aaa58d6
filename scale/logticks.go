// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package scale

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmyles/termscale/utils/numeric"
)

// logTick is a major tick before decoding. Sign partitions the axis into the
// negative branch (-1), zero itself (0), and the positive branch (1); Value
// is the log-domain magnitude. A zero Value with Sign 0 is the value zero,
// not base^0.
type logTick struct {
	Sign  int
	Value float64
}

// decode turns a tick descriptor back into its raw data value. pow does not
// exactly undo log, so the drift is snapped off before the value can become
// a label.
func (s *SignedLog) decode(t logTick) float64 {
	if t.Sign == 0 {
		return 0
	}
	return numeric.RoundToNearestSigFig(float64(t.Sign)*math.Pow(s.base, t.Value), 10)
}

// safeLog is log_base(|x|) which maps 0 to 0 rather than -Inf, keeping the
// alignment arithmetic finite at a zero boundary.
func (s *SignedLog) safeLog(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Log(math.Abs(x)) / math.Log(s.base)
}

// align rounds the log magnitudes of the raw bounds onto the integer power
// grid, flooring the min side and ceiling the max side. A bound already
// sitting on the grid must not be pushed a whole decade out by float noise
// in the log, hence the fuzzy snap with tolerance scaled by the interval.
func (s *SignedLog) align(raw Extent, interval float64) (x1, x2 float64) {
	logMin := s.safeLog(raw.Min)
	logMax := s.safeLog(raw.Max)
	tolerance := numeric.Abs(interval) * 1e-6
	if nearest := math.Round(logMin); math.Abs(nearest-logMin) <= tolerance {
		x1 = nearest
	} else {
		x1 = math.Floor(logMin)
	}
	if nearest := math.Round(logMax); math.Abs(nearest-logMax) <= tolerance {
		x2 = nearest
	} else {
		x2 = math.Ceil(logMax)
	}
	return x1, x2
}

// branchRange is the span of log magnitudes one branch covers, from the edge
// nearest zero (lo) out to the extreme magnitude (hi). Magnitudes below 1 sit
// in the linear core of the transform and contribute no width.
type branchRange struct {
	lo, hi float64
}

func (b branchRange) width() float64 {
	return math.Max(b.hi-b.lo, 0)
}

// branchRanges works out how much of the positive and negative log axis the
// aligned bounds cover, branching on whether the raw range crosses zero,
// touches it at one end, or lies entirely on one side. Tick density per
// decade then comes out the same on both branches.
func branchRanges(raw Extent, x1, x2 float64) (pos, neg branchRange) {
	switch {
	case raw.Min < 0 && raw.Max > 0: // crosses zero
		pos = branchRange{lo: 0, hi: math.Max(x2, 0)}
		neg = branchRange{lo: 0, hi: math.Max(x1, 0)}
	case raw.Max <= 0 && raw.Min < 0: // entirely non-positive
		lo := 0.0
		if raw.Max != 0 {
			lo = math.Max(x2, 0)
		}
		neg = branchRange{lo: lo, hi: math.Max(x1, lo)}
	case raw.Min >= 0 && raw.Max > 0: // entirely non-negative
		lo := 0.0
		if raw.Min != 0 {
			lo = math.Max(x1, 0)
		}
		pos = branchRange{lo: lo, hi: math.Max(x2, lo)}
	}
	return pos, neg
}

// branchTickCount allocates round(width/interval)+1 ticks to a branch, hard
// capped so a degenerate interval cannot request runaway allocations.
func branchTickCount(width, interval float64) int {
	if width <= 0 || interval <= 0 || math.IsNaN(interval) {
		return 1
	}
	num := int(math.Round(width/interval)) + 1
	return min(num, hardTickLimit)
}

// buildMajorTicks places the major ticks for a raw extent: both endpoints
// with their true log positions, a zero tick when the range crosses zero, and
// an even spread of interior ticks floored onto the integer-power grid of
// each branch. The result is sorted ascending by decoded value and
// deduplicated, because the branches and endpoints are collected out of
// sequence.
func (s *SignedLog) buildMajorTicks(raw Extent, interval float64, expandToNicedExtent bool) []logTick {
	minTick := logTick{Sign: int(sign(raw.Min)), Value: s.safeLog(raw.Min)}
	maxTick := logTick{Sign: int(sign(raw.Max)), Value: s.safeLog(raw.Max)}
	if expandToNicedExtent {
		minTick.Value = alignOutward(minTick.Sign, minTick.Value, false)
		maxTick.Value = alignOutward(maxTick.Sign, maxTick.Value, true)
	}
	ticks := []logTick{minTick, maxTick}
	if raw.Min*raw.Max < 0 {
		ticks = append(ticks, logTick{Sign: 0, Value: 0})
	}

	x1, x2 := s.align(raw, interval)
	pos, neg := branchRanges(raw, x1, x2)
	ticks = appendInteriorTicks(ticks, 1, pos, interval)
	ticks = appendInteriorTicks(ticks, -1, neg, interval)

	slices.SortFunc(ticks, func(a, b logTick) int {
		return cmp.Compare(s.decode(a), s.decode(b))
	})
	return slices.CompactFunc(ticks, func(a, b logTick) bool {
		return s.decode(a) == s.decode(b)
	})
}

// appendInteriorTicks linearly steps the interior log positions of one
// branch, flooring each stepped value so ticks stay on integer powers.
func appendInteriorTicks(ticks []logTick, branchSign int, branch branchRange, interval float64) []logTick {
	num := branchTickCount(branch.width(), interval)
	if num <= 1 {
		return ticks
	}
	step := branch.width() / float64(num-1)
	for i := 1; i <= num-2; i++ {
		value := math.Floor(branch.lo + step*float64(i))
		ticks = append(ticks, logTick{Sign: branchSign, Value: value})
	}
	return ticks
}

// alignOutward pushes an endpoint's log magnitude to the next integer power
// away from the domain, producing niced endpoints like -1000 and 1000 for a
// raw [-500, 800] domain.
func alignOutward(tickSign int, logValue float64, maxEnd bool) float64 {
	if tickSign == 0 {
		return logValue
	}
	// Growing the decoded value means growing the magnitude on the positive
	// branch at the max end, and on the negative branch at the min end.
	if (tickSign > 0) == maxEnd {
		return math.Ceil(logValue)
	}
	return math.Floor(logValue)
}
