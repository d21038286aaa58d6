// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package scale

import (
	"math"
	"strconv"

	"github.com/jmyles/termscale/utils/numeric"
)

// hardTickLimit caps the number of ticks a single request may produce, a
// safety valve against degenerate intervals rather than an expected case.
const hardTickLimit = 10_000

// Interval is a plain linear scale: it tracks a numeric extent by union and
// rounds it to human friendly tick positions. [SignedLog] composes one of
// these both as its raw-extent ground truth and for the shared tick
// subdivision and label formatting behaviour.
type Interval struct {
	extent     Extent
	interval   float64
	niceExtent Extent
}

func NewInterval() *Interval {
	return &Interval{extent: emptyExtent()}
}

// Parse is the identity, only numeric values are supported.
func (s *Interval) Parse(value float64) float64 { return value }

func (s *Interval) SetExtent(start, end float64) {
	s.extent = Extent{Min: start, Max: end}
}

func (s *Interval) GetExtent() Extent {
	return s.extent
}

func (s *Interval) UnionExtent(e Extent) {
	s.extent = s.extent.Union(e)
}

func (s *Interval) Contain(value float64) bool {
	return s.extent.Contains(value)
}

func (s *Interval) Normalize(value float64) float64 {
	if s.extent.Span() == 0 {
		return 0.5
	}
	return (value - s.extent.Min) / s.extent.Span()
}

// Scale is the inverse of [Interval.Normalize], mapping a [0,1] position back
// into the extent.
func (s *Interval) Scale(n float64) float64 {
	return s.extent.Min + n*s.extent.Span()
}

// GetInterval returns the tick spacing computed by the last nicing call, zero
// before any nicing ran.
func (s *Interval) GetInterval() float64 {
	return s.interval
}

// CalcNiceTicks computes a rounded tick interval for the current extent and
// the rounded sub-extent whose bounds sit exactly on that interval. A
// non-finite or non-positive span is a no-op, any previously computed
// interval stays in effect.
func (s *Interval) CalcNiceTicks(splitNumber int, minInterval, maxInterval float64) {
	if splitNumber <= 0 {
		splitNumber = 5
	}
	span := s.extent.Span()
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return
	}
	interval := nice(span/float64(splitNumber), true)
	if minInterval > 0 && interval < minInterval {
		interval = minInterval
	}
	if maxInterval > 0 && interval > maxInterval {
		interval = maxInterval
	}
	precision := numeric.Precision(interval) + 2
	s.interval = interval
	s.niceExtent = Extent{
		Min: numeric.Round(math.Ceil(s.extent.Min/interval)*interval, precision),
		Max: numeric.Round(math.Floor(s.extent.Max/interval)*interval, precision),
	}
}

// CalcNiceExtent rounds the whole extent outwards onto the nice interval
// grid. Boundaries pinned by the fix flags keep their observed values.
func (s *Interval) CalcNiceExtent(opt NiceExtentOption) {
	if s.extent.Min == s.extent.Max {
		s.expandDegenerateExtent()
	}
	if math.IsInf(s.extent.Span(), 0) || math.IsNaN(s.extent.Span()) {
		s.extent = Extent{Min: 0, Max: 1}
	}
	s.CalcNiceTicks(opt.SplitNumber, opt.MinInterval, opt.MaxInterval)
	if s.interval <= 0 {
		return
	}
	precision := numeric.Precision(s.interval) + 2
	if !opt.FixMin {
		s.extent.Min = numeric.Round(math.Floor(s.extent.Min/s.interval)*s.interval, precision)
	}
	if !opt.FixMax {
		s.extent.Max = numeric.Round(math.Ceil(s.extent.Max/s.interval)*s.interval, precision)
	}
}

// expandDegenerateExtent opens up a single-point extent so an interval can be
// computed at all, growing a non-zero point by half its own size.
func (s *Interval) expandDegenerateExtent() {
	if s.extent.Min != 0 {
		expand := math.Abs(s.extent.Min) / 2
		s.extent.Min -= expand
		s.extent.Max += expand
	} else {
		s.extent.Max = 1
	}
}

// GetTicks returns the major ticks ascending. The first and last tick are the
// raw extent bounds unless [expandToNicedExtent], in which case they step one
// whole interval past the nice extent instead.
func (s *Interval) GetTicks(expandToNicedExtent bool) []Tick {
	if s.interval <= 0 || math.IsNaN(s.interval) {
		if s.extent.Min > s.extent.Max {
			return nil
		}
		if s.extent.Min == s.extent.Max {
			return []Tick{{Value: s.extent.Min}}
		}
		return []Tick{{Value: s.extent.Min}, {Value: s.extent.Max}}
	}
	precision := numeric.Precision(s.interval) + 2
	ticks := make([]Tick, 0, 8)
	if s.niceExtent.Min > s.extent.Min {
		if expandToNicedExtent {
			ticks = append(ticks, Tick{Value: numeric.Round(s.niceExtent.Min-s.interval, precision)})
		} else {
			ticks = append(ticks, Tick{Value: s.extent.Min})
		}
	}
	cursor := s.niceExtent.Min
	for cursor <= s.niceExtent.Max && len(ticks) < hardTickLimit {
		ticks = append(ticks, Tick{Value: cursor})
		next := numeric.Round(cursor+s.interval, precision)
		if next == cursor {
			break // interval too small to move the cursor, bail out
		}
		cursor = next
	}
	if s.niceExtent.Max < s.extent.Max {
		if expandToNicedExtent {
			ticks = append(ticks, Tick{Value: numeric.Round(s.niceExtent.Max+s.interval, precision)})
		} else {
			ticks = append(ticks, Tick{Value: s.extent.Max})
		}
	}
	return ticks
}

// GetMinorTicks subdivides each gap between adjacent major ticks into
// [splitNumber] equal parts, returning the interior subdivision positions per
// gap. Minor ticks outside the current extent are discarded.
func (s *Interval) GetMinorTicks(splitNumber int) [][]Tick {
	return minorTicksBetween(s.GetTicks(true), splitNumber, s.extent)
}

func minorTicksBetween(major []Tick, splitNumber int, within Extent) [][]Tick {
	if splitNumber <= 1 || len(major) < 2 {
		return nil
	}
	minor := make([][]Tick, 0, len(major)-1)
	for i := 1; i < len(major); i++ {
		prev, next := major[i-1].Value, major[i].Value
		gap := make([]Tick, 0, splitNumber-1)
		step := (next - prev) / float64(splitNumber)
		for j := 1; j < splitNumber; j++ {
			value := prev + step*float64(j)
			if within.Contains(value) {
				gap = append(gap, Tick{Value: value})
			}
		}
		minor = append(minor, gap)
	}
	return minor
}

// GetLabel formats a tick value for axis display.
func (s *Interval) GetLabel(t Tick) string {
	value := t.Value
	if s.interval > 0 {
		value = numeric.Round(value, numeric.Precision(s.interval)+2)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// nice rounds [value] to a near human friendly number: 1, 2, 3, 5 or 10
// times its order of magnitude. When [round] is set the thresholds sit
// between the candidates instead of at them, which spreads intervals more
// evenly when the input is a span divided by a tick count.
func nice(value float64, round bool) float64 {
	exp10 := numeric.Quantity(value)
	f := value / exp10
	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 2.5:
			nf = 2
		case f < 4:
			nf = 3
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f < 1:
			nf = 1
		case f < 2:
			nf = 2
		case f < 3:
			nf = 3
		case f < 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * exp10
}
