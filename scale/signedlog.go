// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package scale

import (
	"math"

	"github.com/jmyles/termscale/utils/check"
	"github.com/jmyles/termscale/utils/numeric"
	"github.com/jmyles/termscale/utils/sliceutils"
)

// linearThreshold is the raw magnitude below which the signed-log transform
// is a plain x/10 ramp, dodging the log singularity at zero. Its transformed
// counterpart is 1 because log10(10) == 1, so at base 10 the linear segment
// and the log segment meet continuously. For any other base the two segments
// do not quite meet, an accepted limitation of this scale.
const linearThreshold = 10.0

// SignedLog is a logarithmic scale over domains which may span negative,
// zero, and positive values, something a plain log scale cannot represent. A
// small neighbourhood around zero is linearised and a log transform is
// mirrored on either side:
//
//	forward(x) = x/10                       for |x| < 10
//	forward(x) = sign(x) * log_base(|x|)    otherwise
//
// The transform is odd-symmetric and strictly increasing, with forward(0) == 0.
//
// Raw data ranges accumulate by union, then the nicing entry points round the
// domain for labelling and [SignedLog.GetTicks] places log-spaced major ticks
// on each side of zero.
type SignedLog struct {
	base float64

	// original tracks the raw, untransformed extent exactly as data arrived.
	// It is the ground truth for tick alignment and for snapping displayed
	// boundaries back to the precision the data was observed with.
	original *Interval

	// extent is the forward-transformed extent, used for position queries.
	extent Extent

	interval       float64
	niceExtent     Extent
	fixMin, fixMax bool
}

var _ Scale = (&SignedLog{})

// NewSignedLog builds a scale with the given logarithm base, 10 when zero.
// The base is fixed for the lifetime of the scale.
func NewSignedLog(base float64) *SignedLog {
	if base == 0 {
		base = 10
	}
	check.Checkf(base > 1, "signed log scale requires base > 1, got %v", base)
	return &SignedLog{
		base:     base,
		original: NewInterval(),
		extent:   emptyExtent(),
	}
}

func (s *SignedLog) Base() float64 { return s.base }

// Parse is the identity, only numeric values are supported.
func (s *SignedLog) Parse(value float64) float64 { return value }

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// forward maps a raw value into signed-log space.
func (s *SignedLog) forward(x float64) float64 {
	if math.Abs(x) < linearThreshold {
		return x / linearThreshold
	}
	return sign(x) * math.Log(math.Abs(x)) / math.Log(s.base)
}

// inverse maps a signed-log position back to a raw value, the (approximate)
// inverse of [SignedLog.forward].
func (s *SignedLog) inverse(y float64) float64 {
	if math.Abs(y) < 1 {
		return y * linearThreshold
	}
	return sign(y) * math.Pow(s.base, math.Abs(y))
}

func (s *SignedLog) SetExtent(start, end float64) {
	s.original.SetExtent(start, end)
	s.extent = Extent{Min: s.forward(start), Max: s.forward(end)}
}

func (s *SignedLog) UnionExtent(e Extent) {
	// The raw range is unioned first so tick alignment always sees the true
	// untransformed domain.
	s.original.UnionExtent(e)
	s.extent = s.extent.Union(Extent{Min: s.forward(e.Min), Max: s.forward(e.Max)})
}

// UnionExtentFromData widens the extent by the approximate range of [dim]
// within [d]. Values at or below zero are not filtered out; unlike a plain
// log scale this scale represents them.
func (s *SignedLog) UnionExtentFromData(d DataSource, dim string) {
	min, max := d.ApproximateExtent(dim)
	s.UnionExtent(Extent{Min: min, Max: max})
}

// GetExtent returns the extent in raw data units. Boundaries flagged as
// fixed are snapped back onto the decimal precision of the originally
// observed raw boundary, so a caller sees 0.3 and not the
// 0.30000000000000004 the log/pow round trip produced.
func (s *SignedLog) GetExtent() Extent {
	ret := Extent{Min: s.inverse(s.extent.Min), Max: s.inverse(s.extent.Max)}
	raw := s.original.GetExtent()
	if s.fixMin {
		ret.Min = fixRoundingError(ret.Min, raw.Min)
	}
	if s.fixMax {
		ret.Max = fixRoundingError(ret.Max, raw.Max)
	}
	return ret
}

func fixRoundingError(value, reference float64) float64 {
	return numeric.Round(value, numeric.Precision(reference))
}

func (s *SignedLog) Contain(value float64) bool {
	return s.extent.Contains(s.forward(value))
}

func (s *SignedLog) Normalize(value float64) float64 {
	span := s.extent.Span()
	if span == 0 {
		return 0.5
	}
	return (s.forward(value) - s.extent.Min) / span
}

// Scale is the inverse of [SignedLog.Normalize]: it maps a [0,1] position
// back into the raw domain.
func (s *SignedLog) Scale(n float64) float64 {
	return s.inverse(s.extent.Min + n*s.extent.Span())
}

// GetInterval returns the transformed-space tick spacing computed by the
// last nicing call, zero before any nicing ran.
func (s *SignedLog) GetInterval() float64 {
	return s.interval
}

// insideLinearBand reports whether the whole raw domain sits inside the
// linear ramp of the transform. On that band the transform is exactly v/10,
// so plain interval nicing spaces ticks better than the log machinery.
func (s *SignedLog) insideLinearBand() bool {
	raw := s.original.GetExtent()
	return raw.Min <= raw.Max && raw.Min > -linearThreshold && raw.Max < linearThreshold
}

// CalcNiceTicks computes a transformed-space tick interval aiming for
// [approxTickNum] ticks (10 when zero or negative) plus the rounded
// transformed extent whose bounds sit on that interval. A non-finite or
// non-positive span is a no-op.
func (s *SignedLog) CalcNiceTicks(approxTickNum int) {
	if approxTickNum <= 0 {
		approxTickNum = 10
	}
	if s.insideLinearBand() {
		s.delegateLinearNiceTicks(approxTickNum)
		return
	}
	span := s.extent.Span()
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return
	}
	interval := numeric.Quantity(span)
	if float64(approxTickNum)/span*interval <= 0.5 {
		// Too many ticks would result, coarsen by a decade.
		interval *= 10
	}
	// Keep the interval at unit magnitude or above so the integer-power
	// alignment of the tick builder stays well defined.
	for !math.IsInf(interval, 0) && interval != 0 && math.Abs(interval) < 1 {
		interval *= 10
	}
	s.setInterval(interval)
}

func (s *SignedLog) setInterval(interval float64) {
	precision := numeric.Precision(interval) + 2
	s.interval = interval
	s.niceExtent = Extent{
		Min: numeric.Round(math.Ceil(s.extent.Min/interval)*interval, precision),
		Max: numeric.Round(math.Floor(s.extent.Max/interval)*interval, precision),
	}
}

func (s *SignedLog) delegateLinearNiceTicks(approxTickNum int) {
	lin := NewInterval()
	lin.SetExtent(s.extent.Min, s.extent.Max)
	lin.CalcNiceTicks(approxTickNum, 0, 0)
	if lin.interval > 0 {
		s.interval = lin.interval
		s.niceExtent = lin.niceExtent
	}
}

// CalcNiceExtent is the nicing entry point used by axis layout: it rounds the
// whole stored extent outwards onto the nice grid and records which
// boundaries the caller pinned to the data.
func (s *SignedLog) CalcNiceExtent(opt NiceExtentOption) {
	splitNumber := opt.SplitNumber
	if splitNumber <= 0 {
		splitNumber = 5
	}
	if s.extent.Min == s.extent.Max && s.extent.Min != math.Inf(1) {
		if s.extent.Min != 0 {
			expand := math.Abs(s.extent.Min) / 2
			s.extent.Min -= expand
			s.extent.Max += expand
		} else {
			s.extent.Max = 1
		}
	}
	s.CalcNiceTicks(splitNumber)
	if s.interval <= 0 || math.IsNaN(s.interval) {
		s.fixMin, s.fixMax = opt.FixMin, opt.FixMax
		return
	}
	interval := s.interval
	if opt.MinInterval > 0 && interval < opt.MinInterval {
		interval = opt.MinInterval
	}
	if opt.MaxInterval > 0 && interval > opt.MaxInterval {
		interval = opt.MaxInterval
	}
	if interval != s.interval {
		s.setInterval(interval)
	}
	precision := numeric.Precision(s.interval) + 2
	if !opt.FixMin {
		s.extent.Min = numeric.Round(math.Floor(s.extent.Min/s.interval)*s.interval, precision)
	}
	if !opt.FixMax {
		s.extent.Max = numeric.Round(math.Ceil(s.extent.Max/s.interval)*s.interval, precision)
	}
	s.fixMin, s.fixMax = opt.FixMin, opt.FixMax
}

// GetTicks returns the major ticks in raw units, ascending. Domains crossing
// zero get a tick at zero plus an even spread of log-spaced ticks on each
// branch; the endpoints always keep their true values unless
// [expandToNicedExtent] snaps them outwards onto the integer-power grid.
func (s *SignedLog) GetTicks(expandToNicedExtent bool) []Tick {
	if s.insideLinearBand() {
		return s.linearTicks(expandToNicedExtent)
	}
	raw := s.original.GetExtent()
	if raw.Min > raw.Max {
		return nil
	}
	interval := s.interval
	if interval <= 0 || math.IsNaN(interval) {
		interval = 1
	}
	major := s.buildMajorTicks(raw, interval, expandToNicedExtent)
	return sliceutils.Map(major, func(t logTick) Tick { return Tick{Value: s.decode(t)} })
}

// linearTicks serves domains sitting wholly inside the linear ramp: nice the
// transformed span as a plain interval then undo the x/10 transform.
func (s *SignedLog) linearTicks(expandToNicedExtent bool) []Tick {
	lin := NewInterval()
	lin.SetExtent(s.extent.Min, s.extent.Max)
	lin.interval = s.interval
	lin.niceExtent = s.niceExtent
	ticks := lin.GetTicks(expandToNicedExtent)
	for i := range ticks {
		// inverse is a *10 here, which can reintroduce the drift the cursor
		// rounding removed, snap it off before the value can become a label.
		ticks[i].Value = numeric.RoundToNearestSigFig(s.inverse(ticks[i].Value), 10)
	}
	return ticks
}

// GetMinorTicks subdivides between the major ticks, delegating to the same
// interval subdivision the linear scale uses.
func (s *SignedLog) GetMinorTicks(splitNumber int) [][]Tick {
	return minorTicksBetween(s.GetTicks(false), splitNumber, s.GetExtent())
}

// GetLabel formats a tick value for axis display, shared with [Interval].
func (s *SignedLog) GetLabel(t Tick) string {
	return s.original.GetLabel(t)
}
