// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

// Package scale maps raw data domains onto normalized axis positions and
// computes the "nice" tick values an axis should label. Two scales are
// provided: [Interval], a plain linear scale, and [SignedLog], a logarithmic
// scale which also handles domains that cross zero.
package scale

import "math"

// Extent is an ordered raw-domain range. Freshly constructed scales start
// with the inverted infinite extent so that the first union establishes the
// range.
type Extent struct {
	Min, Max float64
}

func emptyExtent() Extent {
	return Extent{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Span is the width of the extent, negative only before any data arrived.
func (e Extent) Span() float64 {
	return e.Max - e.Min
}

func (e Extent) Contains(value float64) bool {
	return value >= e.Min && value <= e.Max
}

// Union grows this extent to also cover [other], returning the result.
func (e Extent) Union(other Extent) Extent {
	if other.Min < e.Min {
		e.Min = other.Min
	}
	if other.Max > e.Max {
		e.Max = other.Max
	}
	return e
}

// Tick is a single major axis position in raw data units.
type Tick struct {
	Value float64
}

// NiceExtentOption controls [Interval.CalcNiceExtent] and
// [SignedLog.CalcNiceExtent].
type NiceExtentOption struct {
	// SplitNumber is the approximate number of ticks wanted, 5 when zero.
	SplitNumber int
	// FixMin/FixMax pin the corresponding boundary to the observed data
	// rather than extending it to the nice grid. The displayed boundary is
	// then snapped back to the observed value's decimal precision so the
	// log/pow round trip can't leak float drift into labels.
	FixMin, FixMax bool
	// MinInterval/MaxInterval clamp the computed interval when positive.
	MinInterval, MaxInterval float64
}

// Scale is the surface the axis layout and rendering code draws against.
type Scale interface {
	SetExtent(start, end float64)
	GetExtent() Extent
	UnionExtent(e Extent)
	CalcNiceExtent(opt NiceExtentOption)
	CalcNiceTicks(approxTickNum int)
	GetTicks(expandToNicedExtent bool) []Tick
	GetMinorTicks(splitNumber int) [][]Tick
	GetLabel(t Tick) string
	Contain(value float64) bool
	Normalize(value float64) float64
	Scale(n float64) float64
	Parse(value float64) float64
}

// DataSource is the subset of a series container a scale needs in order to
// size itself from plotted data.
type DataSource interface {
	ApproximateExtent(dim string) (min, max float64)
}
