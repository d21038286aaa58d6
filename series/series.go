// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

// Package series holds the sampled values behind one plotted series, column
// per named dimension, and answers the approximate value-range queries a
// scale needs while it sizes an axis.
package series

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmyles/termscale/utils/check"
)

type Data struct {
	Name    string
	dims    []string
	columns []*column
}

// column accumulates its extent as values arrive, the way the chart stats
// are kept rather than rescanning the raw values per query. NaN and infinite
// samples are stored but never contribute to the extent, which is what makes
// the reported range approximate.
type column struct {
	values   []float64
	min, max float64
	seen     uint64
}

func newColumn() *column {
	return &column{
		values: make([]float64, 0, 1024),
		min:    math.Inf(1),
		max:    math.Inf(-1),
	}
}

func (c *column) add(value float64) {
	c.values = append(c.values, value)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	c.min = min(c.min, value)
	c.max = max(c.max, value)
	c.seen++
}

func New(name string, dimensions ...string) *Data {
	check.Checkf(len(dimensions) > 0, "series %q needs at least one dimension", name)
	columns := make([]*column, len(dimensions))
	for i := range columns {
		columns[i] = newColumn()
	}
	return &Data{Name: name, dims: dimensions, columns: columns}
}

func (d *Data) Dimensions() []string {
	return d.dims
}

func (d *Data) Len() int {
	return len(d.columns[0].values)
}

// AddRow appends one sample per dimension, in declaration order.
func (d *Data) AddRow(values ...float64) {
	check.Checkf(len(values) == len(d.dims),
		"series %q row has %d values, want %d", d.Name, len(values), len(d.dims))
	for i, v := range values {
		d.columns[i].add(v)
	}
}

// Values returns the raw samples of [dim] in insertion order, nil for an
// unknown dimension.
func (d *Data) Values(dim string) []float64 {
	c := d.column(dim)
	if c == nil {
		return nil
	}
	return c.values
}

// ApproximateExtent reports the finite value range seen so far on [dim].
// With no finite samples yet (or an unknown dimension) the result is the
// inverted infinite pair, which a scale's extent union treats as empty.
func (d *Data) ApproximateExtent(dim string) (min, max float64) {
	c := d.column(dim)
	if c == nil || c.seen == 0 {
		return math.Inf(1), math.Inf(-1)
	}
	return c.min, c.max
}

func (d *Data) column(dim string) *column {
	for i, name := range d.dims {
		if name == dim {
			return d.columns[i]
		}
	}
	return nil
}

func (d *Data) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows", d.Name, d.Len())
	for _, dim := range d.dims {
		lo, hi := d.ApproximateExtent(dim)
		fmt.Fprintf(&b, " | %s [%g, %g]", dim, lo, hi)
	}
	return b.String()
}
