// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

// Package axis paints the major ticks of a scale onto a horizontal terminal
// axis: a rule line with tick marks and a label line underneath.
package axis

import (
	"math"
	"strings"

	"github.com/jmyles/termscale/scale"
	"github.com/jmyles/termscale/terminal/ansi"
	"github.com/jmyles/termscale/terminal/typography"
	"github.com/jmyles/termscale/utils/check"
	"github.com/jmyles/termscale/utils/numeric"
)

// Render lays the scale's major ticks out over [width] terminal cells. Labels
// which would overlap an earlier label are dropped rather than squeezed, the
// rule keeps its tick mark either way.
func Render(s scale.Scale, width int) string {
	check.Checkf(width > 0, "axis width must be positive, got %d", width)
	ticks := s.GetTicks(false)

	rule := []rune(strings.Repeat(typography.Horizontal, width))
	labels := []rune(strings.Repeat(" ", width))
	nextFree := 0
	for _, tick := range ticks {
		col := tickColumn(s, tick, width)
		rule[col] = []rune(typography.UpTick)[0]
		label := s.GetLabel(tick)
		if start, ok := labelStart(col, len(label), nextFree, width); ok {
			copy(labels[start:], []rune(label))
			nextFree = start + len(label) + 1
		}
	}
	return ansi.White(string(rule)) + "\n" + ansi.Yellow(string(labels))
}

func tickColumn(s scale.Scale, tick scale.Tick, width int) int {
	norm := s.Normalize(tick.Value)
	col := int(math.Round(numeric.NormalizeToRange(norm, 0, 1, 0, float64(width-1))))
	return min(max(col, 0), width-1)
}

// labelStart centres a label under its tick column, shifting it right past
// the previous label or left off the axis edge when it has to.
func labelStart(col, labelLen, nextFree, width int) (int, bool) {
	start := col - labelLen/2
	start = max(start, nextFree)
	start = min(start, width-labelLen)
	if start < nextFree || start < 0 {
		return 0, false
	}
	return start, true
}
