// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package scale

import "github.com/jmyles/termscale/utils/sliceutils"

// This file contains various helper methods for unit tests but which are not safe public API methods.

func (s *SignedLog) Forward(x float64) float64 { return s.forward(x) }
func (s *SignedLog) Inverse(y float64) float64 { return s.inverse(y) }

// MajorTickValues runs the tick builder directly with a caller supplied
// interval, bypassing the nicing step.
func (s *SignedLog) MajorTickValues(raw Extent, interval float64) []float64 {
	major := s.buildMajorTicks(raw, interval, false)
	return sliceutils.Map(major, s.decode)
}

var FixRoundingError = fixRoundingError

func Nice(value float64, round bool) float64 { return nice(value, round) }
