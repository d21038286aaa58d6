// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func RoundToNearestSigFig(input float64, sigFig int) float64 {
	if input == 0 {
		return 0
	}
	power := float64(sigFig) - Exponent(input)
	magnitude := math.Pow(10.0, power)
	shifted := input * magnitude
	rounded := math.Round(shifted)
	return rounded / magnitude
}

func Exponent(input float64) float64 {
	return math.Ceil(math.Log10(math.Abs(input)))
}

// Round rounds [input] to [precision] decimal places. It goes through a
// decimal string so that float drift introduced upstream does not survive the
// rounding, e.g. Round(0.30000000000000004, 1) == 0.3 exactly.
func Round(input float64, precision int) float64 {
	if math.IsNaN(input) || math.IsInf(input, 0) {
		return input
	}
	precision = min(max(precision, 0), 20)
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(input, 'f', precision, 64), 64)
	if err != nil {
		return input
	}
	return rounded
}

// Precision returns the number of decimal places required to write [input]
// exactly, so Precision(0.3) == 1 and Precision(15) == 0.
func Precision(input float64) int {
	if input == 0 || math.IsNaN(input) || math.IsInf(input, 0) {
		return 0
	}
	// The shortest 'e' form separates the significant digits from the
	// magnitude, e.g. 0.3 => "3e-01".
	str := strconv.FormatFloat(input, 'e', -1, 64)
	mantissa, expStr, _ := strings.Cut(str, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return 0
	}
	frac := 0
	if _, f, ok := strings.Cut(mantissa, "."); ok {
		frac = len(f)
	}
	return max(frac-exp, 0)
}

// QuantityExponent is the order of magnitude of [input], i.e. the power of
// ten of its leading digit.
func QuantityExponent(input float64) int {
	if input == 0 {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(input))))
}

// Quantity returns the largest power of ten which doesn't exceed [input],
// e.g. Quantity(56) == 10.
func Quantity(input float64) float64 {
	return math.Pow(10, float64(QuantityExponent(input)))
}

// NormalizeToRange affinely remaps [input] from the range [min, max] onto the
// range [newMin, newMax]. A degenerate input range collapses to [newMin].
func NormalizeToRange(input, min, max, newMin, newMax float64) float64 {
	if max == min {
		return newMin
	}
	return newMin + (input-min)*(newMax-newMin)/(max-min)
}

func Abs[T constraints.Signed | constraints.Float](input T) T {
	if input < 0 {
		return -input
	}
	return input
}
