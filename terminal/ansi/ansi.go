// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

// CSI is the Control Sequence Introducer, starting most of the useful
// sequences, terminated by a byte in the range 0x40 through 0x7E.
const CSI = "\033["

// R resets all colouring back to the terminal default.
const R = CSI + "0m"

func Gray(s string) string   { return CSI + "90m" + s + R }
func White(s string) string  { return CSI + "97m" + s + R }
func Red(s string) string    { return CSI + "91m" + s + R }
func Green(s string) string  { return CSI + "92m" + s + R }
func Yellow(s string) string { return CSI + "93m" + s + R }
func Cyan(s string) string   { return CSI + "96m" + s + R }
