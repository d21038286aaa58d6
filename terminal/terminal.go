// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

// Package terminal answers the only question this module has about the
// surrounding terminal: how wide is it.
package terminal

import (
	"os"
	"strconv"

	"github.com/jmyles/termscale/utils/errors"
	"golang.org/x/term"
)

type Size struct {
	Height int
	Width  int
}

func (s Size) String() string {
	return "(h: " + strconv.Itoa(s.Height) + ", w: " + strconv.Itoa(s.Width) + ")"
}

// fallbackSize is used when stdout isn't a tty, e.g. under a pipe or in CI.
var fallbackSize = Size{Height: 20, Width: 80}

func IsRunningUnderTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func GetCurrentTerminalSize() (Size, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return Size{}, errors.Wrap(err, "failed to read terminal size")
	}
	return Size{Height: h, Width: w}, nil
}

// CurrentSize is [GetCurrentTerminalSize] with the pipe/CI fallback folded
// in, for callers which always need some usable size.
func CurrentSize() Size {
	if !IsRunningUnderTerminal() {
		return fallbackSize
	}
	size, err := GetCurrentTerminalSize()
	if err != nil {
		return fallbackSize
	}
	return size
}
