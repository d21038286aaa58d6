// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmyles/termscale/axis"
	"github.com/jmyles/termscale/scale"
	"github.com/jmyles/termscale/terminal"
	"github.com/jmyles/termscale/utils/check"
	"github.com/jmyles/termscale/utils/errors"
	"github.com/jmyles/termscale/utils/exit"
)

var (
	minValue = flag.Float64("min", 0, "lower bound of the data domain")
	maxValue = flag.Float64("max", 0, "upper bound of the data domain")
	base     = flag.Float64("base", 10, "logarithm base of the scale")
	split    = flag.Int("split", 10, "approximate number of major ticks wanted")
	width    = flag.Int("width", 0, "axis width in cells, 0 uses the current terminal width")
	logFile  = flag.String("l", "", "write debug logs to `file`")
	verbose  = flag.Bool("v", false, "also print the tick labels, one per line")
)

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: renders a signed-log axis for a numeric domain\n"+
			"\t drawaxis -min MIN -max MAX\n\n"+
			"e.g. %s -min=-500 -max=800\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	closeLogFile := initLogging(*logFile)
	defer closeLogFile()
	exit.OnError(run())
}

func run() error {
	if *minValue > *maxValue {
		return errors.Errorf("-min (%v) must not exceed -max (%v), use -h/--help to print usage instructions",
			*minValue, *maxValue)
	}
	s := scale.NewSignedLog(*base)
	s.SetExtent(*minValue, *maxValue)
	s.CalcNiceTicks(*split)
	ticks := s.GetTicks(false)
	slog.Debug("ticks computed",
		"min", *minValue, "max", *maxValue, "base", *base, "count", len(ticks), "interval", s.GetInterval())

	w := *width
	if w == 0 {
		w = terminal.CurrentSize().Width
	}
	if *verbose {
		for _, tick := range ticks {
			fmt.Println(s.GetLabel(tick))
		}
	}
	fmt.Println(axis.Render(s, w))
	return nil
}

func initLogging(file string) func() {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(h))
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}
