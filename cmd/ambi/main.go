// Package main provides the ambi command, which evaluates third-order N3D
// Ambisonics encodings and point-source directivity and writes the numeric
// results as JSON for an external plotting tool.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/ambisonics/internal/config"
	"github.com/banshee-data/ambisonics/internal/monitoring"
	"github.com/banshee-data/ambisonics/internal/version"
)

// options holds settings that are not part of the run configuration.
type options struct {
	ConfigPath  string
	OutPath     string
	ShowVersion bool
}

func main() {
	if err := realMain(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// realMain runs the command and returns instead of exiting, so the output
// file is closed on every path. A failed run removes the partial file.
func realMain(args []string, stdout, stderr io.Writer) (err error) {
	cfg, opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("invalid arguments: %w", err)
	}

	if opts.ShowVersion {
		fmt.Fprintln(stdout, "ambi", version.String())
		return nil
	}

	monitoring.Verbose = cfg.GetVerbose()

	out := stdout
	if opts.OutPath != "" {
		f, cerr := os.Create(opts.OutPath)
		if cerr != nil {
			return fmt.Errorf("failed to create output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
			if err != nil {
				os.Remove(opts.OutPath)
			}
		}()
		out = f
	}

	bw := bufio.NewWriter(out)
	if err := run(cfg, bw); err != nil {
		return fmt.Errorf("%s failed: %w", cfg.GetMode(), err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if opts.OutPath != "" {
		monitoring.Logf("wrote %s output to %s", cfg.GetMode(), opts.OutPath)
	}
	return nil
}

// parseFlags builds the run configuration from defaults, an optional JSON
// config file and the command line, in increasing order of precedence.
func parseFlags(args []string, stderr io.Writer) (*config.RunConfig, options, error) {
	fs := flag.NewFlagSet("ambi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts            options
		mode            string
		unit            string
		elevation       float64
		steps           int
		sourceElevation float64
		sourceAzimuth   float64
		frames          int
		verbose         bool
	)
	def := config.DefaultRunConfig()
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a JSON run configuration")
	fs.StringVar(&opts.OutPath, "out", "", "Write output to this file instead of stdout")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print version and exit")
	fs.StringVar(&mode, "mode", def.GetMode(), "One of "+strings.Join(config.ValidModes, ", "))
	fs.StringVar(&unit, "units", def.GetUnits(), "Angle units for input and output (rad or deg)")
	fs.Float64Var(&elevation, "elevation", 0, "Elevation of the listener plane")
	fs.IntVar(&steps, "steps", def.GetSteps(), "Number of listener directions around the plane")
	fs.Float64Var(&sourceElevation, "source-elevation", 0, "Source elevation")
	fs.Float64Var(&sourceAzimuth, "source-azimuth", 0, "Source azimuth, the starting azimuth in the sweep modes")
	fs.IntVar(&frames, "frames", 0, "Frames per revolution in the sweep modes (default 200, 250 for pointsource-sweep)")
	fs.BoolVar(&verbose, "verbose", false, "Log per-frame progress")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}
	if fs.NArg() > 0 {
		return nil, opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if opts.ConfigPath != "" {
		fileCfg, err := config.LoadRunConfig(opts.ConfigPath)
		if err != nil {
			return nil, opts, err
		}
		cfg.Merge(fileCfg)
	}

	// Only flags given explicitly override the file.
	set := &config.RunConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			set.Mode = &mode
		case "units":
			set.Units = &unit
		case "elevation":
			set.Elevation = &elevation
		case "steps":
			set.Steps = &steps
		case "source-elevation":
			set.SourceElevation = &sourceElevation
		case "source-azimuth":
			set.SourceAzimuth = &sourceAzimuth
		case "frames":
			set.Frames = &frames
		case "verbose":
			set.Verbose = &verbose
		}
	})
	cfg.Merge(set)

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}
