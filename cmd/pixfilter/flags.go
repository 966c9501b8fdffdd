package main

import (
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/types"
)

type flags struct {
	LoggerLevel   logger.Level
	ConfigPath    string
	Filter        string
	KernelSize    int
	Sigma         float64
	OutputDir     string
	SnapshotEvery bool
	SideBySide    bool
	MaxFPS        types.Rational
	Frames        uint64
	InputOptions  []string
	CameraID      int
	Keys          bool
}

func defineFlags(fs *pflag.FlagSet) *flags {
	f := &flags{
		LoggerLevel: logger.LevelWarning,
	}
	fs.Var(&f.LoggerLevel, "log-level", "Log level")
	fs.StringVar(&f.ConfigPath, "config", "", "a YAML file with defaults for the flags below")
	fs.StringVar(&f.Filter, "filter", filter.NameIdentity, "the filter to apply")
	fs.IntVar(&f.KernelSize, "kernel-size", filter.DefaultKernelSize, "the Gaussian kernel size (odd)")
	fs.Float64Var(&f.Sigma, "sigma", 0, "the Gaussian sigma; 0 derives it from the kernel size")
	fs.StringVar(&f.OutputDir, "output-dir", "", "where to save snapshots (default: ~/Downloads)")
	fs.BoolVar(&f.SnapshotEvery, "snapshot-every", false, "save every filtered frame, not only on SIGUSR1")
	fs.BoolVar(&f.SideBySide, "side-by-side", false, "output the original and the filtered frame next to each other")
	fs.Var(&f.MaxFPS, "max-fps", "drop frames above this rate, e.g. 30 or 30000/1001 (default: unlimited)")
	fs.Uint64Var(&f.Frames, "frames", 0, "stop after this many frames (default: until the end of the input)")
	fs.StringSliceVar(&f.InputOptions, "input-option", nil, "a libav input option as key=value; the key 'f' selects the input format")
	fs.IntVar(&f.CameraID, "camera", -1, "read from the camera with this index instead of an input (requires the with_cv build tag)")
	fs.BoolVar(&f.Keys, "keys", true, "read single-key commands from stdin (see the help printed on start)")
	return f
}
