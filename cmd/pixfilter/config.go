package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/xaionaro-go/pixfilter/types"
	"gopkg.in/yaml.v3"
)

// config mirrors the flags; a value given on the command line wins.
type config struct {
	Filter        string                `yaml:"filter"`
	KernelSize    int                   `yaml:"kernel_size"`
	Sigma         float64               `yaml:"sigma"`
	OutputDir     string                `yaml:"output_dir"`
	SnapshotEvery bool                  `yaml:"snapshot_every"`
	SideBySide    bool                  `yaml:"side_by_side"`
	MaxFPS        string                `yaml:"max_fps"`
	Frames        uint64                `yaml:"frames"`
	InputOptions  types.DictionaryItems `yaml:"input_options"`
}

func loadConfig(path string) (*config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the config '%s': %w", path, err)
	}
	var cfg config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse the config '%s': %w", path, err)
	}
	return &cfg, nil
}

// applyTo sets every flag that was not given explicitly and has a
// non-zero value in the config.
func (cfg *config) applyTo(fs *pflag.FlagSet) error {
	values := map[string]string{}
	if cfg.Filter != "" {
		values["filter"] = cfg.Filter
	}
	if cfg.KernelSize != 0 {
		values["kernel-size"] = strconv.Itoa(cfg.KernelSize)
	}
	if cfg.Sigma != 0 {
		values["sigma"] = strconv.FormatFloat(cfg.Sigma, 'g', -1, 64)
	}
	if cfg.OutputDir != "" {
		values["output-dir"] = cfg.OutputDir
	}
	if cfg.SnapshotEvery {
		values["snapshot-every"] = "true"
	}
	if cfg.SideBySide {
		values["side-by-side"] = "true"
	}
	if cfg.MaxFPS != "" {
		values["max-fps"] = cfg.MaxFPS
	}
	if cfg.Frames != 0 {
		values["frames"] = strconv.FormatUint(cfg.Frames, 10)
	}
	for name, value := range values {
		if fs.Changed(name) {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("invalid value '%s' of '%s' in the config: %w", value, name, err)
		}
	}

	if len(cfg.InputOptions) > 0 && !fs.Changed("input-option") {
		for _, opt := range cfg.InputOptions {
			if err := fs.Set("input-option", opt.Key+"="+opt.Value); err != nil {
				return fmt.Errorf("invalid input option '%s' in the config: %w", opt.Key, err)
			}
		}
	}
	return nil
}
