package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const FileName = "launchgen.toml"
const LocalFileName = "launchgen.local.toml"

// Config is the optional project configuration read from the directory
// launchgen runs in. Unset values fall back to the defaults of the writers.
type Config struct {
	Launch       LaunchConfig       `toml:"launch"`
	VSCode       VSCodeConfig       `toml:"vscode"`
	VisualStudio VisualStudioConfig `toml:"visualstudio"`

	// Sources lists the file names Load read, in layering order.
	Sources []string `toml:"-"`
}

type LaunchConfig struct {
	Args       []string `toml:"args,omitempty"`
	ExpandPath *bool    `toml:"expand_path,omitempty"`
}

type VSCodeConfig struct {
	Enabled *bool  `toml:"enabled,omitempty"`
	Console string `toml:"console,omitempty"`
}

type VisualStudioConfig struct {
	Enabled *bool `toml:"enabled,omitempty"`
}

func (c *Config) ExpandPath() bool {
	return c.Launch.ExpandPath != nil && *c.Launch.ExpandPath
}

func (c *Config) VSCodeEnabled() bool {
	return c.VSCode.Enabled == nil || *c.VSCode.Enabled
}

func (c *Config) VisualStudioEnabled() bool {
	return c.VisualStudio.Enabled == nil || *c.VisualStudio.Enabled
}

func Parse(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// Merge returns a new Config with local overrides applied on top of base.
// Args are appended; other values replace if set.
func Merge(base, local *Config) *Config {
	merged := *base
	merged.Launch.Args = append(append([]string(nil), base.Launch.Args...), local.Launch.Args...)
	if local.Launch.ExpandPath != nil {
		merged.Launch.ExpandPath = local.Launch.ExpandPath
	}
	if local.VSCode.Enabled != nil {
		merged.VSCode.Enabled = local.VSCode.Enabled
	}
	if local.VSCode.Console != "" {
		merged.VSCode.Console = local.VSCode.Console
	}
	if local.VisualStudio.Enabled != nil {
		merged.VisualStudio.Enabled = local.VisualStudio.Enabled
	}
	return &merged
}

// Load reads launchgen.toml and launchgen.local.toml from dir. Either file may
// be missing; with neither present the zero Config is returned.
func Load(dir string) (*Config, error) {
	cfg := &Config{}
	var sources []string
	for _, name := range []string{FileName, LocalFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		layer, err := Parse(path)
		if err != nil {
			return nil, err
		}
		cfg = Merge(cfg, layer)
		sources = append(sources, name)
	}
	cfg.Sources = sources
	return cfg, nil
}

// Write creates launchgen.toml in dir. Fails if the file already exists.
func Write(dir string, cfg *Config) error {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", FileName)
		}
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
