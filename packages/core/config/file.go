package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filenames lists the config files Discover looks for, in order.
var Filenames = []string{
	".restrc.yaml",
	".restrc.yml",
	".restrc.json",
	"rest.config.json",
}

// fileConfig uses pointers so an absent key leaves the base value
// untouched instead of forcing the zero value.
type fileConfig struct {
	EnhancedOutput     *bool `json:"enhancedOutput" yaml:"enhancedOutput"`
	UseColors          *bool `json:"useColors" yaml:"useColors"`
	UnicodeSymbols     *bool `json:"unicodeSymbols" yaml:"unicodeSymbols"`
	ShowSuccessDetails *bool `json:"showSuccessDetails" yaml:"showSuccessDetails"`
}

func (fc *fileConfig) apply(base Config) Config {
	if fc.EnhancedOutput != nil {
		base.EnhancedOutput = *fc.EnhancedOutput
	}
	if fc.UseColors != nil {
		base.UseColors = *fc.UseColors
	}
	if fc.UnicodeSymbols != nil {
		base.UnicodeSymbols = *fc.UnicodeSymbols
	}
	if fc.ShowSuccessDetails != nil {
		base.ShowSuccessDetails = *fc.ShowSuccessDetails
	}
	return base
}

// Discover searches dir for a config file and applies it to base.
// The returned path is empty when no file was found; a missing file is
// not an error.
func Discover(dir string, base Config) (Config, string, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path, base)
		if err != nil {
			return base, path, err
		}
		return cfg, path, nil
	}
	return base, "", nil
}

// LoadFile applies the options in a YAML or JSON config file to base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return base, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc.apply(base), nil
}
